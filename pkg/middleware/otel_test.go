package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingProvider struct {
	noop.TracerProvider
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p}
}

type recordingTracer struct {
	noop.Tracer
	provider *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: map[attribute.Key]attribute.Value{}}
	for _, kv := range cfg.Attributes() {
		s.attrs[kv.Key] = kv.Value
	}
	t.provider.spans = append(t.provider.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string) { s.name = name }

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }

func TestOpenTelemetry(t *testing.T) {
	provider := &recordingProvider{}
	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracerProvider(provider),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("formkit.definition", "signup")}
		}),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	))

	var inHandler trace.Span
	r.Get("/s/{token}", func(w http.ResponseWriter, r *http.Request) {
		inHandler = trace.SpanFromContext(r.Context())
		w.WriteHeader(http.StatusBadGateway)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/s/tok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if len(provider.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(provider.spans))
	}
	span := provider.spans[0]
	if inHandler != trace.Span(span) {
		t.Error("the span should be available to the handler")
	}
	if span.name != "GET /s/{token}" {
		t.Errorf("name = %q", span.name)
	}
	if span.kind != trace.SpanKindServer || !span.ended {
		t.Errorf("kind = %v, ended = %v", span.kind, span.ended)
	}
	if span.status != codes.Error {
		t.Errorf("status = %v, want Error", span.status)
	}
	checks := map[attribute.Key]string{
		"http.method":        "GET",
		"http.route":         "/s/{token}",
		"formkit.definition": "signup",
	}
	for k, want := range checks {
		if got := span.attrs[k].AsString(); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
	if got := span.attrs["http.status_code"].AsInt64(); got != http.StatusBadGateway {
		t.Errorf("http.status_code = %d", got)
	}
}

func TestOpenTelemetryGlobalProvider(t *testing.T) {
	h := OpenTelemetry()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if trace.SpanFromContext(r.Context()) == nil {
			t.Error("expected a span in the request context")
		}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
