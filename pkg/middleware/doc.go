// Package middleware provides HTTP middleware for the formkit preview server.
//
// Metrics: Prometheus collectors for requests, live-form events, sessions and
// the number of invalid fields per render.
//
//	m := middleware.NewMetrics(middleware.WithNamespace("formkit"))
//	r := chi.NewRouter()
//	r.Use(m.Middleware)
//	r.Handle("/metrics", promhttp.HandlerFor(m.Gatherer(), promhttp.HandlerOpts{}))
//
// Tracing: OpenTelemetry spans per request, using the global tracer provider
// unless one is supplied.
//
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("formkit")))
//
// Both wrap the ResponseWriter in a recorder that keeps http.Hijacker working,
// so websocket upgrades pass through them.
package middleware
