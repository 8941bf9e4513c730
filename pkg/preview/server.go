package preview

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/forms/pkg/middleware"
	"github.com/vango-dev/forms/pkg/render"
	"github.com/vango-dev/forms/pkg/schema"
	"github.com/vango-dev/forms/pkg/vdom"
)

// Server runs one form definition for many browser sessions.
type Server struct {
	config   Config
	logger   *slog.Logger
	metrics  *middleware.Metrics
	secret   []byte
	upgrader websocket.Upgrader
	router   chi.Router
	sessions *sessionStore

	mu  sync.RWMutex
	def *schema.Definition
}

// New creates a preview server for def.
func New(def *schema.Definition, config Config) *Server {
	config = config.withDefaults()

	secret := config.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}
	}

	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "preview"),
		metrics:  config.Metrics,
		secret:   secret,
		sessions: newSessionStore(),
		def:      def,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     SameOriginCheck,
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	if s.config.TracerProvider != nil {
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerName("formkit/preview"),
			middleware.WithTracerProvider(s.config.TracerProvider),
		))
	}
	r.Use(s.metrics.Middleware)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/share", s.handleShare)
	r.Get("/s/{token}", s.handleRestore)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Gatherer(), promhttp.HandlerOpts{}))
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Definition returns the definition currently served.
func (s *Server) Definition() *schema.Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}

// SetDefinition swaps the served definition. Live sessions keep the values
// of fields that still exist and are re-rendered at once, so their handler
// tables match the new form; connected browsers see the change on their
// next event.
func (s *Server) SetDefinition(def *schema.Definition) {
	s.mu.Lock()
	s.def = def
	s.mu.Unlock()

	today := s.config.Now()
	s.sessions.each(func(sess *session) {
		sess.state = rebase(def, sess.state, today)
		sess.render(def, s.config.Classes)
	})
	s.logger.Info("definition replaced", "source", def.Source, "fields", len(def.Fields))
}

// Run serves on config.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	go s.sweep(ctx)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}

// sweep drops sessions idle for more than an hour.
func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.expire(s.config.Now().Add(-time.Hour)); n > 0 {
				s.logger.Debug("expired sessions", "count", n)
			}
		}
	}
}

// session returns the caller's session, creating one and setting the
// cookie when the request has none.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.get(c.Value); ok {
			return sess
		}
	}
	sess := s.sessions.create(schema.NewState(s.Definition(), s.config.Now()), s.config.Now())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Debug("session created", "session_id", sess.id)
	return sess
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.writePage(w, sess)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.mu.Lock()
	token, err := EncodeShareToken(s.secret, sess.state)
	sess.mu.Unlock()
	if err != nil {
		s.logger.Error("share token failed", "error", err)
		http.Error(w, "could not create share link", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "/s/%s\n", token)
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	state, err := DecodeShareToken(s.secret, chi.URLParam(r, "token"))
	if err != nil {
		s.logger.Warn("rejected share token", "error", err)
		http.Error(w, "invalid share link", http.StatusBadRequest)
		return
	}
	def := s.Definition()
	sess := s.sessions.create(rebase(def, state, s.config.Now()), s.config.Now())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.writePage(w, sess)
}

func (s *Server) writePage(w http.ResponseWriter, sess *session) {
	def := s.Definition()

	sess.mu.Lock()
	sess.lastSeen = s.config.Now()
	tree := sess.render(def, s.config.Classes)
	invalid := len(def.Errors(sess.state))
	sess.mu.Unlock()
	s.metrics.RecordRender(invalid)

	page := render.PageData{
		Title:   def.PageTitle(),
		Body:    vdom.Main(vdom.ID("app"), tree),
		Styles:  []string{schema.Stylesheet},
		Scripts: []render.ScriptTag{{Inline: clientScript}},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewRenderer(render.RendererConfig{}).RenderPage(w, page); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

// SameOriginCheck accepts websocket upgrades whose Origin header, when
// present, names the requested host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
