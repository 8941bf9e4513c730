package preview

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/middleware"
)

// Config configures a preview Server.
type Config struct {
	// Addr is the listen address used by Run.
	Addr string

	// Secret signs share tokens. A random secret is generated when empty,
	// which makes tokens valid for the lifetime of the process only.
	Secret []byte

	// Classes overrides the CSS class names used when rendering.
	Classes form.Classes

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics collects Prometheus metrics. A private registry is used when nil.
	Metrics *middleware.Metrics

	// TracerProvider enables request tracing when set.
	TracerProvider trace.TracerProvider

	// Now supplies the current time; datepickers use it for "today".
	Now func() time.Time

	// ReadLimit is the largest websocket frame accepted, in bytes.
	ReadLimit int64

	// ShutdownTimeout bounds graceful shutdown in Run.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config listening on localhost:8080.
func DefaultConfig() Config {
	return Config{
		Addr:            "localhost:8080",
		Classes:         form.DefaultClasses(),
		ReadLimit:       64 * 1024,
		ShutdownTimeout: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	c.Classes = c.Classes.Merge()
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Metrics == nil {
		c.Metrics = middleware.NewMetrics()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ReadLimit <= 0 {
		c.ReadLimit = d.ReadLimit
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}
