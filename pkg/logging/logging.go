// Package logging is the structured section sink for the component
// runtime.
//
// The runtime reports coarse-grained sections: a wait starting, a
// scope access beginning and ending. A nil *Sink is valid and
// discards everything, so the core stays silent unless a sink is
// configured.
//
// Logs go through log/slog. When tracing is enabled, every section
// additionally opens an OpenTelemetry span named after the section
// kind, using the global tracer provider.
package logging

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer name used when none is configured.
const defaultTracerName = "strut"

// Config configures a Sink.
type Config struct {
	// Logger receives section records. Defaults to slog.Default().
	Logger *slog.Logger

	// TracerName names the tracer when tracing is enabled.
	TracerName string

	// Tracing opens a span per section using the global tracer
	// provider.
	Tracing bool
}

// Option configures a Sink.
type Option func(*Config)

// WithLogger sets the slog logger sections are written to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithTracing enables one OpenTelemetry span per section.
func WithTracing() Option {
	return func(c *Config) { c.Tracing = true }
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) { c.TracerName = name }
}

// Sink reports runtime sections to slog and, optionally, to an
// OpenTelemetry tracer. The nil Sink is a no-op.
type Sink struct {
	log    *slog.Logger
	tracer trace.Tracer
}

// New creates a Sink.
func New(opts ...Option) *Sink {
	cfg := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sink{log: cfg.Logger}
	if s.log == nil {
		s.log = slog.Default()
	}
	if cfg.Tracing {
		s.tracer = otel.Tracer(cfg.TracerName)
	}
	return s
}

// EndFunc closes a section. The error argument records how the
// section ended; nil means success.
type EndFunc func(err error)

// Section reports a section start and returns the context to run the
// section under plus the EndFunc closing it. Kind is the section
// category ("wait", "scope access"); subject identifies the component
// and condition involved.
func (s *Sink) Section(ctx context.Context, kind, subject string) (context.Context, EndFunc) {
	if s == nil {
		return ctx, func(error) {}
	}

	start := time.Now()
	s.log.DebugContext(ctx, "section started", "kind", kind, "subject", subject)

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, kind,
			trace.WithAttributes(attribute.String("strut.subject", subject)))
	}

	return ctx, func(err error) {
		elapsed := time.Since(start)
		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}
		if err != nil {
			s.log.DebugContext(ctx, "section ended", "kind", kind,
				"subject", subject, "elapsed", elapsed, "error", err)
			return
		}
		s.log.DebugContext(ctx, "section ended", "kind", kind,
			"subject", subject, "elapsed", elapsed)
	}
}
