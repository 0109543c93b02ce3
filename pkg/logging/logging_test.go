package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNilSinkIsNoOp(t *testing.T) {
	var s *Sink
	ctx, end := s.Section(context.Background(), "wait", "Submit: until visible")
	if ctx == nil {
		t.Fatal("expected the context passed through")
	}
	end(nil)
	end(errors.New("boom")) // must not panic either
}

func TestSectionLogsStartAndEnd(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))

	_, end := s.Section(context.Background(), "wait", "Submit: until visible")
	end(nil)

	out := buf.String()
	if !strings.Contains(out, "section started") {
		t.Errorf("expected a start record, got %q", out)
	}
	if !strings.Contains(out, "section ended") {
		t.Errorf("expected an end record, got %q", out)
	}
	if !strings.Contains(out, "Submit: until visible") {
		t.Errorf("expected the subject recorded, got %q", out)
	}
}

func TestSectionRecordsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))

	_, end := s.Section(context.Background(), "wait", "Submit: until visible")
	end(errors.New("timed out"))

	if !strings.Contains(buf.String(), "timed out") {
		t.Errorf("expected the error recorded, got %q", buf.String())
	}
}

func TestTracingSection(t *testing.T) {
	// No tracer provider is registered, so this exercises the otel
	// no-op path end to end.
	s := New(WithTracing(), WithTracerName("strut-test"),
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	ctx, end := s.Section(context.Background(), "wait", "Submit: until present")
	if ctx == nil {
		t.Fatal("expected a context")
	}
	end(errors.New("timed out"))
}
