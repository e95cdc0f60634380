package scribe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Writer turns a BlogRequest into a Result using a Backend. It re-probes
// the backend before every submission.
type Writer struct {
	backend Backend
	logger  *slog.Logger
	newID   func() string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithLogger sets the logger used for per-request records.
func WithLogger(l *slog.Logger) WriterOption {
	return func(w *Writer) { w.logger = l }
}

// WithIDFunc overrides request ID generation. Useful for testing.
func WithIDFunc(fn func() string) WriterOption {
	return func(w *Writer) { w.newID = fn }
}

// NewWriter creates a Writer for the given backend.
func NewWriter(backend Backend, opts ...WriterOption) *Writer {
	w := &Writer{
		backend: backend,
		logger:  slog.New(slog.DiscardHandler),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Write validates req, probes the backend and submits the composed prompt.
// It never panics or returns an error: every failure is carried in
// Result.Failure.
func (w *Writer) Write(ctx context.Context, req BlogRequest) (res Result) {
	res = Result{ID: w.newID(), Model: req.Model}
	log := w.logger.With("request_id", res.ID, "model", req.Model)
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Text = ""
			res.Failure = RequestFailed(fmt.Errorf("panic: %v", p))
		}
		if res.Failure != nil {
			log.Warn("generation failed",
				"kind", res.Failure.Kind,
				"message", res.Failure.Message,
				"duration_ms", time.Since(start).Milliseconds())
			return
		}
		log.Info("generation complete",
			"chars", len(res.Text),
			"duration_ms", time.Since(start).Milliseconds())
	}()

	if err := req.Validate(); err != nil {
		res.Failure = Invalid(err)
		return res
	}

	probe := w.backend.Probe(ctx)
	// A probe cut short by the caller says nothing about the service.
	if ctx.Err() != nil {
		res.Failure = Canceled()
		return res
	}
	if !probe.Available {
		res.Failure = Unreachable(w.backend.Name())
		return res
	}
	if !probe.HasModel(req.Model) {
		res.Failure = ModelNotFound(req.Model, probe.Models)
		return res
	}

	log.Debug("submitting", "word_count", req.WordCount, "keywords", len(req.KeywordList()))
	text, err := w.backend.Generate(ctx, req.Model, ComposePrompt(req))
	if err != nil {
		res.Failure = AsFailure(err)
		return res
	}
	text = CleanText(text)
	if strings.TrimSpace(text) == "" {
		res.Failure = EmptyResponse()
		return res
	}
	res.Text = text
	return res
}
