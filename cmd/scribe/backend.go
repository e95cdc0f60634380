package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/gemini"
	"github.com/fwojciec/scribe/ollama"
)

// resolveBackend constructs the configured generation backend.
func resolveBackend(ctx context.Context, cfg scribe.Config, logger *slog.Logger) (scribe.Backend, error) {
	switch cfg.Backend {
	case scribe.BackendOllama:
		return ollama.New(
			ollama.WithBaseURL(cfg.OllamaURL),
			ollama.WithProbeTimeout(cfg.ProbeTimeout),
			ollama.WithGenerateTimeout(cfg.GenerateTimeout),
			ollama.WithLogger(logger),
		), nil
	case scribe.BackendGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable)")
		}
		client, err := gemini.New(ctx, cfg.GeminiAPIKey,
			gemini.WithProbeTimeout(cfg.ProbeTimeout),
			gemini.WithGenerateTimeout(cfg.GenerateTimeout),
		)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown backend %q: must be %q or %q", cfg.Backend, scribe.BackendOllama, scribe.BackendGemini)
	}
}
