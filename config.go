package scribe

import (
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by Config.Backend.
const (
	BackendOllama = "ollama"
	BackendGemini = "gemini"
)

// Default configuration values.
const (
	DefaultOllamaURL       = "http://localhost:11434"
	DefaultProbeTimeout    = 5 * time.Second
	DefaultGenerateTimeout = 5 * time.Minute
)

// Config holds externally supplied settings.
type Config struct {
	Backend         string
	OllamaURL       string
	GeminiAPIKey    string
	Model           string // preselected model; empty means the first option
	OutputDir       string
	ProbeTimeout    time.Duration
	GenerateTimeout time.Duration
	LogFile         string
	LogLevel        string
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		Backend:         BackendOllama,
		OllamaURL:       DefaultOllamaURL,
		OutputDir:       ".",
		ProbeTimeout:    DefaultProbeTimeout,
		GenerateTimeout: DefaultGenerateTimeout,
		LogLevel:        "info",
	}
}

// Validate checks that the configuration can build a backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendOllama:
		if c.OllamaURL == "" {
			return fmt.Errorf("ollama url is required: %w", ErrValidation)
		}
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable): %w", ErrValidation)
		}
	default:
		return fmt.Errorf("unknown backend %q: must be %q or %q: %w", c.Backend, BackendOllama, BackendGemini, ErrValidation)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s: %w", c.ProbeTimeout, ErrValidation)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("generate timeout must be positive, got %s: %w", c.GenerateTimeout, ErrValidation)
	}
	return nil
}

// NormalizeURL adds an http scheme to a bare host:port and trims trailing
// slashes, so OLLAMA_HOST style values can be used as base URLs.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if !strings.Contains(u, "://") {
		u = "http://" + u
	}
	return strings.TrimRight(u, "/")
}
