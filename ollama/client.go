package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/scribe"
)

// Interface compliance check.
var _ scribe.Backend = (*Client)(nil)

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 4 << 10

// Client implements [scribe.Backend] for the Ollama REST API.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	probeTimeout    time.Duration
	generateTimeout time.Duration
	logger          *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the service base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithProbeTimeout bounds the /api/tags probe. Default is 5s.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *Client) { c.probeTimeout = d }
}

// WithGenerateTimeout bounds the /api/generate call. Default is 5m.
func WithGenerateTimeout(d time.Duration) Option {
	return func(c *Client) { c.generateTimeout = d }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new Ollama [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:         defaultBaseURL,
		httpClient:      http.DefaultClient,
		probeTimeout:    scribe.DefaultProbeTimeout,
		generateTimeout: scribe.DefaultGenerateTimeout,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Name identifies the service in user-facing messages.
func (c *Client) Name() string {
	return fmt.Sprintf("Ollama (%s)", c.baseURL)
}

// Probe queries /api/tags. Any failure yields the zero [scribe.Probe].
func (c *Client) Probe(ctx context.Context) scribe.Probe {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		c.logger.Debug("probe: create request", "error", err)
		return scribe.Probe{}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("probe: request", "error", err)
		return scribe.Probe{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("probe: unexpected status", "status", resp.StatusCode)
		return scribe.Probe{}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		c.logger.Debug("probe: decode response", "error", err)
		return scribe.Probe{}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	c.logger.Debug("probe: ok", "models", len(names))
	return scribe.NewProbe(names)
}

// Generate submits prompt to /api/generate with streaming disabled. Every
// error it returns is a *scribe.Failure.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", scribe.RequestFailed(fmt.Errorf("ollama: marshal request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", scribe.RequestFailed(fmt.Errorf("ollama: create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("generate: request", "error", err)
		return "", scribe.TransportFailure(err, c.generateTimeout)
	}
	defer resp.Body.Close()
	c.logger.Debug("generate: response", "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", scribe.NotFound(readErrorField(resp.Body))
	default:
		return "", scribe.RequestFailed(parseHTTPError(resp))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return "", scribe.TransportFailure(ctx.Err(), c.generateTimeout)
		}
		c.logger.Debug("generate: decode response", "error", err)
		return "", scribe.EmptyResponse()
	}
	if out.Response == nil {
		return "", scribe.EmptyResponse()
	}
	return *out.Response, nil
}

// readErrorField extracts the "error" field of a JSON body, or "" when the
// body is unreadable or not JSON.
func readErrorField(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var e errorResponse
	if err := json.Unmarshal(data, &e); err != nil {
		return ""
	}
	return e.Error
}

func parseHTTPError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var e errorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, e.Error)
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
	}
	return fmt.Errorf("HTTP %d", resp.StatusCode)
}
