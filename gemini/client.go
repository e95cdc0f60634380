package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/scribe"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ scribe.Backend = (*Client)(nil)

// Client implements [scribe.Backend] for the Google Gemini API.
type Client struct {
	client          *genai.Client
	probeTimeout    time.Duration
	generateTimeout time.Duration
}

// Option configures a [Client].
type Option func(*options)

type options struct {
	baseURL         string
	httpClient      *http.Client
	probeTimeout    time.Duration
	generateTimeout time.Duration
}

// WithBaseURL overrides the API endpoint. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithProbeTimeout bounds the model listing. Default is 5s.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *options) { o.probeTimeout = d }
}

// WithGenerateTimeout bounds a generation call. Default is 5m.
func WithGenerateTimeout(d time.Duration) Option {
	return func(o *options) { o.generateTimeout = d }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	o := options{
		probeTimeout:    scribe.DefaultProbeTimeout,
		generateTimeout: scribe.DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{
		client:          gc,
		probeTimeout:    o.probeTimeout,
		generateTimeout: o.generateTimeout,
	}, nil
}

// Name identifies the service in user-facing messages.
func (c *Client) Name() string { return serviceName }

// Probe lists the models visible to the API key. Any failure yields the
// zero [scribe.Probe].
func (c *Client) Probe(ctx context.Context) scribe.Probe {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	page, err := c.client.Models.List(ctx, &genai.ListModelsConfig{PageSize: probePageSize})
	if err != nil {
		return scribe.Probe{}
	}
	return scribe.NewProbe(ModelNames(page.Items))
}

// Generate sends prompt as a single user turn. Every error it returns is a
// *scribe.Failure.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", ClassifyError(err, c.generateTimeout)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", scribe.EmptyResponse()
	}
	return text, nil
}

// ModelNames returns model identifiers without the "models/" prefix.
// Exported for testing.
func ModelNames(models []*genai.Model) []string {
	names := make([]string, 0, len(models))
	for _, m := range models {
		if m == nil || m.Name == "" {
			continue
		}
		names = append(names, strings.TrimPrefix(m.Name, modelPrefix))
	}
	return names
}

// ClassifyError maps a genai error to a [scribe.Failure].
// Exported for testing.
func ClassifyError(err error, timeout time.Duration) *scribe.Failure {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyAPIError(*apiErrPtr)
	}
	return scribe.TransportFailure(err, timeout)
}

func classifyAPIError(e genai.APIError) *scribe.Failure {
	if e.Code == http.StatusNotFound {
		return scribe.NotFound(e.Message)
	}
	return scribe.RequestFailed(fmt.Errorf("gemini: HTTP %d: %s", e.Code, e.Message))
}
