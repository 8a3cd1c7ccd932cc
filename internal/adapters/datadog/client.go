package datadog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/observability"
)

const maxErrorBody = 64 << 10

// Client validates an API key against one Datadog site.
type Client struct {
	site       string
	apiKey     string
	apiBaseURL string
	httpClient *http.Client
	log        *slog.Logger
	latency    *observability.LatencyTracker
	metrics    observability.RemoteMetrics
}

type Option func(*Client)

// WithAPIBaseURL overrides https://api.{site}.
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.apiBaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithLatencyTracker(tracker *observability.LatencyTracker) Option {
	return func(c *Client) {
		c.latency = tracker
	}
}

func WithMetrics(metrics observability.RemoteMetrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

func NewClient(site, apiKey string, opts ...Option) *Client {
	site = strings.TrimSpace(site)
	c := &Client{
		site:       site,
		apiKey:     strings.TrimSpace(apiKey),
		apiBaseURL: APIBaseURL(site),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Site() string {
	return c.site
}

// WebhookURL is the intake URL of the client's site.
func (c *Client) WebhookURL() string {
	return WebhookURL(c.site)
}

// HTTPHeaders is the delivery header line carrying the client's API key.
func (c *Client) HTTPHeaders() string {
	return HTTPHeaders(c.apiKey)
}

// Validate checks the API key. 401 and 403 are credential errors, any other
// non-2xx answer is a remote error.
func (c *Client) Validate(ctx context.Context) error {
	const operation = "validate"
	ctx, span := observability.StartRemoteSpan(ctx, domain.ServiceDatadog, operation)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/api/v1/validate", nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("DD-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	c.latency.Observe(domain.ServiceDatadog+"."+operation, elapsed)
	if err != nil {
		c.metrics.RecordRequest(ctx, domain.ServiceDatadog, operation, 0, elapsed.Seconds())
		span.RecordError(err)
		return fmt.Errorf("datadog %s: %w", operation, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordRequest(ctx, domain.ServiceDatadog, operation, resp.StatusCode, elapsed.Seconds())
	span.SetStatusCode(resp.StatusCode)
	c.log.DebugContext(ctx, "datadog request",
		"operation", operation,
		"site", c.site,
		"status", resp.StatusCode,
		"duration", elapsed.String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		remoteErr := domain.RemoteError(domain.ServiceDatadog, operation, resp.StatusCode, strings.TrimSpace(string(raw)))
		span.RecordError(remoteErr)
		return remoteErr
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
