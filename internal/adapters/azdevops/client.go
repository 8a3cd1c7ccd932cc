// Package azdevops talks to the Azure DevOps projects and service hooks APIs
// of a single organization.
package azdevops

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/observability"
)

const (
	DefaultBaseURL = "https://dev.azure.com"
	APIVersion     = "7.1"

	continuationHeader = "x-ms-continuationtoken"
	maxErrorBody       = 64 << 10
)

type Client struct {
	baseURL      string
	organization string
	token        string
	httpClient   *http.Client
	log          *slog.Logger
	latency      *observability.LatencyTracker
	metrics      observability.RemoteMetrics
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
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

func NewClient(organization, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		organization: strings.TrimSpace(organization),
		token:        strings.TrimSpace(token),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Organization returns the organization every request is scoped to.
func (c *Client) Organization() string {
	return c.organization
}

func (c *Client) orgURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api-version", APIVersion)
	return c.baseURL + "/" + url.PathEscape(c.organization) + path + "?" + query.Encode()
}

// do issues one request and decodes a JSON response into out when out is
// non-nil. Only 2xx statuses other than 203 succeed.
func (c *Client) do(ctx context.Context, operation, method, endpoint string, payload any, out any) (http.Header, error) {
	ctx, span := observability.StartRemoteSpan(ctx, domain.ServiceAzureDevOps, operation)
	defer span.End()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("encode %s request: %w", operation, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	c.latency.Observe(domain.ServiceAzureDevOps+"."+operation, elapsed)
	if err != nil {
		c.metrics.RecordRequest(ctx, domain.ServiceAzureDevOps, operation, 0, elapsed.Seconds())
		span.RecordError(err)
		return nil, fmt.Errorf("azure devops %s: %w", operation, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordRequest(ctx, domain.ServiceAzureDevOps, operation, resp.StatusCode, elapsed.Seconds())
	span.SetStatusCode(resp.StatusCode)
	c.log.DebugContext(ctx, "azure devops request",
		"operation", operation,
		"method", method,
		"status", resp.StatusCode,
		"duration", elapsed.String(),
	)

	if !successful(resp.StatusCode) {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		remoteErr := domain.RemoteError(domain.ServiceAzureDevOps, operation, resp.StatusCode, strings.TrimSpace(string(raw)))
		span.RecordError(remoteErr)
		return nil, remoteErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("decode %s response: %w", operation, err)
		}
	}
	return resp.Header, nil
}

// 203 is the login redirect Azure DevOps serves for a rejected token.
func successful(status int) bool {
	return status >= 200 && status < 300 && status != http.StatusNonAuthoritativeInfo
}
