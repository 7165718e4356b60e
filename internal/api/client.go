// Package api implements the REST transport against the LMS backend. All
// endpoint families share one Client which attaches the bearer token, assigns
// request IDs, records metrics, and classifies response statuses into typed
// errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/pkg/config"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
	"github.com/edusphere/lms-client/pkg/logger"
)

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// Client issues JSON requests against the backend API prefix.
type Client struct {
	http           *http.Client
	baseURL        string
	userAgent      string
	tokens         TokenSource
	onUnauthorized func()
	logger         *zap.Logger
	metrics        *Metrics
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (timeouts live there).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a zap logger for round-trip debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics attaches per-request instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTokenSource attaches the session token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New builds a Client for the configured base URL and API prefix.
func New(cfg config.APIConfig, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/") + cfg.Prefix,
		userAgent: cfg.UserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUnauthorizedHook registers the session-teardown callback invoked when any
// request comes back 401. Registered once at wiring time.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// BaseURL returns the resolved API root, prefix included.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, ep endpoint, out interface{}) error {
	return c.do(ctx, http.MethodGet, ep, nil, out)
}

func (c *Client) post(ctx context.Context, ep endpoint, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, ep, body, out)
}

func (c *Client) put(ctx context.Context, ep endpoint, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, ep, body, out)
}

func (c *Client) delete(ctx context.Context, ep endpoint, out interface{}) error {
	return c.do(ctx, http.MethodDelete, ep, nil, out)
}

func (c *Client) do(ctx context.Context, method string, ep endpoint, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ep.path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "failed to build request")
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)
	if err != nil {
		c.metrics.ObserveRequest(method, ep.route, 0, latency)
		return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	c.metrics.ObserveRequest(method, ep.route, resp.StatusCode, latency)
	logger.RoundTrip(c.logger, method, ep.path, resp.StatusCode, reqID, latency)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "failed to read response")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "failed to decode response")
		}
		return nil
	}

	message := serverMessage(raw)
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return appErrors.FromStatus(resp.StatusCode, message)
}

// serverMessage extracts the human-readable message from an error body, if
// the body was JSON at all.
func serverMessage(raw []byte) string {
	var status dto.Status
	if err := json.Unmarshal(raw, &status); err != nil {
		return ""
	}
	return status.Message
}

// endpoint pairs the concrete request path with the route template the
// metrics series is labelled with. Interpolated entity IDs stay out of the
// label set so the series count is bounded by the route table.
type endpoint struct {
	route string
	path  string
}

func route(s string) endpoint {
	return endpoint{route: s, path: s}
}

// query appends an already-encoded query string to the request path only.
func (e endpoint) query(q string) endpoint {
	e.path += q
	return e
}

func pathf(format string, args ...interface{}) endpoint {
	return endpoint{route: format, path: fmt.Sprintf(format, args...)}
}
