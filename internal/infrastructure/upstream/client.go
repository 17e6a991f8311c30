// Package upstream implements the outbound ports against the library
// backend's REST API. All reads and writes the console performs end up here;
// the gateway itself keeps no catalog or loan state.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/api/metrics"
	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 15 * time.Second

// Client talks to the library backend over HTTP. It is safe for concurrent
// use; one instance serves the whole gateway.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for the given base URL, e.g.
// "http://localhost:3999". A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Ping reports whether the backend is reachable. Any HTTP response counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

// do performs one request and returns the raw response body. The caller's
// upstream token, when present in the context, is forwarded as a bearer.
// Transport failures wrap ErrUpstreamUnavailable; non-2xx statuses become
// *domain.UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ports.UpstreamTokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(method, "unavailable").Observe(time.Since(start).Seconds())
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(method, "unavailable").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		return nil, upstreamError(resp.StatusCode, data)
	}

	metrics.UpstreamRequestDuration.WithLabelValues(method, "ok").Observe(time.Since(start).Seconds())
	return data, nil
}

// upstreamError builds the passthrough error for a non-2xx response, keeping
// the backend's message when the body carries one.
func upstreamError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &domain.UpstreamError{Status: status, Message: payload.Message}
}

// decodeList parses a body expected to be a JSON array. Anything else is
// ErrMalformedResponse, so a backend that answers a list route with an error
// object yields an empty view rather than a decode panic downstream.
func decodeList[T any](data []byte) ([]T, error) {
	if !looksLikeArray(data) {
		return nil, domain.ErrMalformedResponse
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return out, nil
}

func looksLikeArray(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// mapNotFound converts an upstream 404 into the entity's sentinel so the
// HTTP layer can answer with a clean not-found instead of a passthrough.
func mapNotFound(err, sentinel error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
		return sentinel
	}
	return err
}
