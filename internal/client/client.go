// Package client implements the HTTP client for the admin backend's
// envelope API: collection, detail, and optional batch endpoints.
package client

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
	"sync"

	"github.com/google/uuid"

	"github.com/fathomline/gridview/pkg/types"
)

// requestIDHeader carries a fresh UUID v7 per request for backend-side
// correlation.
const requestIDHeader = "X-Request-ID"

// Client talks to one backend. It remembers which resources answered the
// batch route with 404 or 405 and reports them as batch-unsupported without
// further round trips.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger

	mu      sync.Mutex
	noBatch map[string]bool
}

// New creates a client from the config. The config's timeout applies to
// every request; there is no automatic retry. A nil logger disables logging.
func New(cfg types.Config, logger *slog.Logger) (*Client, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		noBatch: make(map[string]bool),
	}, nil
}

// List fetches the full collection for a resource. Returns the items and
// the backend-reported total.
func (c *Client) List(ctx context.Context, resource string) ([]types.Record, int, error) {
	var env types.ListEnvelope
	if err := c.get(ctx, c.resourceURL(resource), &env); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", resource, err)
	}
	if env.Status != types.StatusSuccess {
		return nil, 0, fmt.Errorf("list %s: %w: %s", resource, types.ErrBackend, env.Message)
	}
	return env.Data.Items, env.Data.Total, nil
}

// FetchOne fetches a single record by id.
// Returns ErrNotFound for a 404 response.
func (c *Client) FetchOne(ctx context.Context, resource, id string) (types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	var env types.ItemEnvelope
	if err := c.get(ctx, c.resourceURL(resource)+"/"+url.PathEscape(id), &env); err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", resource, id, err)
	}
	if env.Status != types.StatusSuccess {
		return nil, fmt.Errorf("get %s/%s: %w: %s", resource, id, types.ErrBackend, env.Message)
	}
	return env.Data.Item, nil
}

// FetchBatch fetches several records with one call to the resource's batch
// endpoint. Returns ErrBatchUnsupported when the backend has no batch route
// for the resource; the caller falls back to per-id fetches.
func (c *Client) FetchBatch(ctx context.Context, resource string, ids []string) ([]types.Record, error) {
	c.mu.Lock()
	unsupported := c.noBatch[resource]
	c.mu.Unlock()
	if unsupported {
		return nil, types.ErrBatchUnsupported
	}

	body, err := json.Marshal(types.BatchRequest{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", resource, err)
	}

	var env types.BatchEnvelope
	status, err := c.do(ctx, http.MethodPost, c.resourceURL(resource)+"/batch", body, &env)
	if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		c.mu.Lock()
		c.noBatch[resource] = true
		c.mu.Unlock()
		return nil, types.ErrBatchUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", resource, err)
	}
	if env.Status != types.StatusSuccess {
		return nil, fmt.Errorf("batch %s: %w: %s", resource, types.ErrBackend, env.Message)
	}
	return env.Data.Items, nil
}

// resourceURL returns the collection URL for a resource.
func (c *Client) resourceURL(resource string) string {
	return c.base + "/" + url.PathEscape(resource)
}

// get issues a GET and decodes the envelope into out.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	_, err := c.do(ctx, http.MethodGet, rawURL, nil, out)
	return err
}

// do issues one request and decodes the JSON envelope into out. It returns
// the HTTP status code alongside the error so callers can special-case
// route-level responses like 404 on the batch endpoint.
func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.Must(uuid.NewV7()).String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("backend request", "method", method, "url", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", "method", method, "url", rawURL, "error", err)
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, types.ErrNotFound
	case resp.StatusCode >= 400:
		return resp.StatusCode, fmt.Errorf("%w: HTTP %d", types.ErrBackend, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", types.ErrBadEnvelope, err)
	}
	return resp.StatusCode, nil
}
