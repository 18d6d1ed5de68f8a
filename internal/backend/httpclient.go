package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wall/cli/internal/logging"
	"wall/cli/internal/manifest"
	"wall/cli/internal/query"

	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// DefaultUserAgent is sent when no other user agent is configured.
const DefaultUserAgent = "wall-cli"

// HTTP implements API over the wall REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://wall.example.com")
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints manifest.HTTPEndpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	log    logging.Logger

	userAgent   string
	pageSize    int
	maxPageSize int
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option { return func(h *HTTP) { h.client = c } }

// WithTimeout sets the request timeout of the underlying client.
func WithTimeout(d time.Duration) Option { return func(h *HTTP) { h.client.Timeout = d } }

// WithLogger sets the logger requests are traced to.
func WithLogger(l logging.Logger) Option { return func(h *HTTP) { h.log = l } }

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option { return func(h *HTTP) { h.userAgent = ua } }

// WithPageSize sets the default and maximum page size of list requests.
func WithPageSize(def, maxSize int) Option {
	return func(h *HTTP) {
		h.pageSize = def
		h.maxPageSize = maxSize
	}
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
// It configures a 10-second timeout for all requests unless overridden.
func newHTTP(baseURL string, endpoints manifest.HTTPEndpoints, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL:     strings.TrimRight(baseURL, "/"),
		endpoints:   endpoints.Merge(),
		client:      &http.Client{Timeout: 10 * time.Second},
		log:         logging.Nop(),
		userAgent:   DefaultUserAgent,
		pageSize:    10,
		maxPageSize: 100,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// setStandardHeaders sets the headers every request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// send performs one request and returns the raw body and HTTP status.
// A non-empty token is sent as a bearer credential.
func (h *HTTP) send(ctx context.Context, method, path string, body any, token string) ([]byte, int, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rdr)
	if err != nil {
		return nil, 0, err
	}
	h.setStandardHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s response: %w", path, err)
	}

	h.log.Debug(ctx, "http request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
		"elapsed", time.Since(start),
	)
	return raw, resp.StatusCode, nil
}

// call performs one request and decodes the response envelope.
func call[T any](ctx context.Context, h *HTTP, method, path string, body any, token string) (*query.Envelope[T], error) {
	raw, code, err := h.send(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[T](raw, code)
}

// decodeEnvelope parses a response body whatever its HTTP status, the way a
// browser fetch would. A 401 without an envelope status is reported as
// unauthorized, with the framework's "detail" as the message.
func decodeEnvelope[T any](raw []byte, code int) (*query.Envelope[T], error) {
	var env query.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response (HTTP %d): %w", code, err)
	}
	if env.Status == "" && code == http.StatusUnauthorized {
		var d struct {
			Detail query.Reason `json:"detail"`
		}
		_ = json.Unmarshal(raw, &d)
		env.Status = query.StatusUnauthorized
		if !env.Message.Truthy() {
			env.Message = d.Detail
		}
	}
	return &env, nil
}
