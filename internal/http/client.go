// Package http provides the HTTP adapter shared by the blocking and
// asynchronous facades: fixed headers, per-instance timeout, and translation
// of infrastructure failures into the typed transport errors. Domain-level
// statuses (400, 404) pass through untouched; their meaning varies per
// endpoint and is interpreted by the resource clients.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "scriptura-go-client/1.0"

	apiKeyHeader = "X-App-Key"
)

// Request represents an outbound API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
}

// Response represents an API response whose status the caller still has to
// interpret. Path echoes the server-relative route of the originating
// request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Path       string
}

// Client wraps the underlying HTTP engine with the fixed header set and the
// transport-error taxonomy. A Client owns its connection pool exclusively;
// it must not be shared across facade instances.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     zerolog.Logger
	debug      bool

	closed    atomic.Bool
	closeOnce sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the fixed per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the structured logger used for debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables retrying of transient failures. Without this
// option every request is sent exactly once.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new HTTP adapter for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = defaultTimeout

	// The default retry policy treats 429 and 5xx as retryable and, once
	// attempts are exhausted, swallows the final response in a generic
	// "giving up" error. Hand that response back instead so checkErrorStatus
	// can translate its status; only genuine transport failures stay errors.
	retryClient.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		if resp != nil {
			return resp, nil
		}

		return nil, err
	}

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
		httpClient: retryClient,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes req and returns the response with its status untouched, unless
// the status is one the caller can never act on: 401, 429, and 5xx are
// translated into typed transport errors, as are failures that occur before
// a status line was read.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, scriptura.ErrClientClosed
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, &scriptura.NetworkError{Message: "building request", Err: err}
	}

	httpReq.Header.Set(apiKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug {
		c.logger.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("API request")
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, translateTransportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &scriptura.NetworkError{Message: "reading response body", Err: err}
	}

	if c.debug {
		c.logger.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Int("status_code", httpResp.StatusCode).
			Msg("API response")
	}

	err = checkErrorStatus(httpResp)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Path:       req.Path,
	}, nil
}

// Get performs a GET request against a server-relative path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Close releases the adapter's network resources. It is idempotent; only the
// first call tears down the connection pool.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.httpClient.HTTPClient.CloseIdleConnections()
	})

	return nil
}

// translateTransportError maps failures raised before a status line was read
// into *scriptura.NetworkError, preserving the cause.
func translateTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &scriptura.NetworkError{Message: "request timed out", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &scriptura.NetworkError{Message: "request timed out", Err: err}
	}

	return &scriptura.NetworkError{Message: "request failed", Err: err}
}

// checkErrorStatus raises typed errors for statuses the caller cannot
// resolve by inspecting domain data. Everything else, 400 and 404 included,
// is left for the resource clients.
func checkErrorStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &scriptura.AuthenticationError{Message: "invalid or missing API key"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &scriptura.RateLimitError{
			Message:    "rate limit exceeded",
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &scriptura.ServerError{StatusCode: resp.StatusCode}
	}

	return nil
}

// parseRetryAfter interprets a Retry-After header as delay seconds. The
// HTTP-date form is not produced by this API and yields nil.
func parseRetryAfter(header string) *time.Duration {
	if header == "" {
		return nil
	}

	seconds, err := strconv.ParseFloat(header, 64)
	if err != nil {
		return nil
	}

	delay := time.Duration(seconds * float64(time.Second))

	return &delay
}
