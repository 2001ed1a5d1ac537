// Package http is the transport shared by every Configuration. It wraps a
// retryablehttp client, maps failures to the error types of package svix and
// logs requests when debugging is enabled.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is safe for concurrent use. It carries no base URL or credentials;
// those travel with each Request.
type Client struct {
	httpClient *retryablehttp.Client
	logger     svix.Logger
	debug      bool
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and retry logs.
func WithLogger(logger svix.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout bounds each attempt from connection start to the end of the
// response body. 0 disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig enables transport retries on connection errors, 429 and
// 5xx responses. maxRetries 0 disables retries.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new transport. Retries are off and the timeout is the
// library default until options say otherwise.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient: retryClient,
		logger:     svix.NoopLogger{},
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = svix.NoopLogger{}
	}

	// retryablehttp only has something to say when it retries.
	if _, noop := client.logger.(svix.NoopLogger); !noop && client.httpClient.RetryMax > 0 {
		client.httpClient.Logger = &leveledLogger{logger: client.logger}
	}

	client.httpClient.HTTPClient.Timeout = client.timeout

	return client
}

// Timeout returns the per-attempt timeout, 0 meaning none.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	BaseURL string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do performs an HTTP request. A non-2xx response returns both the Response
// and an *svix.APIError; a request that got no response returns an
// *svix.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := strings.TrimSuffix(req.BaseURL, "/") + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		body    []byte
		rawBody interface{}
	)

	if req.Body != nil {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	if body != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":          req.Method,
			"url":             fullURL,
			"idempotency_key": httpReq.Header.Get(constants.HeaderIdempotencyKey),
			"body_size":       len(body),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		return nil, &svix.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &svix.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      fullURL,
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"size":     len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, svix.NewAPIError(httpResp.StatusCode, bytes.TrimSpace(respBody))
	}

	return resp, nil
}
