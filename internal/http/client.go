// Package http is the request dispatcher of the Lockstep client. It sends one
// request per call and returns every HTTP response, whatever its status, to
// the caller. Only a failure to obtain a response is reported as an error.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/lockstep-client/internal/auth"
	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging interface used by the dispatcher.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call.
type Request struct {
	// Name identifies the endpoint for logs and metrics.
	Name   string
	Method string
	// Path is relative to the base URL with identifiers already substituted.
	Path  string
	Query url.Values
	// Body is encoded as JSON when non-nil.
	Body    any
	Headers map[string]string
	// Accept defaults to application/json.
	Accept string
}

// Response is the status, headers and body of an HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Raw converts the response to the public raw form.
func (r *Response) Raw() *lockstep.RawResponse {
	return &lockstep.RawResponse{
		StatusCode: r.StatusCode,
		Header:     r.Header,
		Body:       r.Body,
	}
}

// Client sends requests to one Lockstep API root.
type Client struct {
	baseURL          string
	credentials      auth.Credentials
	httpClient       *retryablehttp.Client
	logger           Logger
	debug            bool
	userAgent        string
	timeout          time.Duration
	timeoutSet       bool
	maxResponseBytes int64
	interceptors     *lockstep.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables transport retries. Retries are off by default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient uses a shallow copy of httpClient as the underlying client.
// The caller's client is never modified; its Transport is shared.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			cp := *httpClient
			c.httpClient.HTTPClient = &cp
		}
	}
}

// WithTimeout sets the per-request timeout. It takes precedence over the
// timeout of a client passed to WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.timeoutSet = true
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *lockstep.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithMaxResponseBytes caps the size of a response body.
func WithMaxResponseBytes(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxResponseBytes = limit
		}
	}
}

// NewClient creates a dispatcher for baseURL. credentials may be nil for
// unauthenticated endpoints.
func NewClient(baseURL string, credentials auth.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		credentials:      credentials,
		httpClient:       retryClient,
		userAgent:        constants.DefaultUserAgent,
		timeout:          constants.DefaultHTTPTimeout,
		maxResponseBytes: constants.DefaultMaxResponseBytes,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 && (client.timeoutSet || retryClient.HTTPClient.Timeout == 0) {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	if client.logger != nil && client.debug && retryClient.RetryMax > 0 {
		retryClient.Logger = leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req. Any HTTP response is returned with a nil error; a
// *lockstep.TransportError is returned when no response was obtained.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding request body: %w", constants.ErrInvalidRequest, err)
		}

		body = encoded
	}

	header, err := c.buildHeader(ctx, req, body != nil)
	if err != nil {
		return nil, err
	}

	intercepted := &lockstep.Request{
		Name:    req.Name,
		Method:  req.Method,
		Path:    req.Path,
		Headers: header,
		Body:    body,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, c.transportError(req, err)
	}

	c.logRequest(req, header)

	start := time.Now()

	resp, err := c.send(ctx, req.Method, fullURL, intercepted.Headers, body)
	if err != nil {
		terr := c.transportError(req, err)
		c.afterResponse(ctx, intercepted, &lockstep.HTTPResponse{Error: terr})
		c.logFailure(req, terr, time.Since(start))

		return nil, terr
	}

	c.afterResponse(ctx, intercepted, &lockstep.HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       resp.Body,
	})
	c.logResponse(req, resp, time.Since(start))

	return resp, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) send(ctx context.Context, method, fullURL string, header http.Header, body []byte) (*Response, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = header

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	data, err := readLimited(httpResp.Body, c.maxResponseBytes)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

func readLimited(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", constants.ErrResponseTooLarge, limit)
	}

	return data, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	if encoded := cleanQuery(query).Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	return fullURL
}

// cleanQuery drops empty values, and keys left with no values.
func cleanQuery(query url.Values) url.Values {
	cleaned := url.Values{}

	for key, values := range query {
		for _, value := range values {
			if value != "" {
				cleaned.Add(key, value)
			}
		}
	}

	return cleaned
}

func (c *Client) buildHeader(ctx context.Context, req *Request, hasBody bool) (http.Header, error) {
	header := make(http.Header)

	accept := req.Accept
	if accept == "" {
		accept = constants.MediaTypeJSON
	}

	header.Set(constants.HeaderAccept, accept)
	header.Set(constants.HeaderUserAgent, c.userAgent)
	header.Set(constants.HeaderSDKType, constants.SDKType)
	header.Set(constants.HeaderSDKVersion, constants.SDKVersion)
	header.Set(constants.HeaderRequestID, uuid.NewString())

	if hasBody {
		header.Set(constants.HeaderContentType, constants.MediaTypeJSON)
	}

	for key, value := range req.Headers {
		header.Set(key, value)
	}

	if c.credentials != nil {
		err := c.credentials.Apply(ctx, header)
		if err != nil {
			return nil, fmt.Errorf("applying credentials: %w", err)
		}
	}

	return header, nil
}

func (c *Client) transportError(req *Request, err error) *lockstep.TransportError {
	return &lockstep.TransportError{Method: req.Method, Path: req.Path, Err: err}
}

func (c *Client) afterResponse(ctx context.Context, req *lockstep.Request, resp *lockstep.HTTPResponse) {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("Response interceptor failed", map[string]interface{}{
			"endpoint": req.Name,
			"error":    err.Error(),
		})
	}
}

// logRequest records query keys only; filter values can carry customer data.
func (c *Client) logRequest(req *Request, header http.Header) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"endpoint":   req.Name,
		"method":     req.Method,
		"path":       req.Path,
		"query_keys": queryKeys(req.Query),
		"request_id": header.Get(constants.HeaderRequestID),
	})
}

func queryKeys(query url.Values) []string {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func (c *Client) logResponse(req *Request, resp *Response, elapsed time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"endpoint":    req.Name,
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
		"bytes":       len(resp.Body),
		"duration_ms": elapsed.Milliseconds(),
	})
}

func (c *Client) logFailure(req *Request, err error, elapsed time.Duration) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP Transport Error", map[string]interface{}{
		"endpoint":    req.Name,
		"method":      req.Method,
		"path":        req.Path,
		"error":       err.Error(),
		"duration_ms": elapsed.Milliseconds(),
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, kvFields(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, kvFields(keysAndValues))
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, kvFields(keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, kvFields(keysAndValues))
}

func kvFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
