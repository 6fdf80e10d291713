package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
)

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   stripe.Params
	Body    stripe.Params
	Headers map[string]string
}

// Sender is the single entry point used by route modules.
type Sender interface {
	Send(ctx context.Context, req *Request, out any) error
}

// Client sends form-encoded requests and decodes JSON responses.
type Client struct {
	baseURL     string
	credentials *auth.Credentials
	doer        stripe.Doer
	logger      stripe.Logger
	debug       bool
	headers     http.Header

	userAgent       string
	apiVersion      string
	stripeAccount   string
	idempotencyKeys bool
	httpTimeout     time.Duration
	retryMax        int
	retryWaitMin    time.Duration
	retryWaitMax    time.Duration
	registerer      prometheus.Registerer
	metrics         *metrics
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger stripe.Logger) Option {
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

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion overrides the Stripe-Version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithStripeAccount sends every request on behalf of a connected account.
func WithStripeAccount(account string) Option {
	return func(c *Client) {
		c.stripeAccount = account
	}
}

// WithIdempotencyKeys attaches a random Idempotency-Key to POST requests
// that do not carry one.
func WithIdempotencyKeys(enabled bool) Option {
	return func(c *Client) {
		c.idempotencyKeys = enabled
	}
}

// WithRetryConfig enables transport-level retries of 429, 5xx and
// connection failures.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = maxRetries
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the timeout of one HTTP attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpTimeout = timeout
	}
}

// WithDoer replaces the transport.
func WithDoer(doer stripe.Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithMetrics records request counts and latencies in the registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// NewClient creates a new HTTP client for the API at baseURL.
func NewClient(baseURL string, credentials *auth.Credentials, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		credentials:  credentials,
		userAgent:    constants.DefaultUserAgent,
		apiVersion:   constants.APIVersion,
		httpTimeout:  constants.DefaultHTTPTimeout,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.doer == nil {
		client.doer = client.newTransport()
	}

	if client.registerer != nil {
		client.metrics = newMetrics(client.registerer)
	}

	client.headers = client.defaultHeaders()

	return client
}

func (c *Client) newTransport() stripe.Doer {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = c.retryMax
	retryClient.RetryWaitMin = c.retryWaitMin
	retryClient.RetryWaitMax = c.retryWaitMax
	retryClient.HTTPClient.Timeout = c.httpTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	// Attempt logging is only useful when there can be more than one attempt.
	if c.logger != nil && c.debug && c.retryMax > 0 {
		retryClient.Logger = &leveledLogger{logger: c.logger}
	}

	return retryClient.StandardClient()
}

// defaultHeaders is built once and never modified afterwards.
func (c *Client) defaultHeaders() http.Header {
	headers := http.Header{}
	headers.Set(constants.HeaderStripeVersion, c.apiVersion)
	headers.Set(constants.HeaderContentType, constants.ContentTypeForm)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if c.credentials != nil {
		headers.Set(constants.HeaderAuthorization, c.credentials.AuthorizationHeader())
	}

	if c.stripeAccount != "" {
		headers.Set(constants.HeaderStripeAccount, c.stripeAccount)
	}

	return headers
}

// Send performs the request and decodes a 200 response into out.
// Every other outcome is returned as a *stripe.Error, or as a
// *stripe.DecodeError when a body does not have the expected shape.
func (c *Client) Send(ctx context.Context, req *Request, out any) error {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return stripe.NewConnectionError(err)
	}

	c.logRequest(httpReq)

	start := time.Now()

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		c.observe(req.Method, "error", start)
		c.logWarn("HTTP request failed", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})

		return stripe.NewConnectionError(err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.observe(req.Method, "error", start)

		return stripe.NewConnectionError(fmt.Errorf("reading response body: %w", err))
	}

	c.observe(req.Method, strconv.Itoa(httpResp.StatusCode), start)
	c.logResponse(req, httpResp, time.Since(start))

	return decodeResponse(httpResp, body, out)
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if query := stripe.Encode(req.Query); query != "" {
		target += "?" + query
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = strings.NewReader(stripe.Encode(req.Body))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = c.headers.Clone()

	if c.idempotencyKeys && req.Method == http.MethodPost {
		httpReq.Header.Set(constants.HeaderIdempotencyKey, uuid.NewString())
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func decodeResponse(httpResp *http.Response, body []byte, out any) error {
	if httpResp.StatusCode == constants.HTTPStatusOK {
		if out == nil {
			return nil
		}

		err := json.Unmarshal(body, out)
		if err != nil {
			return &stripe.DecodeError{Target: fmt.Sprintf("%T", out), StatusCode: httpResp.StatusCode, Err: err}
		}

		return nil
	}

	apiErr, err := stripe.ParseError(httpResp.StatusCode, body)
	if err != nil {
		return err
	}

	apiErr.RequestID = httpResp.Header.Get(constants.HeaderRequestID)

	return apiErr
}

func (c *Client) observe(method, status string, start time.Time) {
	if c.metrics == nil {
		return
	}

	c.metrics.requests.WithLabelValues(method, status).Inc()
	c.metrics.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (c *Client) logRequest(req *http.Request) {
	if c.logger == nil || !c.debug {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"headers": redactHeaders(req.Header),
	})
}

func (c *Client) logResponse(req *Request, resp *http.Response, duration time.Duration) {
	if c.logger == nil || !c.debug {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":     req.Method,
		"path":       req.Path,
		"status":     resp.StatusCode,
		"duration":   duration.String(),
		"request_id": resp.Header.Get(constants.HeaderRequestID),
	})
}

func (c *Client) logWarn(msg string, fields map[string]interface{}) {
	if c.logger == nil {
		return
	}

	c.logger.Warn(msg, fields)
}

func redactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))
	for key := range headers {
		redacted[key] = headers.Get(key)
	}

	if _, ok := redacted[constants.HeaderAuthorization]; ok {
		redacted[constants.HeaderAuthorization] = constants.MaskedSecret
	}

	return redacted
}
