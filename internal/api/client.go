// Package api provides the msgboard backend REST client.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"strconv"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	apierrors "github.com/diogo/msgboard/internal/errors"
	"github.com/diogo/msgboard/internal/logging"
	"github.com/diogo/msgboard/internal/models"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 8 << 20

// HTTPDoer is the subset of tls_client.HttpClient the client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportOptions are the fixed per-request defaults
type TransportOptions struct {
	Timeout     time.Duration
	ContentType string
}

// DefaultTransportOptions returns {Timeout: 10s, ContentType: application/json}
func DefaultTransportOptions() TransportOptions {
	return TransportOptions{
		Timeout:     models.DefaultTimeout,
		ContentType: models.DefaultContentType,
	}
}

// MessageClient talks to the message backend rooted at a fixed base address
type MessageClient struct {
	httpClient   HTTPDoer
	baseURL      string
	transport    TransportOptions
	logger       *zap.Logger
	newRequestID func() string
}

// ClientOption is a function that configures the client
type ClientOption func(*MessageClient)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *MessageClient) {
		c.transport.Timeout = timeout
	}
}

// WithContentType sets the Content-Type sent on every request
func WithContentType(contentType string) ClientOption {
	return func(c *MessageClient) {
		c.transport.ContentType = contentType
	}
}

// WithTransportOptions replaces all transport defaults at once
func WithTransportOptions(opts TransportOptions) ClientOption {
	return func(c *MessageClient) {
		c.transport = opts
	}
}

// WithHTTPClient injects the HTTP client (used by tests)
func WithHTTPClient(client HTTPDoer) ClientOption {
	return func(c *MessageClient) {
		c.httpClient = client
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *MessageClient) {
		c.logger = logger
	}
}

// WithRequestIDFunc overrides X-Request-ID generation
func WithRequestIDFunc(fn func() string) ClientOption {
	return func(c *MessageClient) {
		c.newRequestID = fn
	}
}

// NewClient creates a MessageClient. baseURL must be absolute; it is held
// fixed for the lifetime of the client.
func NewClient(baseURL string, opts ...ClientOption) (*MessageClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("base address must be absolute http(s) URL, got %q", baseURL)
	}

	client := &MessageClient{
		baseURL:      baseURL,
		transport:    DefaultTransportOptions(),
		newRequestID: func() string { return uuid.NewString() },
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", client.transport.Timeout)
	}
	if client.transport.ContentType == "" {
		client.transport.ContentType = models.DefaultContentType
	}
	client.logger = logging.OrNop(client.logger)

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(math.Ceil(client.transport.Timeout.Seconds()))),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the resolved base address
func (c *MessageClient) BaseURL() string {
	return c.baseURL
}

// Transport returns the effective transport options
func (c *MessageClient) Transport() TransportOptions {
	return c.transport
}

// do sends one request. The response body is returned even when err is an
// APIError so callers can decode error payloads.
func (c *MessageClient) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	endpoint := c.baseURL + path
	requestID := c.newRequestID()

	ctx, cancel := context.WithTimeout(ctx, c.transport.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req = req.WithContext(ctx)

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", c.transport.ContentType)
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With(
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.String("request_id", requestID),
	)
	log.Debug("sending request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		classified := c.classifyTransportError(ctx, endpoint, err)
		log.Error("request failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, classified
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		classified := c.classifyTransportError(ctx, endpoint, err)
		log.Error("failed to read response body", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, classified
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierrors.NewAPIError(
			resp.StatusCode,
			statusText(resp),
			endpoint,
			errorMessage(data),
		).WithBody(string(data))
		log.Error("backend returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("status_text", apiErr.Status),
			zap.String("message", apiErr.Message),
			zap.Duration("duration", time.Since(start)),
		)
		return data, apiErr
	}

	log.Debug("request succeeded",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)
	return data, nil
}

func (c *MessageClient) classifyTransportError(ctx context.Context, endpoint string, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return apierrors.NewTimeoutError(endpoint, c.transport.Timeout.String())
	}
	return apierrors.NewNetworkError(endpoint, err)
}

// statusText extracts the reason phrase from "500 Internal Server Error"
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if text := strings.TrimPrefix(resp.Status, prefix); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// errorMessage reads the backend's {"error": ..., "message": ...} envelope
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		text := strings.TrimSpace(string(body))
		if len(text) > 200 {
			text = text[:200] + "..."
		}
		return text
	}
	parsed := gjson.ParseBytes(body)
	errText := parsed.Get("error").String()
	detail := parsed.Get("message").String()
	switch {
	case errText != "" && detail != "":
		return errText + ": " + detail
	case errText != "":
		return errText
	default:
		return detail
	}
}
