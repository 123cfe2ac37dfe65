// Package errors provides custom error types for the msgboard client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidResponse = errors.New("invalid response format")
	ErrEmptyContent    = errors.New("message content cannot be empty")
	ErrBusy            = errors.New("a request is already in flight")
)

// APIError represents a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Internal Server Error"
	Endpoint   string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error [%d] at %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, status, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// WithBody attaches the raw response body
func (e *APIError) WithBody(body string) *APIError {
	e.Body = body
	return e
}

// NetworkError represents a transport-level failure (no response received)
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "Network error"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// TimeoutError represents a request that exceeded its deadline
type TimeoutError struct {
	Endpoint string
	Timeout  string
}

func (e *TimeoutError) Error() string {
	if e.Timeout == "" {
		return "request timed out"
	}
	return fmt.Sprintf("timeout of %s exceeded", e.Timeout)
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(endpoint, timeout string) *TimeoutError {
	return &TimeoutError{Endpoint: endpoint, Timeout: timeout}
}

// ParseError represents a response body that could not be decoded
type ParseError struct {
	Message  string
	Endpoint string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, endpoint string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// ValidationError is returned when a request is rejected before it is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is matches ErrEmptyContent for content validation failures
func (e *ValidationError) Is(target error) bool {
	if target == ErrEmptyContent {
		return e.Field == "content"
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LoadFailure wraps any failure of the message list fetch
type LoadFailure struct {
	Err error
}

func (e *LoadFailure) Error() string {
	return "Failed to fetch messages: " + reason(e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// SubmitFailure wraps any failure of message creation
type SubmitFailure struct {
	Err error
}

// Error includes the server status when a response was received,
// otherwise the network-level text.
func (e *SubmitFailure) Error() string {
	var apiErr *APIError
	if errors.As(e.Err, &apiErr) {
		return fmt.Sprintf("Failed to create message: Server error: %d - %s", apiErr.StatusCode, apiErr.Status)
	}
	return "Failed to create message: " + reason(e.Err)
}

func (e *SubmitFailure) Unwrap() error {
	return e.Err
}

func reason(err error) string {
	if err == nil || err.Error() == "" {
		return "Network error"
	}
	return err.Error()
}

// GetHTTPStatus returns the HTTP status carried by err, or 0
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint returns the endpoint carried by err, or ""
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Endpoint
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Endpoint
	}
	return ""
}

// GetResponseBody returns the raw response body carried by err, or ""
func GetResponseBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return ""
}

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsTimeoutError reports whether err is a timeout
func IsTimeoutError(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsServerError reports whether err carries a 5xx status
func IsServerError(err error) bool {
	return GetHTTPStatus(err) >= 500
}

// IsLoadFailure reports whether err is a LoadFailure
func IsLoadFailure(err error) bool {
	var f *LoadFailure
	return errors.As(err, &f)
}

// IsSubmitFailure reports whether err is a SubmitFailure
func IsSubmitFailure(err error) bool {
	var f *SubmitFailure
	return errors.As(err, &f)
}
