package api

import (
	"io"
	"strconv"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody is a ReadCloser that simulates reading response data
type MockResponseBody struct {
	data   []byte
	pos    int
	closed bool
}

// NewMockResponseBody creates a new MockResponseBody with the given data
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	m.closed = true
	return nil
}

// recordedRequest is a snapshot of a request seen by MockHttpClient
type recordedRequest struct {
	Method      string
	URL         string
	Header      fhttp.Header
	Body        string
	HasDeadline bool
}

// MockHttpClient is a mock HTTPDoer for testing
type MockHttpClient struct {
	Response *fhttp.Response
	Err      error
	// Handler, when set, takes precedence over Response/Err
	Handler func(req *fhttp.Request) (*fhttp.Response, error)

	mu       sync.Mutex
	Requests []recordedRequest
}

// Do implements HTTPDoer
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	rec := recordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
	}
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		rec.Body = string(data)
	}
	_, rec.HasDeadline = req.Context().Deadline()

	m.mu.Lock()
	m.Requests = append(m.Requests, rec)
	m.mu.Unlock()

	if m.Handler != nil {
		return m.Handler(req)
	}
	return m.Response, m.Err
}

// NewMockHttpClient creates a new MockHttpClient with a successful response
func NewMockHttpClient(body []byte, statusCode int) *MockHttpClient {
	return &MockHttpClient{
		Response: newMockResponse(body, statusCode),
	}
}

// NewMockHttpClientWithError creates a new MockHttpClient that returns an error
func NewMockHttpClientWithError(err error) *MockHttpClient {
	return &MockHttpClient{
		Response: nil,
		Err:      err,
	}
}

func newMockResponse(body []byte, statusCode int) *fhttp.Response {
	return &fhttp.Response{
		StatusCode: statusCode,
		Status:     statusLine(statusCode),
		Body:       NewMockResponseBody(body),
		Header:     make(fhttp.Header),
	}
}

func statusLine(code int) string {
	text := fhttp.StatusText(code)
	if text == "" {
		return ""
	}
	return strconv.Itoa(code) + " " + text
}
