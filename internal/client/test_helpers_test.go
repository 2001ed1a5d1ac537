package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/stretchr/testify/require"
)

const testToken = "testsk_abc.eu"

// recordedRequest is what the test server saw of one request.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// recorder answers every request with the same status and body and keeps a
// copy of each request.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (r *recorder) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method: request.Method,
		Path:   request.URL.EscapedPath(),
		Query:  request.URL.Query(),
		Header: request.Header.Clone(),
		Body:   body,
	})
	status, payload := r.status, r.body
	r.mu.Unlock()

	if payload != "" {
		writer.Header().Set("Content-Type", "application/json")
	}

	writer.WriteHeader(status)

	if payload != "" {
		_, _ = writer.Write([]byte(payload))
	}
}

func (r *recorder) respond(status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status = status
	r.body = body
}

// last returns the most recent request, failing the test when there is none.
func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests, "no request reached the server")

	return r.requests[len(r.requests)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests)
}

// newTestClient starts a server answering 200 with an empty list page and
// returns a client pointed at it.
func newTestClient(t *testing.T) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{status: http.StatusOK, body: `{"data":[],"done":true,"iterator":null}`}

	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	return New(testToken, &svix.Options{ServerURL: server.URL}), rec
}
