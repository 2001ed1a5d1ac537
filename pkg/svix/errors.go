package svix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrTimeout matches, via errors.Is, any TransportError caused by the
// request timeout or a context deadline.
var ErrTimeout = errors.New("request timed out")

// TransportError is returned when the request never produced an HTTP
// response: connection refused, DNS failure, TLS failure or timeout.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.URL, ErrTimeout, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was caused by a timeout.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(e.Err, ErrTimeout)
}

// Is lets errors.Is(err, ErrTimeout) succeed for timeouts.
func (e *TransportError) Is(target error) bool {
	return target == ErrTimeout && e.Timeout()
}

// APIError is returned for every non-2xx HTTP response. The body is kept
// verbatim; Code and Detail are filled in when it has the usual
// {"code": ..., "detail": ...} shape.
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Detail     json.RawMessage `json:"detail"`
	Body       []byte          `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" && len(e.Detail) == 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if e.Code == "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.DetailString())
	}

	return fmt.Sprintf("api error (%d): %s: %s", e.StatusCode, e.Code, e.DetailString())
}

// DetailString returns Detail as text. String details are unquoted, structured
// details (validation errors) are returned as raw JSON.
func (e *APIError) DetailString() string {
	var text string
	if err := json.Unmarshal(e.Detail, &text); err == nil {
		return text
	}

	return string(e.Detail)
}

// ValidationErrors decodes the detail of a 422 response.
func (e *APIError) ValidationErrors() []ValidationError {
	var out []ValidationError
	if err := json.Unmarshal(e.Detail, &out); err != nil {
		return nil
	}

	return out
}

// ValidationError is one entry of an HTTP 422 error body.
type ValidationError struct {
	Loc  []string `json:"loc"  yaml:"loc"`
	Msg  string   `json:"msg"  yaml:"msg"`
	Type string   `json:"type" yaml:"type"`
}

// NewAPIError builds an APIError from a status code and raw body.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	if len(body) > 0 {
		// A body that is not JSON is still reported through Body.
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}

// SerializationError is returned when a successful response body does not
// match the expected schema.
type SerializationError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("decoding response (%d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the decoder error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

func statusOf(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is an API 404.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an API 401.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is an API 403.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsConflict checks if the error is an API 409.
func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

// IsValidation checks if the error is an API 422.
func IsValidation(err error) bool {
	return statusOf(err) == http.StatusUnprocessableEntity
}

// IsTimeout checks if the error is a transport timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
