package svix

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantDetail string
		wantError  string
	}{
		{
			name:       "string detail",
			status:     http.StatusNotFound,
			body:       `{"code":"not_found","detail":"Application not found"}`,
			wantCode:   "not_found",
			wantDetail: "Application not found",
			wantError:  "api error (404): not_found: Application not found",
		},
		{
			name:       "validation detail",
			status:     http.StatusUnprocessableEntity,
			body:       `{"detail":[{"loc":["body","name"],"msg":"field required","type":"value_error.missing"}]}`,
			wantDetail: `[{"loc":["body","name"],"msg":"field required","type":"value_error.missing"}]`,
			wantError:  `api error (422): [{"loc":["body","name"],"msg":"field required","type":"value_error.missing"}]`,
		},
		{
			name:      "non json body",
			status:    http.StatusBadGateway,
			body:      "<html>bad gateway</html>",
			wantError: "api error (502): Bad Gateway",
		},
		{
			name:      "empty body",
			status:    http.StatusInternalServerError,
			wantError: "api error (500): Internal Server Error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewAPIError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.body, string(err.Body))
			assert.Equal(t, tt.wantError, err.Error())

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, err.DetailString())
			}
		})
	}
}

func TestAPIError_ValidationErrors(t *testing.T) {
	t.Parallel()

	err := NewAPIError(http.StatusUnprocessableEntity,
		[]byte(`{"detail":[{"loc":["body","url"],"msg":"invalid url","type":"value_error"}]}`))

	validation := err.ValidationErrors()
	require.Len(t, validation, 1)
	assert.Equal(t, []string{"body", "url"}, validation[0].Loc)
	assert.Equal(t, "invalid url", validation[0].Msg)
	assert.Equal(t, "value_error", validation[0].Type)

	assert.Nil(t, NewAPIError(http.StatusNotFound, []byte(`{"detail":"nope"}`)).ValidationErrors())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing: %w", NewAPIError(http.StatusNotFound, nil))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.True(t, IsUnauthorized(NewAPIError(http.StatusUnauthorized, nil)))
	assert.True(t, IsForbidden(NewAPIError(http.StatusForbidden, nil)))
	assert.True(t, IsConflict(NewAPIError(http.StatusConflict, nil)))
	assert.True(t, IsValidation(NewAPIError(http.StatusUnprocessableEntity, nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		err := &TransportError{Method: http.MethodGet, URL: "https://api.svix.com/api/v1/app", Err: timeoutNetError{}}

		assert.True(t, err.Timeout())
		assert.True(t, IsTimeout(err))
		require.ErrorIs(t, err, ErrTimeout)
		assert.Contains(t, err.Error(), "request timed out")
	})

	t.Run("deadline", func(t *testing.T) {
		t.Parallel()

		err := &TransportError{Method: http.MethodGet, URL: "u", Err: fmt.Errorf("wrapped: %w", ErrTimeout)}

		assert.True(t, IsTimeout(err))
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
		err := &TransportError{Method: http.MethodPost, URL: "u", Err: cause}

		assert.False(t, err.Timeout())
		assert.False(t, IsTimeout(err))
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "POST u: dial tcp 127.0.0.1:1: connect: connection refused", err.Error())
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		err := &TransportError{Method: http.MethodGet, URL: "u", Err: context.Canceled}

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, IsTimeout(err))
	})
}

func TestSerializationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := &SerializationError{StatusCode: http.StatusOK, Body: []byte("{"), Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "decoding response (200): unexpected end of JSON input", err.Error())

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
