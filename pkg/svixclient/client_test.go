package svixclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/fivetwenty-io/svix-client/pkg/svixclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		client := svixclient.New("testsk_abc.us", nil)
		require.NotNil(t, client)
		assert.Equal(t, "https://api.us.svix.com", client.BaseURL())
	})

	t.Run("with options", func(t *testing.T) {
		t.Parallel()

		client := svixclient.New("testsk_abc.us", &svix.Options{ServerURL: "https://svix.internal"})
		assert.Equal(t, "https://svix.internal", client.BaseURL())
	})
}

func TestNewWithServerURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/app/app_1", request.URL.Path)
		assert.Equal(t, "Bearer testsk_abc", request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`{"id":"app_1","name":"demo"}`))
	}))
	defer server.Close()

	client := svixclient.NewWithServerURL("testsk_abc", server.URL)
	assert.Equal(t, server.URL, client.BaseURL())

	app, err := client.Applications().Get(context.Background(), "app_1")
	require.NoError(t, err)
	assert.Equal(t, "demo", app.Name)
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"SVIX_TOKEN", "SVIX_SERVER_URL", "SVIX_TIMEOUT", "SVIX_DEBUG", "SVIX_RETRY_MAX"} {
		t.Setenv(name, "")
	}
}

func TestNewFromConfig(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "svix.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: testsk_file.in\ntimeout: none\ndebug: true\n"), 0o600))

	client, err := svixclient.NewFromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.in.svix.com", client.BaseURL())

	derived := client.WithToken("testsk_other.eu")
	assert.Equal(t, "https://api.eu.svix.com", derived.BaseURL())
}

func TestNewFromEnv(t *testing.T) {
	clearEnv(t)

	t.Run("missing token", func(t *testing.T) {
		_, err := svixclient.NewFromEnv()
		require.ErrorIs(t, err, constants.ErrTokenRequired)
	})

	t.Run("server url from env", func(t *testing.T) {
		t.Setenv("SVIX_TOKEN", "testsk_env.eu")
		t.Setenv("SVIX_SERVER_URL", "http://localhost:8071")

		client, err := svixclient.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8071", client.BaseURL())
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("SVIX_TOKEN", "testsk_env.eu")
		t.Setenv("SVIX_TIMEOUT", "later")

		_, err := svixclient.NewFromEnv()
		require.ErrorIs(t, err, constants.ErrInvalidTimeout)
	})
}
