//go:build integration

// Package integration runs the client against a live Svix server. Set
// SVIX_TOKEN, and SVIX_SERVER_URL for a self-hosted server, then run
// go test -tags integration ./test/integration/...
package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/fivetwenty-io/svix-client/pkg/svixclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Token     string
	ServerURL string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Token:     os.Getenv("SVIX_TOKEN"),
		ServerURL: os.Getenv("SVIX_SERVER_URL"),
		Verbose:   os.Getenv("SVIX_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no token is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("SVIX_TOKEN not set, skipping integration test")
	}
}

// NewClient builds a client from the environment.
func (config *TestConfig) NewClient(t *testing.T) svix.Client {
	t.Helper()

	client, err := svixclient.NewFromEnv()
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupApplication deletes an application, logging failures.
func (config *TestConfig) CleanupApplication(t *testing.T, client svix.Client, appID string) {
	t.Helper()

	err := client.Applications().Delete(context.Background(), appID)
	if err != nil && !svix.IsNotFound(err) && config.Verbose {
		t.Logf("Cleanup warning for application %s: %v", appID, err)
	}
}

// WaitForCondition polls condition until it holds or timeout expires.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}
