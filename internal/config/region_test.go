package config_test

import (
	"testing"

	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		serverURL string
		expected  string
	}{
		{name: "us suffix", token: "testsk_abc.us", expected: "https://api.us.svix.com"},
		{name: "eu suffix", token: "testsk_abc.eu", expected: "https://api.eu.svix.com"},
		{name: "in suffix", token: "testsk_abc.in", expected: "https://api.in.svix.com"},
		{name: "only the last segment counts", token: "a.us.eu", expected: "https://api.eu.svix.com"},
		{name: "region in the middle", token: "a.us.xx", expected: "https://api.svix.com"},
		{name: "unknown suffix", token: "testsk_abc.de", expected: "https://api.svix.com"},
		{name: "suffix is case sensitive", token: "testsk_abc.US", expected: "https://api.svix.com"},
		{name: "no dot", token: "secret", expected: "https://api.svix.com"},
		{name: "trailing dot", token: "secret.", expected: "https://api.svix.com"},
		{name: "bare region", token: "us", expected: "https://api.us.svix.com"},
		{name: "empty token", token: "", expected: "https://api.svix.com"},
		{name: "override wins", token: "secret.eu", serverURL: "https://custom.example", expected: "https://custom.example"},
		{name: "override without region", token: "secret", serverURL: "http://localhost:8071", expected: "http://localhost:8071"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, config.ResolveBaseURL(tt.token, tt.serverURL))
		})
	}
}
