// Package config holds the immutable configuration shared by every resource
// client, and loads client settings from a file and the environment.
package config

import (
	"fmt"
	"time"

	"github.com/fivetwenty-io/svix-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/svix-client/internal/http"
)

// Configuration is read-only after construction and safe to share between
// goroutines.
type Configuration struct {
	BaseURL   string
	Token     string
	UserAgent string

	// Timeout is the per-request timeout the Transport was built with.
	// 0 means requests never time out.
	Timeout time.Duration

	// Transport is shared by every Configuration derived with WithToken.
	Transport *internalhttp.Client
}

// UserAgent returns the User-Agent header value of this library.
func UserAgent() string {
	return fmt.Sprintf("%s/%s/%s", constants.Product, constants.Version, constants.PlatformTag)
}

// New builds a Configuration for token. serverURL, when set, overrides the
// region derived from the token.
func New(token, serverURL string, timeout time.Duration, transport *internalhttp.Client) *Configuration {
	return &Configuration{
		BaseURL:   ResolveBaseURL(token, serverURL),
		Token:     token,
		UserAgent: UserAgent(),
		Timeout:   timeout,
		Transport: transport,
	}
}

// WithToken returns a new Configuration for token that reuses the transport
// and timeout of c. The base URL is resolved again unless serverURL is set.
func (c *Configuration) WithToken(token, serverURL string) *Configuration {
	return New(token, serverURL, c.Timeout, c.Transport)
}
