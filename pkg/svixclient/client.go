package svixclient

import (
	"fmt"

	"github.com/fivetwenty-io/svix-client/internal/client"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/sirupsen/logrus"
)

// New creates a client authenticated with token. nil opts selects the
// defaults: region from the token, 15 second timeout, no retries, no logs.
// It performs no I/O and cannot fail.
func New(token string, opts *svix.Options) svix.Client {
	return client.New(token, opts)
}

// NewWithServerURL creates a client that sends every request to serverURL
// instead of the region derived from token.
func NewWithServerURL(token, serverURL string) svix.Client {
	return client.New(token, &svix.Options{ServerURL: serverURL})
}

// NewFromConfig creates a client from the YAML settings file at path, with
// SVIX_* environment variables taking precedence. An empty path reads the
// environment only. When debug is enabled, requests are logged at debug
// level through logrus to standard error.
func NewFromConfig(path string) (svix.Client, error) {
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading client settings: %w", err)
	}

	return client.New(settings.Token, optionsFromSettings(settings)), nil
}

// NewFromEnv creates a client from SVIX_* environment variables.
func NewFromEnv() (svix.Client, error) {
	return NewFromConfig("")
}

// optionsFromSettings converts loaded settings to client options.
func optionsFromSettings(settings *config.Settings) *svix.Options {
	opts := &svix.Options{
		ServerURL: settings.ServerURL,
		Timeout:   settings.Timeout,
		Debug:     settings.Debug,
		RetryMax:  settings.RetryMax,
	}

	if settings.Debug {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		opts.Logger = svix.NewLogrusLogger(logger)
	}

	return opts
}
