// Package client implements the svix.Client facade and its resource clients
// on top of the operation catalog.
package client

import (
	"time"

	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/internal/http"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// Client implements the svix.Client interface.
type Client struct {
	config    *config.Configuration
	serverURL string
}

// createHTTPClientOptions builds transport options from opts.
func createHTTPClientOptions(opts *svix.Options) []http.Option {
	httpOpts := []http.Option{
		http.WithTimeout(resolveTimeout(opts.Timeout)),
	}

	if opts.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(opts.Logger))
	}

	if opts.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if opts.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if opts.RetryWaitMin > 0 {
			retryWaitMin = opts.RetryWaitMin
		}

		if opts.RetryWaitMax > 0 {
			retryWaitMax = opts.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(opts.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// resolveTimeout maps the optional timeout to the transport timeout. Negative
// values disable the timeout like 0 does.
func resolveTimeout(timeout *time.Duration) time.Duration {
	if timeout == nil {
		return constants.DefaultHTTPTimeout
	}

	if *timeout < 0 {
		return 0
	}

	return *timeout
}

// New creates a client for token. nil opts selects every default. The
// transport is created once here and shared by every client derived with
// WithToken.
func New(token string, opts *svix.Options) *Client {
	if opts == nil {
		opts = &svix.Options{}
	}

	transport := http.NewClient(createHTTPClientOptions(opts)...)

	return newClient(config.New(token, opts.ServerURL, transport.Timeout(), transport), opts.ServerURL)
}

func newClient(cfg *config.Configuration, serverURL string) *Client {
	return &Client{
		config:    cfg,
		serverURL: serverURL,
	}
}

// WithToken implements svix.Client.WithToken.
func (c *Client) WithToken(token string) svix.Client {
	return newClient(c.config.WithToken(token, c.serverURL), c.serverURL)
}

// BaseURL implements svix.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Configuration returns the configuration shared by the resource clients.
func (c *Client) Configuration() *config.Configuration {
	return c.config
}

// Resource client accessors. Each call builds a new client sharing c's
// configuration.

// Authentication implements svix.Client.Authentication.
func (c *Client) Authentication() svix.AuthenticationClient {
	return NewAuthenticationClient(c.config)
}

// Applications implements svix.Client.Applications.
func (c *Client) Applications() svix.ApplicationsClient {
	return NewApplicationsClient(c.config)
}

// BackgroundTasks implements svix.Client.BackgroundTasks.
func (c *Client) BackgroundTasks() svix.BackgroundTasksClient {
	return NewBackgroundTasksClient(c.config)
}

// Endpoints implements svix.Client.Endpoints.
func (c *Client) Endpoints() svix.EndpointsClient {
	return NewEndpointsClient(c.config)
}

// Integrations implements svix.Client.Integrations.
func (c *Client) Integrations() svix.IntegrationsClient {
	return NewIntegrationsClient(c.config)
}

// EventTypes implements svix.Client.EventTypes.
func (c *Client) EventTypes() svix.EventTypesClient {
	return NewEventTypesClient(c.config)
}

// Messages implements svix.Client.Messages.
func (c *Client) Messages() svix.MessagesClient {
	return NewMessagesClient(c.config)
}

// MessageAttempts implements svix.Client.MessageAttempts.
func (c *Client) MessageAttempts() svix.MessageAttemptsClient {
	return NewMessageAttemptsClient(c.config)
}

// OperationalWebhookEndpoints implements svix.Client.OperationalWebhookEndpoints.
func (c *Client) OperationalWebhookEndpoints() svix.OperationalWebhookEndpointsClient {
	return NewOperationalWebhookEndpointsClient(c.config)
}

// Statistics implements svix.Client.Statistics.
func (c *Client) Statistics() svix.StatisticsClient {
	return NewStatisticsClient(c.config)
}

var _ svix.Client = (*Client)(nil)
