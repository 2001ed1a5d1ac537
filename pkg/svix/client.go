package svix

// ResourceClients provides access to all resource-specific clients. Every
// accessor builds a new lightweight client sharing the configuration of the
// Client; none of them perform I/O.
type ResourceClients interface {
	Authentication() AuthenticationClient
	Applications() ApplicationsClient
	BackgroundTasks() BackgroundTasksClient
	Endpoints() EndpointsClient
	Integrations() IntegrationsClient
	EventTypes() EventTypesClient
	Messages() MessagesClient
	MessageAttempts() MessageAttemptsClient
	OperationalWebhookEndpoints() OperationalWebhookEndpointsClient
	Statistics() StatisticsClient
}

// Client is the entry point of the API. It is safe for concurrent use.
type Client interface {
	ResourceClients

	// WithToken returns a new Client authenticated with token. It shares the
	// HTTP transport, the timeout and any ServerURL override; without an
	// override the region is derived again from the new token. The receiver
	// is not modified.
	WithToken(token string) Client

	// BaseURL returns the API base URL requests are sent to.
	BaseURL() string
}
