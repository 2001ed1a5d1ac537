package svix

import "context"

// AuthenticationClient issues access links for the application portal and
// the dashboard.
type AuthenticationClient interface {
	DashboardAccess(ctx context.Context, appID string, opts *PostOptions) (*DashboardAccessOut, error)
	AppPortalAccess(ctx context.Context, appID string, in AppPortalAccessIn, opts *PostOptions) (*AppPortalAccessOut, error)
	// Logout invalidates the token the client was built with.
	Logout(ctx context.Context, opts *PostOptions) error
}

// ApplicationsClient defines operations for applications.
type ApplicationsClient interface {
	List(ctx context.Context, opts *ApplicationListOptions) (*ListResponseApplicationOut, error)
	Create(ctx context.Context, in ApplicationIn, opts *PostOptions) (*ApplicationOut, error)
	// GetOrCreate returns the application with in.UID if it exists, and
	// creates it otherwise. The existence check happens server-side.
	GetOrCreate(ctx context.Context, in ApplicationIn, opts *PostOptions) (*ApplicationOut, error)
	Get(ctx context.Context, appID string) (*ApplicationOut, error)
	// Update replaces an application. opts.IdempotencyKey is ignored.
	Update(ctx context.Context, appID string, in ApplicationIn, opts *PostOptions) (*ApplicationOut, error)
	// Patch partially updates an application. opts.IdempotencyKey is ignored.
	Patch(ctx context.Context, appID string, in ApplicationPatch, opts *PostOptions) (*ApplicationOut, error)
	Delete(ctx context.Context, appID string) error
}

// EndpointsClient defines operations for the endpoints of an application.
type EndpointsClient interface {
	List(ctx context.Context, appID string, opts *EndpointListOptions) (*ListResponseEndpointOut, error)
	Create(ctx context.Context, appID string, in EndpointIn, opts *PostOptions) (*EndpointOut, error)
	Get(ctx context.Context, appID, endpointID string) (*EndpointOut, error)
	// Update replaces an endpoint. opts.IdempotencyKey is ignored.
	Update(ctx context.Context, appID, endpointID string, in EndpointUpdate, opts *PostOptions) (*EndpointOut, error)
	// Patch partially updates an endpoint. opts.IdempotencyKey is ignored.
	Patch(ctx context.Context, appID, endpointID string, in EndpointPatch, opts *PostOptions) (*EndpointOut, error)
	Delete(ctx context.Context, appID, endpointID string) error

	GetSecret(ctx context.Context, appID, endpointID string) (*EndpointSecretOut, error)
	RotateSecret(ctx context.Context, appID, endpointID string, in EndpointSecretRotateIn) error

	// Recover resends every failed message since in.Since.
	Recover(ctx context.Context, appID, endpointID string, in RecoverIn) error
	// ReplayMissing sends the messages the endpoint never received since in.Since.
	ReplayMissing(ctx context.Context, appID, endpointID string, in ReplayIn, opts *PostOptions) error

	GetHeaders(ctx context.Context, appID, endpointID string) (*EndpointHeadersOut, error)
	UpdateHeaders(ctx context.Context, appID, endpointID string, in EndpointHeadersIn) error
	PatchHeaders(ctx context.Context, appID, endpointID string, in EndpointHeadersPatchIn) error

	GetStats(ctx context.Context, appID, endpointID string, opts *EndpointStatsOptions) (*EndpointStats, error)

	TransformationGet(ctx context.Context, appID, endpointID string) (*EndpointTransformationOut, error)
	TransformationPartialUpdate(ctx context.Context, appID, endpointID string, in EndpointTransformationIn) error

	SendExample(ctx context.Context, appID, endpointID string, in EventExampleIn, opts *PostOptions) (*MessageOut, error)
}

// IntegrationsClient defines operations for the integrations of an application.
type IntegrationsClient interface {
	List(ctx context.Context, appID string, opts *IntegrationListOptions) (*ListResponseIntegrationOut, error)
	Create(ctx context.Context, appID string, in IntegrationIn, opts *PostOptions) (*IntegrationOut, error)
	Get(ctx context.Context, appID, integID string) (*IntegrationOut, error)
	// Update replaces an integration. opts.IdempotencyKey is ignored.
	Update(ctx context.Context, appID, integID string, in IntegrationUpdate, opts *PostOptions) (*IntegrationOut, error)
	Delete(ctx context.Context, appID, integID string) error
	GetKey(ctx context.Context, appID, integID string) (*IntegrationKeyOut, error)
	RotateKey(ctx context.Context, appID, integID string) (*IntegrationKeyOut, error)
}

// EventTypesClient defines operations for event types.
type EventTypesClient interface {
	List(ctx context.Context, opts *EventTypeListOptions) (*ListResponseEventTypeOut, error)
	Create(ctx context.Context, in EventTypeIn, opts *PostOptions) (*EventTypeOut, error)
	Get(ctx context.Context, eventTypeName string) (*EventTypeOut, error)
	// Update replaces an event type. opts.IdempotencyKey is ignored.
	Update(ctx context.Context, eventTypeName string, in EventTypeUpdate, opts *PostOptions) (*EventTypeOut, error)
	// Patch partially updates an event type. opts.IdempotencyKey is ignored.
	Patch(ctx context.Context, eventTypeName string, in EventTypePatch, opts *PostOptions) (*EventTypeOut, error)
	// Delete archives an event type.
	Delete(ctx context.Context, eventTypeName string) error
	ImportOpenAPI(ctx context.Context, in EventTypeImportOpenAPIIn, opts *PostOptions) (*EventTypeImportOpenAPIOut, error)
}

// MessagesClient defines operations for the messages of an application.
type MessagesClient interface {
	List(ctx context.Context, appID string, opts *MessageListOptions) (*ListResponseMessageOut, error)
	Create(ctx context.Context, appID string, in MessageIn, opts *PostOptions) (*MessageOut, error)
	Get(ctx context.Context, appID, msgID string) (*MessageOut, error)
	// ExpungeContent deletes the payload of a message, keeping its metadata.
	ExpungeContent(ctx context.Context, appID, msgID string) error
}

// MessageAttemptsClient defines operations for message delivery attempts.
type MessageAttemptsClient interface {
	ListByMsg(ctx context.Context, appID, msgID string, opts *MessageAttemptListOptions) (*ListResponseMessageAttemptOut, error)
	// ListByEndpoint ignores opts.EndpointID.
	ListByEndpoint(ctx context.Context, appID, endpointID string, opts *MessageAttemptListByEndpointOptions) (*ListResponseMessageAttemptOut, error)
	// ListAttemptedMessages ignores opts.StatusCodeClass and opts.EndpointID.
	ListAttemptedMessages(ctx context.Context, appID, endpointID string, opts *MessageAttemptListOptions) (*ListResponseEndpointMessageOut, error)
	ListAttemptedDestinations(ctx context.Context, appID, msgID string, opts *ListOptions) (*ListResponseMessageEndpointOut, error)
	// ListAttemptsForEndpoint ignores opts.StatusCodeClass, opts.EndpointID
	// and opts.WithContent.
	ListAttemptsForEndpoint(ctx context.Context, appID, msgID, endpointID string, opts *MessageAttemptListOptions) (*ListResponseMessageAttemptEndpointOut, error)
	Get(ctx context.Context, appID, msgID, attemptID string) (*MessageAttemptOut, error)
	Resend(ctx context.Context, appID, msgID, endpointID string) error
	ExpungeContent(ctx context.Context, appID, msgID, attemptID string) error
}

// OperationalWebhookEndpointsClient defines operations for operational webhook endpoints.
type OperationalWebhookEndpointsClient interface {
	List(ctx context.Context, opts *OperationalWebhookEndpointListOptions) (*ListResponseOperationalWebhookEndpointOut, error)
	Create(ctx context.Context, in OperationalWebhookEndpointIn, opts *PostOptions) (*OperationalWebhookEndpointOut, error)
	Get(ctx context.Context, endpointID string) (*OperationalWebhookEndpointOut, error)
	// Update replaces an operational webhook endpoint. opts.IdempotencyKey is ignored.
	Update(ctx context.Context, endpointID string, in OperationalWebhookEndpointUpdate, opts *PostOptions) (*OperationalWebhookEndpointOut, error)
	Delete(ctx context.Context, endpointID string) error
	GetSecret(ctx context.Context, endpointID string) (*OperationalWebhookEndpointSecretOut, error)
	RotateSecret(ctx context.Context, endpointID string, in OperationalWebhookEndpointSecretIn) error
}

// BackgroundTasksClient defines operations for background tasks.
type BackgroundTasksClient interface {
	List(ctx context.Context, opts *BackgroundTaskListOptions) (*ListResponseBackgroundTaskOut, error)
	Get(ctx context.Context, taskID string) (*BackgroundTaskOut, error)
}

// StatisticsClient starts statistics background tasks.
type StatisticsClient interface {
	// AggregateAppStats takes its time range as a required argument rather
	// than an options pointer.
	AggregateAppStats(ctx context.Context, in AggregateAppStatsOptions, opts *PostOptions) (*AppUsageStatsOut, error)
	AggregateEventTypes(ctx context.Context) (*AggregateEventTypesOut, error)
}
