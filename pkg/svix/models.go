package svix

import (
	"time"
)

// ListResponse is one page of a cursor-paginated list. Iterator is fed back
// into the next call's options; Done is true on the last page.
type ListResponse[T any] struct {
	Data         []T     `json:"data"                   yaml:"data"`
	Done         bool    `json:"done"                   yaml:"done"`
	Iterator     *string `json:"iterator"               yaml:"iterator"`
	PrevIterator *string `json:"prevIterator,omitempty" yaml:"prevIterator,omitempty"`
}

// ListResponseApplicationOut represents a paginated list of applications.
type ListResponseApplicationOut = ListResponse[ApplicationOut]

// ListResponseEndpointOut represents a paginated list of endpoints.
type ListResponseEndpointOut = ListResponse[EndpointOut]

// ListResponseIntegrationOut represents a paginated list of integrations.
type ListResponseIntegrationOut = ListResponse[IntegrationOut]

// ListResponseEventTypeOut represents a paginated list of event types.
type ListResponseEventTypeOut = ListResponse[EventTypeOut]

// ListResponseMessageOut represents a paginated list of messages.
type ListResponseMessageOut = ListResponse[MessageOut]

// ListResponseMessageAttemptOut represents a paginated list of message attempts.
type ListResponseMessageAttemptOut = ListResponse[MessageAttemptOut]

// ListResponseMessageAttemptEndpointOut represents a paginated list of attempts for one endpoint.
type ListResponseMessageAttemptEndpointOut = ListResponse[MessageAttemptEndpointOut]

// ListResponseEndpointMessageOut represents a paginated list of messages sent to an endpoint.
type ListResponseEndpointMessageOut = ListResponse[EndpointMessageOut]

// ListResponseMessageEndpointOut represents a paginated list of endpoints a message was sent to.
type ListResponseMessageEndpointOut = ListResponse[MessageEndpointOut]

// ListResponseOperationalWebhookEndpointOut represents a paginated list of operational webhook endpoints.
type ListResponseOperationalWebhookEndpointOut = ListResponse[OperationalWebhookEndpointOut]

// ListResponseBackgroundTaskOut represents a paginated list of background tasks.
type ListResponseBackgroundTaskOut = ListResponse[BackgroundTaskOut]

// DashboardAccessOut represents a dashboard access URL and its one-time token.
type DashboardAccessOut struct {
	URL   string `json:"url"   yaml:"url"`
	Token string `json:"token" yaml:"token"`
}

// AppPortalAccessIn represents a request for an application portal access link.
type AppPortalAccessIn struct {
	FeatureFlags []string `json:"featureFlags,omitempty" yaml:"featureFlags,omitempty"`
	Expiry       *int32   `json:"expiry,omitempty"       yaml:"expiry,omitempty"`
	ReadOnly     *bool    `json:"readOnly,omitempty"     yaml:"readOnly,omitempty"`
}

// AppPortalAccessOut represents an application portal access URL and its token.
type AppPortalAccessOut struct {
	URL   string `json:"url"   yaml:"url"`
	Token string `json:"token" yaml:"token"`
}

// ApplicationIn represents a request to create or replace an application.
type ApplicationIn struct {
	Name      string            `json:"name"                yaml:"name"`
	UID       *string           `json:"uid,omitempty"       yaml:"uid,omitempty"`
	RateLimit *int32            `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// ApplicationPatch only sends the fields that are set.
type ApplicationPatch struct {
	Name      *string           `json:"name,omitempty"      yaml:"name,omitempty"`
	UID       *string           `json:"uid,omitempty"       yaml:"uid,omitempty"`
	RateLimit *int32            `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// ApplicationOut represents an application.
type ApplicationOut struct {
	ID        string            `json:"id"                  yaml:"id"`
	Name      string            `json:"name"                yaml:"name"`
	UID       *string           `json:"uid,omitempty"       yaml:"uid,omitempty"`
	RateLimit *int32            `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Metadata  map[string]string `json:"metadata"            yaml:"metadata"`
	CreatedAt time.Time         `json:"createdAt"           yaml:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"           yaml:"updatedAt"`
}

// EndpointIn represents a request to create an endpoint.
type EndpointIn struct {
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Channels    []string          `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Secret      *string           `json:"secret,omitempty"      yaml:"secret,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// EndpointUpdate represents a request to replace an endpoint.
type EndpointUpdate struct {
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Channels    []string          `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// EndpointPatch represents a partial endpoint update; nil fields are left unchanged.
type EndpointPatch struct {
	URL         *string           `json:"url,omitempty"         yaml:"url,omitempty"`
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Channels    []string          `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Secret      *string           `json:"secret,omitempty"      yaml:"secret,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// EndpointOut represents a webhook endpoint of an application.
type EndpointOut struct {
	ID          string            `json:"id"                    yaml:"id"`
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description"           yaml:"description"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Channels    []string          `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Disabled    bool              `json:"disabled"              yaml:"disabled"`
	Version     int32             `json:"version"               yaml:"version"`
	Metadata    map[string]string `json:"metadata"              yaml:"metadata"`
	CreatedAt   time.Time         `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"             yaml:"updatedAt"`
}

// EndpointSecretOut represents an endpoint signing secret.
type EndpointSecretOut struct {
	Key string `json:"key" yaml:"key"`
}

// EndpointSecretRotateIn rotates to Key, or to a server-generated secret when Key is nil.
type EndpointSecretRotateIn struct {
	Key *string `json:"key,omitempty" yaml:"key,omitempty"`
}

// RecoverIn represents a request to resend failed messages since a point in time.
type RecoverIn struct {
	Since time.Time  `json:"since"           yaml:"since"`
	Until *time.Time `json:"until,omitempty" yaml:"until,omitempty"`
}

// ReplayIn represents a request to replay messages the endpoint never received.
type ReplayIn struct {
	Since time.Time  `json:"since"           yaml:"since"`
	Until *time.Time `json:"until,omitempty" yaml:"until,omitempty"`
}

// EndpointHeadersIn represents the full set of custom headers of an endpoint.
type EndpointHeadersIn struct {
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// EndpointHeadersPatchIn merges headers; a nil value removes the header.
type EndpointHeadersPatchIn struct {
	Headers map[string]*string `json:"headers" yaml:"headers"`
}

// EndpointHeadersOut represents the custom headers of an endpoint. Sensitive lists headers whose values are redacted.
type EndpointHeadersOut struct {
	Headers   map[string]string `json:"headers"   yaml:"headers"`
	Sensitive []string          `json:"sensitive" yaml:"sensitive"`
}

// EndpointStats represents message counts of an endpoint by delivery status.
type EndpointStats struct {
	Success int64 `json:"success" yaml:"success"`
	Pending int64 `json:"pending" yaml:"pending"`
	Sending int64 `json:"sending" yaml:"sending"`
	Fail    int64 `json:"fail"    yaml:"fail"`
}

// EndpointTransformationIn represents a partial update of an endpoint transformation.
type EndpointTransformationIn struct {
	Code    *string `json:"code,omitempty"    yaml:"code,omitempty"`
	Enabled *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// EndpointTransformationOut represents the transformation code of an endpoint.
type EndpointTransformationOut struct {
	Code    *string `json:"code,omitempty" yaml:"code,omitempty"`
	Enabled bool    `json:"enabled"        yaml:"enabled"`
}

// EventExampleIn represents a request to send an example event to an endpoint.
type EventExampleIn struct {
	EventType    string `json:"eventType"              yaml:"eventType"`
	ExampleIndex *int32 `json:"exampleIndex,omitempty" yaml:"exampleIndex,omitempty"`
}

// IntegrationIn represents a request to create an integration.
type IntegrationIn struct {
	Name         string   `json:"name"                   yaml:"name"`
	FeatureFlags []string `json:"featureFlags,omitempty" yaml:"featureFlags,omitempty"`
}

// IntegrationUpdate represents a request to replace an integration.
type IntegrationUpdate struct {
	Name         string   `json:"name"                   yaml:"name"`
	FeatureFlags []string `json:"featureFlags,omitempty" yaml:"featureFlags,omitempty"`
}

// IntegrationOut represents an integration of an application.
type IntegrationOut struct {
	ID           string    `json:"id"                     yaml:"id"`
	Name         string    `json:"name"                   yaml:"name"`
	FeatureFlags []string  `json:"featureFlags,omitempty" yaml:"featureFlags,omitempty"`
	CreatedAt    time.Time `json:"createdAt"              yaml:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"              yaml:"updatedAt"`
}

// IntegrationKeyOut represents an integration key.
type IntegrationKeyOut struct {
	Key string `json:"key" yaml:"key"`
}

// EventTypeIn represents a request to create an event type.
type EventTypeIn struct {
	Name        string         `json:"name"                  yaml:"name"`
	Description string         `json:"description"           yaml:"description"`
	Archived    *bool          `json:"archived,omitempty"    yaml:"archived,omitempty"`
	Deprecated  *bool          `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`
	FeatureFlag *string        `json:"featureFlag,omitempty" yaml:"featureFlag,omitempty"`
	GroupName   *string        `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
}

// EventTypeUpdate represents a request to replace an event type.
type EventTypeUpdate struct {
	Description string         `json:"description"           yaml:"description"`
	Archived    *bool          `json:"archived,omitempty"    yaml:"archived,omitempty"`
	Deprecated  *bool          `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`
	FeatureFlag *string        `json:"featureFlag,omitempty" yaml:"featureFlag,omitempty"`
	GroupName   *string        `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
}

// EventTypePatch represents a partial event type update; nil fields are left unchanged.
type EventTypePatch struct {
	Description *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Archived    *bool          `json:"archived,omitempty"    yaml:"archived,omitempty"`
	Deprecated  *bool          `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`
	FeatureFlag *string        `json:"featureFlag,omitempty" yaml:"featureFlag,omitempty"`
	GroupName   *string        `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
}

// EventTypeOut represents an event type.
type EventTypeOut struct {
	Name        string         `json:"name"                  yaml:"name"`
	Description string         `json:"description"           yaml:"description"`
	Archived    bool           `json:"archived"              yaml:"archived"`
	Deprecated  bool           `json:"deprecated"            yaml:"deprecated"`
	FeatureFlag *string        `json:"featureFlag,omitempty" yaml:"featureFlag,omitempty"`
	GroupName   *string        `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"             yaml:"updatedAt"`
}

// EventTypeImportOpenAPIIn carries either a parsed Spec or the raw document in SpecRaw.
type EventTypeImportOpenAPIIn struct {
	Spec       map[string]any `json:"spec,omitempty"       yaml:"spec,omitempty"`
	SpecRaw    *string        `json:"specRaw,omitempty"    yaml:"specRaw,omitempty"`
	ReplaceAll *bool          `json:"replaceAll,omitempty" yaml:"replaceAll,omitempty"`
	DryRun     *bool          `json:"dryRun,omitempty"     yaml:"dryRun,omitempty"`
}

// EventTypeImportOpenAPIOut represents the result of an OpenAPI import.
type EventTypeImportOpenAPIOut struct {
	Data EventTypeImportOpenAPIOutData `json:"data" yaml:"data"`
}

// EventTypeImportOpenAPIOutData lists the event types an import modified, or would modify on a dry run.
type EventTypeImportOpenAPIOutData struct {
	Modified []string               `json:"modified"            yaml:"modified"`
	ToModify []EventTypeFromOpenAPI `json:"to_modify,omitempty" yaml:"to_modify,omitempty"`
}

// EventTypeFromOpenAPI represents an event type derived from an OpenAPI document.
type EventTypeFromOpenAPI struct {
	Name        string         `json:"name"                  yaml:"name"`
	Description string         `json:"description"           yaml:"description"`
	Deprecated  bool           `json:"deprecated"            yaml:"deprecated"`
	FeatureFlag *string        `json:"featureFlag,omitempty" yaml:"featureFlag,omitempty"`
	GroupName   *string        `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"     yaml:"schemas,omitempty"`
}

// MessageIn represents a message to send to an application.
type MessageIn struct {
	EventType              string         `json:"eventType"                        yaml:"eventType"`
	EventID                *string        `json:"eventId,omitempty"                yaml:"eventId,omitempty"`
	Payload                map[string]any `json:"payload"                          yaml:"payload"`
	Channels               []string       `json:"channels,omitempty"               yaml:"channels,omitempty"`
	Tags                   []string       `json:"tags,omitempty"                   yaml:"tags,omitempty"`
	PayloadRetentionPeriod *int64         `json:"payloadRetentionPeriod,omitempty" yaml:"payloadRetentionPeriod,omitempty"`
	Application            *ApplicationIn `json:"application,omitempty"            yaml:"application,omitempty"`
	TransformationsParams  map[string]any `json:"transformationsParams,omitempty"  yaml:"transformationsParams,omitempty"`
}

// MessageOut represents a message.
type MessageOut struct {
	ID        string         `json:"id"                 yaml:"id"`
	EventType string         `json:"eventType"          yaml:"eventType"`
	EventID   *string        `json:"eventId,omitempty"  yaml:"eventId,omitempty"`
	Payload   map[string]any `json:"payload"            yaml:"payload"`
	Channels  []string       `json:"channels,omitempty" yaml:"channels,omitempty"`
	Tags      []string       `json:"tags,omitempty"     yaml:"tags,omitempty"`
	Timestamp time.Time      `json:"timestamp"          yaml:"timestamp"`
}

// MessageAttemptOut represents one delivery attempt of a message.
type MessageAttemptOut struct {
	ID                 string                    `json:"id"                 yaml:"id"`
	URL                string                    `json:"url"                yaml:"url"`
	Response           string                    `json:"response"           yaml:"response"`
	ResponseStatusCode int16                     `json:"responseStatusCode" yaml:"responseStatusCode"`
	ResponseDurationMs int64                     `json:"responseDurationMs" yaml:"responseDurationMs"`
	Status             MessageStatus             `json:"status"             yaml:"status"`
	TriggerType        MessageAttemptTriggerType `json:"triggerType"        yaml:"triggerType"`
	MsgID              string                    `json:"msgId"              yaml:"msgId"`
	EndpointID         string                    `json:"endpointId"         yaml:"endpointId"`
	Msg                *MessageOut               `json:"msg,omitempty"      yaml:"msg,omitempty"`
	Timestamp          time.Time                 `json:"timestamp"          yaml:"timestamp"`
}

// MessageAttemptEndpointOut represents one delivery attempt of a message to a given endpoint.
type MessageAttemptEndpointOut struct {
	ID                 string                    `json:"id"                 yaml:"id"`
	URL                string                    `json:"url"                yaml:"url"`
	Response           string                    `json:"response"           yaml:"response"`
	ResponseStatusCode int16                     `json:"responseStatusCode" yaml:"responseStatusCode"`
	Status             MessageStatus             `json:"status"             yaml:"status"`
	TriggerType        MessageAttemptTriggerType `json:"triggerType"        yaml:"triggerType"`
	MsgID              string                    `json:"msgId"              yaml:"msgId"`
	EndpointID         string                    `json:"endpointId"         yaml:"endpointId"`
	Timestamp          time.Time                 `json:"timestamp"          yaml:"timestamp"`
}

// EndpointMessageOut represents a message together with its delivery status for one endpoint.
type EndpointMessageOut struct {
	ID          string         `json:"id"                    yaml:"id"`
	EventType   string         `json:"eventType"             yaml:"eventType"`
	EventID     *string        `json:"eventId,omitempty"     yaml:"eventId,omitempty"`
	Payload     map[string]any `json:"payload"               yaml:"payload"`
	Channels    []string       `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Tags        []string       `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Status      MessageStatus  `json:"status"                yaml:"status"`
	NextAttempt *time.Time     `json:"nextAttempt,omitempty" yaml:"nextAttempt,omitempty"`
	Timestamp   time.Time      `json:"timestamp"             yaml:"timestamp"`
}

// MessageEndpointOut represents an endpoint together with the delivery status of one message.
type MessageEndpointOut struct {
	ID          string        `json:"id"                    yaml:"id"`
	URL         string        `json:"url"                   yaml:"url"`
	Description string        `json:"description"           yaml:"description"`
	UID         *string       `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32        `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string      `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Channels    []string      `json:"channels,omitempty"    yaml:"channels,omitempty"`
	Disabled    bool          `json:"disabled"              yaml:"disabled"`
	Version     int32         `json:"version"               yaml:"version"`
	Status      MessageStatus `json:"status"                yaml:"status"`
	NextAttempt *time.Time    `json:"nextAttempt,omitempty" yaml:"nextAttempt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"             yaml:"updatedAt"`
}

// OperationalWebhookEndpointIn represents a request to create an operational webhook endpoint.
type OperationalWebhookEndpointIn struct {
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Secret      *string           `json:"secret,omitempty"      yaml:"secret,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// OperationalWebhookEndpointUpdate represents a request to replace an operational webhook endpoint.
type OperationalWebhookEndpointUpdate struct {
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// OperationalWebhookEndpointOut represents an endpoint receiving operational webhooks.
type OperationalWebhookEndpointOut struct {
	ID          string            `json:"id"                    yaml:"id"`
	URL         string            `json:"url"                   yaml:"url"`
	Description string            `json:"description"           yaml:"description"`
	UID         *string           `json:"uid,omitempty"         yaml:"uid,omitempty"`
	RateLimit   *int32            `json:"rateLimit,omitempty"   yaml:"rateLimit,omitempty"`
	FilterTypes []string          `json:"filterTypes,omitempty" yaml:"filterTypes,omitempty"`
	Disabled    bool              `json:"disabled"              yaml:"disabled"`
	Metadata    map[string]string `json:"metadata"              yaml:"metadata"`
	CreatedAt   time.Time         `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"             yaml:"updatedAt"`
}

// OperationalWebhookEndpointSecretIn rotates to Key, or to a server-generated secret when Key is nil.
type OperationalWebhookEndpointSecretIn struct {
	Key *string `json:"key,omitempty" yaml:"key,omitempty"`
}

// OperationalWebhookEndpointSecretOut represents an operational webhook endpoint signing secret.
type OperationalWebhookEndpointSecretOut struct {
	Key string `json:"key" yaml:"key"`
}

// BackgroundTaskOut represents a background task.
type BackgroundTaskOut struct {
	ID     string               `json:"id"     yaml:"id"`
	Status BackgroundTaskStatus `json:"status" yaml:"status"`
	Task   BackgroundTaskType   `json:"task"   yaml:"task"`
	Data   map[string]any       `json:"data"   yaml:"data"`
}

// AppUsageStatsIn is the wire body of the aggregate-app-stats operation.
type AppUsageStatsIn struct {
	AppIDs []string `json:"appIds,omitempty" yaml:"appIds,omitempty"`
	Since  string   `json:"since"            yaml:"since"`
	Until  string   `json:"until"            yaml:"until"`
}

// AppUsageStatsOut represents the background task computing application usage statistics.
type AppUsageStatsOut struct {
	ID               string               `json:"id"               yaml:"id"`
	Status           BackgroundTaskStatus `json:"status"           yaml:"status"`
	Task             BackgroundTaskType   `json:"task"             yaml:"task"`
	UnresolvedAppIDs []string             `json:"unresolvedAppIds" yaml:"unresolvedAppIds"`
}

// AggregateEventTypesOut represents the background task aggregating event types.
type AggregateEventTypesOut struct {
	ID     string               `json:"id"     yaml:"id"`
	Status BackgroundTaskStatus `json:"status" yaml:"status"`
	Task   BackgroundTaskType   `json:"task"   yaml:"task"`
}
