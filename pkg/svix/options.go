package svix

import (
	"time"
)

// Options configures a Client. The zero value is valid.
type Options struct {
	// ServerURL overrides the region derived from the token. It is kept
	// across WithToken.
	ServerURL string

	// Timeout bounds each request from connection start to the end of the
	// response body. nil means the 15 second default; a pointer to 0 means
	// requests never time out.
	Timeout *time.Duration

	// Debug logs every request and response through Logger.
	Debug bool

	// Logger receives debug and retry logs. nil discards them.
	Logger Logger

	// RetryMax is the number of transport-level retries. 0 disables retries.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// PostOptions are the per-call options of write operations.
//
// IdempotencyKey is forwarded as the idempotency-key header on create-style
// operations. Update and patch operations accept PostOptions for symmetry
// and ignore the key. HTTP does not preserve leading or trailing whitespace
// in header values, so the server sees the key without it.
type PostOptions struct {
	IdempotencyKey *string
}

// ListOptions is the plain cursor pagination of list operations.
type ListOptions struct {
	Iterator *string
	Limit    *int32
}

// ApplicationListOptions filters Applications().List.
type ApplicationListOptions struct {
	Iterator *string
	Limit    *int32
	Order    *Ordering
}

// EndpointListOptions filters Endpoints().List.
type EndpointListOptions struct {
	Iterator *string
	Limit    *int32
	Order    *Ordering
}

// EndpointStatsOptions bounds endpoint statistics with RFC 3339 timestamps.
type EndpointStatsOptions struct {
	Since *string
	Until *string
}

// IntegrationListOptions filters Integrations().List.
type IntegrationListOptions struct {
	Iterator *string
	Limit    *int32
	Order    *Ordering
}

// EventTypeListOptions filters EventTypes().List.
type EventTypeListOptions struct {
	Iterator        *string
	Limit           *int32
	WithContent     *bool
	IncludeArchived *bool
}

// MessageListOptions filters message lists. Before and After are RFC 3339
// timestamps.
type MessageListOptions struct {
	Iterator    *string
	Limit       *int32
	EventTypes  []string
	Before      *string
	After       *string
	Channel     *string
	WithContent *bool
	Tag         *string
}

// MessageAttemptListOptions filters attempt lists. Not every list operation
// sends every field; see the MessageAttempts methods.
type MessageAttemptListOptions struct {
	Iterator        *string
	Limit           *int32
	EventTypes      []string
	Before          *string
	After           *string
	Channel         *string
	Tag             *string
	Status          *MessageStatus
	StatusCodeClass *StatusCodeClass
	WithContent     *bool
	EndpointID      *string
}

// MessageAttemptListByEndpointOptions filters attempts of one endpoint.
// EndpointID is ignored; the endpoint is the positional argument.
type MessageAttemptListByEndpointOptions struct {
	Iterator        *string
	Limit           *int32
	EventTypes      []string
	Before          *string
	After           *string
	Channel         *string
	Tag             *string
	Status          *MessageStatus
	StatusCodeClass *StatusCodeClass
	WithContent     *bool
	WithMsg         *bool
	EndpointID      *string
}

// OperationalWebhookEndpointListOptions filters OperationalWebhookEndpoints().List.
type OperationalWebhookEndpointListOptions struct {
	Iterator *string
	Limit    *int32
	Order    *Ordering
}

// BackgroundTaskListOptions filters BackgroundTasks().List.
type BackgroundTaskListOptions struct {
	Iterator *string
	Limit    *int32
	Order    *Ordering
	Status   *BackgroundTaskStatus
	Task     *BackgroundTaskType
}

// AggregateAppStatsOptions is the required input of AggregateAppStats.
// Since and Until are mandatory RFC 3339 timestamps; an empty AppIDs
// aggregates every application.
type AggregateAppStatsOptions struct {
	AppIDs []string
	Since  string
	Until  string
}

// String returns a pointer to s, for optional fields.
func String(s string) *string {
	return &s
}

// Int32 returns a pointer to i, for optional fields.
func Int32(i int32) *int32 {
	return &i
}

// Bool returns a pointer to b, for optional fields.
func Bool(b bool) *bool {
	return &b
}

// Duration returns a pointer to d, for Options.Timeout.
func Duration(d time.Duration) *time.Duration {
	return &d
}

// Order returns a pointer to o, for list options.
func Order(o Ordering) *Ordering {
	return &o
}
