package constants

import "time"

// Library identification.
const (
	// Version is the client library version reported in the User-Agent header.
	Version = "1.0.0"

	// Product is the product segment of the User-Agent header.
	Product = "svix-libs"

	// PlatformTag is the platform segment of the User-Agent header.
	PlatformTag = "go"
)

// Regional API hosts.
const (
	// DefaultServerURL is used when the token carries no known region suffix.
	DefaultServerURL = "https://api.svix.com"

	// ServerURLUS is the United States regional host.
	ServerURLUS = "https://api.us.svix.com"

	// ServerURLEU is the European Union regional host.
	ServerURLEU = "https://api.eu.svix.com"

	// ServerURLIN is the India regional host.
	ServerURLIN = "https://api.in.svix.com"
)

// Region suffixes found after the last dot of a bearer token.
const (
	RegionUS = "us"
	RegionEU = "eu"
	RegionIN = "in"

	// TokenRegionDelimiter separates the region suffix from the rest of the token.
	TokenRegionDelimiter = "."
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default wall-clock timeout for one request,
	// from connection start until the response body has been read.
	DefaultHTTPTimeout = 15 * time.Second
)

// Retry limits. Retries are disabled unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum backoff between transport retries.
	DefaultRetryWaitMin = 50 * time.Millisecond

	// DefaultRetryWaitMax is the maximum backoff between transport retries.
	DefaultRetryWaitMax = 2 * time.Second
)

// HTTP header names.
const (
	HeaderAuthorization  = "Authorization"
	HeaderUserAgent      = "User-Agent"
	HeaderAccept         = "Accept"
	HeaderContentType    = "Content-Type"
	HeaderIdempotencyKey = "idempotency-key"

	// ContentTypeJSON is sent and accepted on every request.
	ContentTypeJSON = "application/json"
)

// Query parameter names shared by many operations.
const (
	QueryIterator        = "iterator"
	QueryLimit           = "limit"
	QueryOrder           = "order"
	QueryGetIfExists     = "get_if_exists"
	QueryWithContent     = "with_content"
	QueryIncludeArchived = "include_archived"
	QueryExpunge         = "expunge"
	QueryEventTypes      = "event_types"
	QueryBefore          = "before"
	QueryAfter           = "after"
	QueryChannel         = "channel"
	QueryTag             = "tag"
	QueryStatus          = "status"
	QueryStatusCodeClass = "status_code_class"
	QueryEndpointID      = "endpoint_id"
	QueryWithMsg         = "with_msg"
	QuerySince           = "since"
	QueryUntil           = "until"
	QueryTask            = "task"
)

// Path parameter names.
const (
	PathAppID         = "app_id"
	PathEndpointID    = "endpoint_id"
	PathIntegID       = "integ_id"
	PathEventTypeName = "event_type_name"
	PathMsgID         = "msg_id"
	PathAttemptID     = "attempt_id"
	PathTaskID        = "task_id"
)

// Environment configuration.
const (
	// EnvPrefix is the prefix of every environment variable read by the config loader.
	EnvPrefix = "SVIX"

	// TimeoutDisabled is the textual value that turns the request timeout off.
	TimeoutDisabled = "none"
)
