package constants

import "errors"

// Configuration errors.
var (
	ErrTokenRequired  = errors.New("auth token is required, provide it or set SVIX_TOKEN")
	ErrInvalidTimeout = errors.New("invalid timeout, expected a duration such as 15s or \"none\"")
	ErrInvalidRetry   = errors.New("retry max must be >= 0")
)

// Operation catalog errors. These indicate a mismatch between a sub-client
// and the operation table and are never produced by well-formed calls.
var (
	ErrMissingPathParam       = errors.New("missing path parameter")
	ErrUnexpectedQueryParam   = errors.New("query parameter not accepted by operation")
	ErrIdempotencyNotAccepted = errors.New("operation does not accept an idempotency key")
	ErrUnexpectedBody         = errors.New("operation does not accept a request body")
	ErrMissingBody            = errors.New("operation requires a request body")
	ErrUnknownOperation       = errors.New("unknown operation")
)
