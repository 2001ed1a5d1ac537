package client

import (
	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// idempotencyKey returns the key of opts, nil when opts is nil.
func idempotencyKey(opts *svix.PostOptions) *string {
	if opts == nil {
		return nil
	}

	return opts.IdempotencyKey
}

// pagination adds the cursor parameters shared by every list operation.
func pagination(query catalog.Query, iterator *string, limit *int32) {
	catalog.Optional(query, constants.QueryIterator, iterator)
	catalog.Optional(query, constants.QueryLimit, limit)
}
