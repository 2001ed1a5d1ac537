package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// MessagesClient implements svix.MessagesClient.
type MessagesClient struct {
	config *config.Configuration
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(cfg *config.Configuration) *MessagesClient {
	return &MessagesClient{config: cfg}
}

func messagePath(appID, msgID string) map[string]string {
	return map[string]string{
		constants.PathAppID: appID,
		constants.PathMsgID: msgID,
	}
}

// List implements svix.MessagesClient.List.
func (c *MessagesClient) List(ctx context.Context, appID string, opts *svix.MessageListOptions) (*svix.ListResponseMessageOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryChannel, opts.Channel)
		catalog.Optional(query, constants.QueryBefore, opts.Before)
		catalog.Optional(query, constants.QueryAfter, opts.After)
		catalog.Optional(query, constants.QueryWithContent, opts.WithContent)
		catalog.Optional(query, constants.QueryTag, opts.Tag)
		catalog.OptionalSlice(query, constants.QueryEventTypes, opts.EventTypes)
	}

	return catalog.Dispatch[svix.ListResponseMessageOut](ctx, c.config, catalog.MessageList, catalog.Params{
		Path:  map[string]string{constants.PathAppID: appID},
		Query: query,
	})
}

// Create implements svix.MessagesClient.Create. with_content is never sent,
// so the server default applies.
func (c *MessagesClient) Create(ctx context.Context, appID string, in svix.MessageIn, opts *svix.PostOptions) (*svix.MessageOut, error) {
	return catalog.Dispatch[svix.MessageOut](ctx, c.config, catalog.MessageCreate, catalog.Params{
		Path:           map[string]string{constants.PathAppID: appID},
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.MessagesClient.Get.
func (c *MessagesClient) Get(ctx context.Context, appID, msgID string) (*svix.MessageOut, error) {
	return catalog.Dispatch[svix.MessageOut](ctx, c.config, catalog.MessageGet, catalog.Params{
		Path: messagePath(appID, msgID),
	})
}

// ExpungeContent implements svix.MessagesClient.ExpungeContent.
func (c *MessagesClient) ExpungeContent(ctx context.Context, appID, msgID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.MessageExpungeContent, catalog.Params{
		Path: messagePath(appID, msgID),
	})
}

var _ svix.MessagesClient = (*MessagesClient)(nil)
