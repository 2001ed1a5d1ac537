package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// MessageAttemptsClient implements svix.MessageAttemptsClient.
type MessageAttemptsClient struct {
	config *config.Configuration
}

// NewMessageAttemptsClient creates a new message attempts client.
func NewMessageAttemptsClient(cfg *config.Configuration) *MessageAttemptsClient {
	return &MessageAttemptsClient{config: cfg}
}

// attemptFilters adds the filters shared by every attempt list.
func attemptFilters(query catalog.Query, opts *svix.MessageAttemptListOptions) {
	pagination(query, opts.Iterator, opts.Limit)
	catalog.OptionalSlice(query, constants.QueryEventTypes, opts.EventTypes)
	catalog.Optional(query, constants.QueryBefore, opts.Before)
	catalog.Optional(query, constants.QueryAfter, opts.After)
	catalog.Optional(query, constants.QueryChannel, opts.Channel)
	catalog.Optional(query, constants.QueryTag, opts.Tag)
	catalog.Optional(query, constants.QueryStatus, opts.Status)
}

// ListByMsg implements svix.MessageAttemptsClient.ListByMsg.
func (c *MessageAttemptsClient) ListByMsg(
	ctx context.Context, appID, msgID string, opts *svix.MessageAttemptListOptions,
) (*svix.ListResponseMessageAttemptOut, error) {
	query := catalog.Query{}

	if opts != nil {
		attemptFilters(query, opts)
		catalog.Optional(query, constants.QueryStatusCodeClass, opts.StatusCodeClass)
		catalog.Optional(query, constants.QueryEndpointID, opts.EndpointID)
		catalog.Optional(query, constants.QueryWithContent, opts.WithContent)
	}

	return catalog.Dispatch[svix.ListResponseMessageAttemptOut](ctx, c.config, catalog.MessageAttemptListByMsg, catalog.Params{
		Path:  messagePath(appID, msgID),
		Query: query,
	})
}

// ListByEndpoint implements svix.MessageAttemptsClient.ListByEndpoint.
func (c *MessageAttemptsClient) ListByEndpoint(
	ctx context.Context, appID, endpointID string, opts *svix.MessageAttemptListByEndpointOptions,
) (*svix.ListResponseMessageAttemptOut, error) {
	query := catalog.Query{}

	if opts != nil {
		attemptFilters(query, &svix.MessageAttemptListOptions{
			Iterator:   opts.Iterator,
			Limit:      opts.Limit,
			EventTypes: opts.EventTypes,
			Before:     opts.Before,
			After:      opts.After,
			Channel:    opts.Channel,
			Tag:        opts.Tag,
			Status:     opts.Status,
		})
		catalog.Optional(query, constants.QueryStatusCodeClass, opts.StatusCodeClass)
		catalog.Optional(query, constants.QueryWithContent, opts.WithContent)
		catalog.Optional(query, constants.QueryWithMsg, opts.WithMsg)
	}

	return catalog.Dispatch[svix.ListResponseMessageAttemptOut](ctx, c.config, catalog.MessageAttemptListByEndpoint, catalog.Params{
		Path:  endpointPath(appID, endpointID),
		Query: query,
	})
}

// ListAttemptedMessages implements svix.MessageAttemptsClient.ListAttemptedMessages.
func (c *MessageAttemptsClient) ListAttemptedMessages(
	ctx context.Context, appID, endpointID string, opts *svix.MessageAttemptListOptions,
) (*svix.ListResponseEndpointMessageOut, error) {
	query := catalog.Query{}

	if opts != nil {
		attemptFilters(query, opts)
		catalog.Optional(query, constants.QueryWithContent, opts.WithContent)
	}

	return catalog.Dispatch[svix.ListResponseEndpointMessageOut](ctx, c.config, catalog.MessageAttemptListAttemptedMessages, catalog.Params{
		Path:  endpointPath(appID, endpointID),
		Query: query,
	})
}

// ListAttemptedDestinations implements svix.MessageAttemptsClient.ListAttemptedDestinations.
func (c *MessageAttemptsClient) ListAttemptedDestinations(
	ctx context.Context, appID, msgID string, opts *svix.ListOptions,
) (*svix.ListResponseMessageEndpointOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
	}

	return catalog.Dispatch[svix.ListResponseMessageEndpointOut](ctx, c.config, catalog.MessageAttemptListAttemptedDestinations, catalog.Params{
		Path:  messagePath(appID, msgID),
		Query: query,
	})
}

// ListAttemptsForEndpoint implements svix.MessageAttemptsClient.ListAttemptsForEndpoint.
func (c *MessageAttemptsClient) ListAttemptsForEndpoint(
	ctx context.Context, appID, msgID, endpointID string, opts *svix.MessageAttemptListOptions,
) (*svix.ListResponseMessageAttemptEndpointOut, error) {
	query := catalog.Query{}

	if opts != nil {
		attemptFilters(query, opts)
	}

	return catalog.Dispatch[svix.ListResponseMessageAttemptEndpointOut](ctx, c.config, catalog.MessageAttemptListByEndpointDeprecated, catalog.Params{
		Path: map[string]string{
			constants.PathAppID:      appID,
			constants.PathMsgID:      msgID,
			constants.PathEndpointID: endpointID,
		},
		Query: query,
	})
}

// Get implements svix.MessageAttemptsClient.Get.
func (c *MessageAttemptsClient) Get(ctx context.Context, appID, msgID, attemptID string) (*svix.MessageAttemptOut, error) {
	return catalog.Dispatch[svix.MessageAttemptOut](ctx, c.config, catalog.MessageAttemptGet, catalog.Params{
		Path: attemptPath(appID, msgID, attemptID),
	})
}

// Resend implements svix.MessageAttemptsClient.Resend.
func (c *MessageAttemptsClient) Resend(ctx context.Context, appID, msgID, endpointID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.MessageAttemptResend, catalog.Params{
		Path: map[string]string{
			constants.PathAppID:      appID,
			constants.PathMsgID:      msgID,
			constants.PathEndpointID: endpointID,
		},
	})
}

// ExpungeContent implements svix.MessageAttemptsClient.ExpungeContent.
func (c *MessageAttemptsClient) ExpungeContent(ctx context.Context, appID, msgID, attemptID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.MessageAttemptExpungeContent, catalog.Params{
		Path: attemptPath(appID, msgID, attemptID),
	})
}

func attemptPath(appID, msgID, attemptID string) map[string]string {
	return map[string]string{
		constants.PathAppID:     appID,
		constants.PathMsgID:     msgID,
		constants.PathAttemptID: attemptID,
	}
}

var _ svix.MessageAttemptsClient = (*MessageAttemptsClient)(nil)
