package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// EventTypesClient implements svix.EventTypesClient.
type EventTypesClient struct {
	config *config.Configuration
}

// NewEventTypesClient creates a new event types client.
func NewEventTypesClient(cfg *config.Configuration) *EventTypesClient {
	return &EventTypesClient{config: cfg}
}

// List implements svix.EventTypesClient.List. The order parameter is never sent.
func (c *EventTypesClient) List(ctx context.Context, opts *svix.EventTypeListOptions) (*svix.ListResponseEventTypeOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryIncludeArchived, opts.IncludeArchived)
		catalog.Optional(query, constants.QueryWithContent, opts.WithContent)
	}

	return catalog.Dispatch[svix.ListResponseEventTypeOut](ctx, c.config, catalog.EventTypeList, catalog.Params{
		Query: query,
	})
}

// Create implements svix.EventTypesClient.Create.
func (c *EventTypesClient) Create(ctx context.Context, in svix.EventTypeIn, opts *svix.PostOptions) (*svix.EventTypeOut, error) {
	return catalog.Dispatch[svix.EventTypeOut](ctx, c.config, catalog.EventTypeCreate, catalog.Params{
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.EventTypesClient.Get.
func (c *EventTypesClient) Get(ctx context.Context, eventTypeName string) (*svix.EventTypeOut, error) {
	return catalog.Dispatch[svix.EventTypeOut](ctx, c.config, catalog.EventTypeGet, catalog.Params{
		Path: map[string]string{constants.PathEventTypeName: eventTypeName},
	})
}

// Update implements svix.EventTypesClient.Update.
func (c *EventTypesClient) Update(ctx context.Context, eventTypeName string, in svix.EventTypeUpdate, _ *svix.PostOptions) (*svix.EventTypeOut, error) {
	return catalog.Dispatch[svix.EventTypeOut](ctx, c.config, catalog.EventTypeUpdate, catalog.Params{
		Path: map[string]string{constants.PathEventTypeName: eventTypeName},
		Body: in,
	})
}

// Patch implements svix.EventTypesClient.Patch.
func (c *EventTypesClient) Patch(ctx context.Context, eventTypeName string, in svix.EventTypePatch, _ *svix.PostOptions) (*svix.EventTypeOut, error) {
	return catalog.Dispatch[svix.EventTypeOut](ctx, c.config, catalog.EventTypePatch, catalog.Params{
		Path: map[string]string{constants.PathEventTypeName: eventTypeName},
		Body: in,
	})
}

// Delete implements svix.EventTypesClient.Delete. The event type is archived,
// never expunged.
func (c *EventTypesClient) Delete(ctx context.Context, eventTypeName string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EventTypeDelete, catalog.Params{
		Path: map[string]string{constants.PathEventTypeName: eventTypeName},
	})
}

// ImportOpenAPI implements svix.EventTypesClient.ImportOpenAPI.
func (c *EventTypesClient) ImportOpenAPI(
	ctx context.Context, in svix.EventTypeImportOpenAPIIn, opts *svix.PostOptions,
) (*svix.EventTypeImportOpenAPIOut, error) {
	return catalog.Dispatch[svix.EventTypeImportOpenAPIOut](ctx, c.config, catalog.EventTypeImportOpenAPI, catalog.Params{
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

var _ svix.EventTypesClient = (*EventTypesClient)(nil)
