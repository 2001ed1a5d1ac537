package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// ApplicationsClient implements svix.ApplicationsClient.
type ApplicationsClient struct {
	config *config.Configuration
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(cfg *config.Configuration) *ApplicationsClient {
	return &ApplicationsClient{config: cfg}
}

// List implements svix.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, opts *svix.ApplicationListOptions) (*svix.ListResponseApplicationOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryOrder, opts.Order)
	}

	return catalog.Dispatch[svix.ListResponseApplicationOut](ctx, c.config, catalog.ApplicationList, catalog.Params{
		Query: query,
	})
}

// Create implements svix.ApplicationsClient.Create.
func (c *ApplicationsClient) Create(ctx context.Context, in svix.ApplicationIn, opts *svix.PostOptions) (*svix.ApplicationOut, error) {
	return c.create(ctx, in, opts, catalog.Query{})
}

// GetOrCreate implements svix.ApplicationsClient.GetOrCreate.
func (c *ApplicationsClient) GetOrCreate(ctx context.Context, in svix.ApplicationIn, opts *svix.PostOptions) (*svix.ApplicationOut, error) {
	return c.create(ctx, in, opts, catalog.Query{constants.QueryGetIfExists: true})
}

func (c *ApplicationsClient) create(ctx context.Context, in svix.ApplicationIn, opts *svix.PostOptions, query catalog.Query) (*svix.ApplicationOut, error) {
	return catalog.Dispatch[svix.ApplicationOut](ctx, c.config, catalog.ApplicationCreate, catalog.Params{
		Query:          query,
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.ApplicationsClient.Get.
func (c *ApplicationsClient) Get(ctx context.Context, appID string) (*svix.ApplicationOut, error) {
	return catalog.Dispatch[svix.ApplicationOut](ctx, c.config, catalog.ApplicationGet, catalog.Params{
		Path: map[string]string{constants.PathAppID: appID},
	})
}

// Update implements svix.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, appID string, in svix.ApplicationIn, _ *svix.PostOptions) (*svix.ApplicationOut, error) {
	return catalog.Dispatch[svix.ApplicationOut](ctx, c.config, catalog.ApplicationUpdate, catalog.Params{
		Path: map[string]string{constants.PathAppID: appID},
		Body: in,
	})
}

// Patch implements svix.ApplicationsClient.Patch.
func (c *ApplicationsClient) Patch(ctx context.Context, appID string, in svix.ApplicationPatch, _ *svix.PostOptions) (*svix.ApplicationOut, error) {
	return catalog.Dispatch[svix.ApplicationOut](ctx, c.config, catalog.ApplicationPatch, catalog.Params{
		Path: map[string]string{constants.PathAppID: appID},
		Body: in,
	})
}

// Delete implements svix.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, appID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.ApplicationDelete, catalog.Params{
		Path: map[string]string{constants.PathAppID: appID},
	})
}

var _ svix.ApplicationsClient = (*ApplicationsClient)(nil)
