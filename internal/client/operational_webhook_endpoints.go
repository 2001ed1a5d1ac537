package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// OperationalWebhookEndpointsClient implements svix.OperationalWebhookEndpointsClient.
type OperationalWebhookEndpointsClient struct {
	config *config.Configuration
}

// NewOperationalWebhookEndpointsClient creates a new operational webhook endpoints client.
func NewOperationalWebhookEndpointsClient(cfg *config.Configuration) *OperationalWebhookEndpointsClient {
	return &OperationalWebhookEndpointsClient{config: cfg}
}

// List implements svix.OperationalWebhookEndpointsClient.List.
func (c *OperationalWebhookEndpointsClient) List(
	ctx context.Context, opts *svix.OperationalWebhookEndpointListOptions,
) (*svix.ListResponseOperationalWebhookEndpointOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryOrder, opts.Order)
	}

	return catalog.Dispatch[svix.ListResponseOperationalWebhookEndpointOut](ctx, c.config, catalog.OperationalWebhookEndpointList, catalog.Params{
		Query: query,
	})
}

// Create implements svix.OperationalWebhookEndpointsClient.Create.
func (c *OperationalWebhookEndpointsClient) Create(
	ctx context.Context, in svix.OperationalWebhookEndpointIn, opts *svix.PostOptions,
) (*svix.OperationalWebhookEndpointOut, error) {
	return catalog.Dispatch[svix.OperationalWebhookEndpointOut](ctx, c.config, catalog.OperationalWebhookEndpointCreate, catalog.Params{
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.OperationalWebhookEndpointsClient.Get.
func (c *OperationalWebhookEndpointsClient) Get(ctx context.Context, endpointID string) (*svix.OperationalWebhookEndpointOut, error) {
	return catalog.Dispatch[svix.OperationalWebhookEndpointOut](ctx, c.config, catalog.OperationalWebhookEndpointGet, catalog.Params{
		Path: map[string]string{constants.PathEndpointID: endpointID},
	})
}

// Update implements svix.OperationalWebhookEndpointsClient.Update.
func (c *OperationalWebhookEndpointsClient) Update(
	ctx context.Context, endpointID string, in svix.OperationalWebhookEndpointUpdate, _ *svix.PostOptions,
) (*svix.OperationalWebhookEndpointOut, error) {
	return catalog.Dispatch[svix.OperationalWebhookEndpointOut](ctx, c.config, catalog.OperationalWebhookEndpointUpdate, catalog.Params{
		Path: map[string]string{constants.PathEndpointID: endpointID},
		Body: in,
	})
}

// Delete implements svix.OperationalWebhookEndpointsClient.Delete.
func (c *OperationalWebhookEndpointsClient) Delete(ctx context.Context, endpointID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.OperationalWebhookEndpointDelete, catalog.Params{
		Path: map[string]string{constants.PathEndpointID: endpointID},
	})
}

// GetSecret implements svix.OperationalWebhookEndpointsClient.GetSecret.
func (c *OperationalWebhookEndpointsClient) GetSecret(ctx context.Context, endpointID string) (*svix.OperationalWebhookEndpointSecretOut, error) {
	return catalog.Dispatch[svix.OperationalWebhookEndpointSecretOut](ctx, c.config, catalog.OperationalWebhookEndpointGetSecret, catalog.Params{
		Path: map[string]string{constants.PathEndpointID: endpointID},
	})
}

// RotateSecret implements svix.OperationalWebhookEndpointsClient.RotateSecret.
func (c *OperationalWebhookEndpointsClient) RotateSecret(ctx context.Context, endpointID string, in svix.OperationalWebhookEndpointSecretIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.OperationalWebhookEndpointRotateSecret, catalog.Params{
		Path: map[string]string{constants.PathEndpointID: endpointID},
		Body: in,
	})
}

var _ svix.OperationalWebhookEndpointsClient = (*OperationalWebhookEndpointsClient)(nil)
