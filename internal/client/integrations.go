package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// IntegrationsClient implements svix.IntegrationsClient.
type IntegrationsClient struct {
	config *config.Configuration
}

// NewIntegrationsClient creates a new integrations client.
func NewIntegrationsClient(cfg *config.Configuration) *IntegrationsClient {
	return &IntegrationsClient{config: cfg}
}

func integrationPath(appID, integID string) map[string]string {
	return map[string]string{
		constants.PathAppID:   appID,
		constants.PathIntegID: integID,
	}
}

// List implements svix.IntegrationsClient.List.
func (c *IntegrationsClient) List(ctx context.Context, appID string, opts *svix.IntegrationListOptions) (*svix.ListResponseIntegrationOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryOrder, opts.Order)
	}

	return catalog.Dispatch[svix.ListResponseIntegrationOut](ctx, c.config, catalog.IntegrationList, catalog.Params{
		Path:  map[string]string{constants.PathAppID: appID},
		Query: query,
	})
}

// Create implements svix.IntegrationsClient.Create.
func (c *IntegrationsClient) Create(ctx context.Context, appID string, in svix.IntegrationIn, opts *svix.PostOptions) (*svix.IntegrationOut, error) {
	return catalog.Dispatch[svix.IntegrationOut](ctx, c.config, catalog.IntegrationCreate, catalog.Params{
		Path:           map[string]string{constants.PathAppID: appID},
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.IntegrationsClient.Get.
func (c *IntegrationsClient) Get(ctx context.Context, appID, integID string) (*svix.IntegrationOut, error) {
	return catalog.Dispatch[svix.IntegrationOut](ctx, c.config, catalog.IntegrationGet, catalog.Params{
		Path: integrationPath(appID, integID),
	})
}

// Update implements svix.IntegrationsClient.Update.
func (c *IntegrationsClient) Update(
	ctx context.Context, appID, integID string, in svix.IntegrationUpdate, _ *svix.PostOptions,
) (*svix.IntegrationOut, error) {
	return catalog.Dispatch[svix.IntegrationOut](ctx, c.config, catalog.IntegrationUpdate, catalog.Params{
		Path: integrationPath(appID, integID),
		Body: in,
	})
}

// Delete implements svix.IntegrationsClient.Delete.
func (c *IntegrationsClient) Delete(ctx context.Context, appID, integID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.IntegrationDelete, catalog.Params{
		Path: integrationPath(appID, integID),
	})
}

// GetKey implements svix.IntegrationsClient.GetKey.
func (c *IntegrationsClient) GetKey(ctx context.Context, appID, integID string) (*svix.IntegrationKeyOut, error) {
	return catalog.Dispatch[svix.IntegrationKeyOut](ctx, c.config, catalog.IntegrationGetKey, catalog.Params{
		Path: integrationPath(appID, integID),
	})
}

// RotateKey implements svix.IntegrationsClient.RotateKey.
func (c *IntegrationsClient) RotateKey(ctx context.Context, appID, integID string) (*svix.IntegrationKeyOut, error) {
	return catalog.Dispatch[svix.IntegrationKeyOut](ctx, c.config, catalog.IntegrationRotateKey, catalog.Params{
		Path: integrationPath(appID, integID),
	})
}

var _ svix.IntegrationsClient = (*IntegrationsClient)(nil)
