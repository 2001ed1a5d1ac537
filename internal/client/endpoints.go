package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// EndpointsClient implements svix.EndpointsClient.
type EndpointsClient struct {
	config *config.Configuration
}

// NewEndpointsClient creates a new endpoints client.
func NewEndpointsClient(cfg *config.Configuration) *EndpointsClient {
	return &EndpointsClient{config: cfg}
}

func endpointPath(appID, endpointID string) map[string]string {
	return map[string]string{
		constants.PathAppID:      appID,
		constants.PathEndpointID: endpointID,
	}
}

// List implements svix.EndpointsClient.List.
func (c *EndpointsClient) List(ctx context.Context, appID string, opts *svix.EndpointListOptions) (*svix.ListResponseEndpointOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryOrder, opts.Order)
	}

	return catalog.Dispatch[svix.ListResponseEndpointOut](ctx, c.config, catalog.EndpointList, catalog.Params{
		Path:  map[string]string{constants.PathAppID: appID},
		Query: query,
	})
}

// Create implements svix.EndpointsClient.Create.
func (c *EndpointsClient) Create(ctx context.Context, appID string, in svix.EndpointIn, opts *svix.PostOptions) (*svix.EndpointOut, error) {
	return catalog.Dispatch[svix.EndpointOut](ctx, c.config, catalog.EndpointCreate, catalog.Params{
		Path:           map[string]string{constants.PathAppID: appID},
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Get implements svix.EndpointsClient.Get.
func (c *EndpointsClient) Get(ctx context.Context, appID, endpointID string) (*svix.EndpointOut, error) {
	return catalog.Dispatch[svix.EndpointOut](ctx, c.config, catalog.EndpointGet, catalog.Params{
		Path: endpointPath(appID, endpointID),
	})
}

// Update implements svix.EndpointsClient.Update.
func (c *EndpointsClient) Update(
	ctx context.Context, appID, endpointID string, in svix.EndpointUpdate, _ *svix.PostOptions,
) (*svix.EndpointOut, error) {
	return catalog.Dispatch[svix.EndpointOut](ctx, c.config, catalog.EndpointUpdate, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// Patch implements svix.EndpointsClient.Patch.
func (c *EndpointsClient) Patch(
	ctx context.Context, appID, endpointID string, in svix.EndpointPatch, _ *svix.PostOptions,
) (*svix.EndpointOut, error) {
	return catalog.Dispatch[svix.EndpointOut](ctx, c.config, catalog.EndpointPatch, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// Delete implements svix.EndpointsClient.Delete.
func (c *EndpointsClient) Delete(ctx context.Context, appID, endpointID string) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointDelete, catalog.Params{
		Path: endpointPath(appID, endpointID),
	})
}

// GetSecret implements svix.EndpointsClient.GetSecret.
func (c *EndpointsClient) GetSecret(ctx context.Context, appID, endpointID string) (*svix.EndpointSecretOut, error) {
	return catalog.Dispatch[svix.EndpointSecretOut](ctx, c.config, catalog.EndpointGetSecret, catalog.Params{
		Path: endpointPath(appID, endpointID),
	})
}

// RotateSecret implements svix.EndpointsClient.RotateSecret.
func (c *EndpointsClient) RotateSecret(ctx context.Context, appID, endpointID string, in svix.EndpointSecretRotateIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointRotateSecret, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// Recover implements svix.EndpointsClient.Recover.
func (c *EndpointsClient) Recover(ctx context.Context, appID, endpointID string, in svix.RecoverIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointRecover, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// ReplayMissing implements svix.EndpointsClient.ReplayMissing.
func (c *EndpointsClient) ReplayMissing(ctx context.Context, appID, endpointID string, in svix.ReplayIn, opts *svix.PostOptions) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointReplayMissing, catalog.Params{
		Path:           endpointPath(appID, endpointID),
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// GetHeaders implements svix.EndpointsClient.GetHeaders.
func (c *EndpointsClient) GetHeaders(ctx context.Context, appID, endpointID string) (*svix.EndpointHeadersOut, error) {
	return catalog.Dispatch[svix.EndpointHeadersOut](ctx, c.config, catalog.EndpointGetHeaders, catalog.Params{
		Path: endpointPath(appID, endpointID),
	})
}

// UpdateHeaders implements svix.EndpointsClient.UpdateHeaders.
func (c *EndpointsClient) UpdateHeaders(ctx context.Context, appID, endpointID string, in svix.EndpointHeadersIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointUpdateHeaders, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// PatchHeaders implements svix.EndpointsClient.PatchHeaders.
func (c *EndpointsClient) PatchHeaders(ctx context.Context, appID, endpointID string, in svix.EndpointHeadersPatchIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointPatchHeaders, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// GetStats implements svix.EndpointsClient.GetStats.
func (c *EndpointsClient) GetStats(ctx context.Context, appID, endpointID string, opts *svix.EndpointStatsOptions) (*svix.EndpointStats, error) {
	query := catalog.Query{}

	if opts != nil {
		catalog.Optional(query, constants.QuerySince, opts.Since)
		catalog.Optional(query, constants.QueryUntil, opts.Until)
	}

	return catalog.Dispatch[svix.EndpointStats](ctx, c.config, catalog.EndpointGetStats, catalog.Params{
		Path:  endpointPath(appID, endpointID),
		Query: query,
	})
}

// TransformationGet implements svix.EndpointsClient.TransformationGet.
func (c *EndpointsClient) TransformationGet(ctx context.Context, appID, endpointID string) (*svix.EndpointTransformationOut, error) {
	return catalog.Dispatch[svix.EndpointTransformationOut](ctx, c.config, catalog.EndpointTransformationGet, catalog.Params{
		Path: endpointPath(appID, endpointID),
	})
}

// TransformationPartialUpdate implements svix.EndpointsClient.TransformationPartialUpdate.
func (c *EndpointsClient) TransformationPartialUpdate(ctx context.Context, appID, endpointID string, in svix.EndpointTransformationIn) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.EndpointTransformationPartialUpdate, catalog.Params{
		Path: endpointPath(appID, endpointID),
		Body: in,
	})
}

// SendExample implements svix.EndpointsClient.SendExample.
func (c *EndpointsClient) SendExample(
	ctx context.Context, appID, endpointID string, in svix.EventExampleIn, opts *svix.PostOptions,
) (*svix.MessageOut, error) {
	return catalog.Dispatch[svix.MessageOut](ctx, c.config, catalog.EndpointSendExample, catalog.Params{
		Path:           endpointPath(appID, endpointID),
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

var _ svix.EndpointsClient = (*EndpointsClient)(nil)
