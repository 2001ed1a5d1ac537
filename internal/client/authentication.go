package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// AuthenticationClient implements svix.AuthenticationClient.
type AuthenticationClient struct {
	config *config.Configuration
}

// NewAuthenticationClient creates a new authentication client.
func NewAuthenticationClient(cfg *config.Configuration) *AuthenticationClient {
	return &AuthenticationClient{config: cfg}
}

// DashboardAccess implements svix.AuthenticationClient.DashboardAccess.
func (c *AuthenticationClient) DashboardAccess(ctx context.Context, appID string, opts *svix.PostOptions) (*svix.DashboardAccessOut, error) {
	return catalog.Dispatch[svix.DashboardAccessOut](ctx, c.config, catalog.AuthenticationDashboardAccess, catalog.Params{
		Path:           map[string]string{constants.PathAppID: appID},
		IdempotencyKey: idempotencyKey(opts),
	})
}

// AppPortalAccess implements svix.AuthenticationClient.AppPortalAccess.
func (c *AuthenticationClient) AppPortalAccess(
	ctx context.Context, appID string, in svix.AppPortalAccessIn, opts *svix.PostOptions,
) (*svix.AppPortalAccessOut, error) {
	return catalog.Dispatch[svix.AppPortalAccessOut](ctx, c.config, catalog.AuthenticationAppPortalAccess, catalog.Params{
		Path:           map[string]string{constants.PathAppID: appID},
		IdempotencyKey: idempotencyKey(opts),
		Body:           in,
	})
}

// Logout implements svix.AuthenticationClient.Logout.
func (c *AuthenticationClient) Logout(ctx context.Context, opts *svix.PostOptions) error {
	return catalog.DispatchNoContent(ctx, c.config, catalog.AuthenticationLogout, catalog.Params{
		IdempotencyKey: idempotencyKey(opts),
	})
}

var _ svix.AuthenticationClient = (*AuthenticationClient)(nil)
