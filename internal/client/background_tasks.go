package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// BackgroundTasksClient implements svix.BackgroundTasksClient.
type BackgroundTasksClient struct {
	config *config.Configuration
}

// NewBackgroundTasksClient creates a new background tasks client.
func NewBackgroundTasksClient(cfg *config.Configuration) *BackgroundTasksClient {
	return &BackgroundTasksClient{config: cfg}
}

// List implements svix.BackgroundTasksClient.List.
func (c *BackgroundTasksClient) List(ctx context.Context, opts *svix.BackgroundTaskListOptions) (*svix.ListResponseBackgroundTaskOut, error) {
	query := catalog.Query{}

	if opts != nil {
		pagination(query, opts.Iterator, opts.Limit)
		catalog.Optional(query, constants.QueryOrder, opts.Order)
		catalog.Optional(query, constants.QueryStatus, opts.Status)
		catalog.Optional(query, constants.QueryTask, opts.Task)
	}

	return catalog.Dispatch[svix.ListResponseBackgroundTaskOut](ctx, c.config, catalog.BackgroundTaskList, catalog.Params{
		Query: query,
	})
}

// Get implements svix.BackgroundTasksClient.Get.
func (c *BackgroundTasksClient) Get(ctx context.Context, taskID string) (*svix.BackgroundTaskOut, error) {
	return catalog.Dispatch[svix.BackgroundTaskOut](ctx, c.config, catalog.BackgroundTaskGet, catalog.Params{
		Path: map[string]string{constants.PathTaskID: taskID},
	})
}

var _ svix.BackgroundTasksClient = (*BackgroundTasksClient)(nil)
