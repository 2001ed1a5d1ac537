package client

import (
	"context"

	"github.com/fivetwenty-io/svix-client/internal/catalog"
	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// StatisticsClient implements svix.StatisticsClient.
type StatisticsClient struct {
	config *config.Configuration
}

// NewStatisticsClient creates a new statistics client.
func NewStatisticsClient(cfg *config.Configuration) *StatisticsClient {
	return &StatisticsClient{config: cfg}
}

// AggregateAppStats implements svix.StatisticsClient.AggregateAppStats.
func (c *StatisticsClient) AggregateAppStats(
	ctx context.Context, in svix.AggregateAppStatsOptions, opts *svix.PostOptions,
) (*svix.AppUsageStatsOut, error) {
	return catalog.Dispatch[svix.AppUsageStatsOut](ctx, c.config, catalog.StatisticsAggregateAppStats, catalog.Params{
		IdempotencyKey: idempotencyKey(opts),
		Body: svix.AppUsageStatsIn{
			AppIDs: in.AppIDs,
			Since:  in.Since,
			Until:  in.Until,
		},
	})
}

// AggregateEventTypes implements svix.StatisticsClient.AggregateEventTypes.
func (c *StatisticsClient) AggregateEventTypes(ctx context.Context) (*svix.AggregateEventTypesOut, error) {
	return catalog.Dispatch[svix.AggregateEventTypesOut](ctx, c.config, catalog.StatisticsAggregateEventTypes, catalog.Params{})
}

var _ svix.StatisticsClient = (*StatisticsClient)(nil)
