package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/svix-client/pkg/svix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type operationCase struct {
	name   string
	call   func(ctx context.Context, c *Client) error
	method string
	path   string
	query  url.Values
	key    string
	body   bool

	// response replaces the default list page when the result is not a list.
	response string
}

func discard[T any](_ *T, err error) error {
	return err
}

//nolint:funlen,maintidx // one row per remote operation
func operationCases() []operationCase {
	post := &svix.PostOptions{IdempotencyKey: svix.String("key-1")}
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	status := svix.MessageStatusFail
	codeClass := svix.StatusCodeClass5xx
	taskStatus := svix.BackgroundTaskStatusRunning
	taskType := svix.BackgroundTaskTypeEndpointReplay

	return []operationCase{
		// Authentication
		{
			name: "authentication dashboard access",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Authentication().DashboardAccess(ctx, "app_1", post))
			},
			method: http.MethodPost, path: "/api/v1/auth/dashboard-access/app_1", key: "key-1",
		},
		{
			name: "authentication app portal access",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Authentication().AppPortalAccess(ctx, "app_1", svix.AppPortalAccessIn{}, post))
			},
			method: http.MethodPost, path: "/api/v1/auth/app-portal-access/app_1", key: "key-1", body: true,
		},
		{
			name: "authentication logout",
			call: func(ctx context.Context, c *Client) error {
				return c.Authentication().Logout(ctx, post)
			},
			method: http.MethodPost, path: "/api/v1/auth/logout", key: "key-1",
		},

		// Applications
		{
			name: "application list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().List(ctx, &svix.ApplicationListOptions{
					Iterator: svix.String("iter_1"),
					Limit:    svix.Int32(10),
					Order:    svix.Order(svix.OrderingAscending),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app",
			query: url.Values{"iterator": {"iter_1"}, "limit": {"10"}, "order": {"ascending"}},
		},
		{
			name: "application create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().Create(ctx, svix.ApplicationIn{Name: "demo"}, post))
			},
			method: http.MethodPost, path: "/api/v1/app", key: "key-1", body: true,
		},
		{
			name: "application get or create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().GetOrCreate(ctx, svix.ApplicationIn{Name: "demo"}, post))
			},
			method: http.MethodPost, path: "/api/v1/app", query: url.Values{"get_if_exists": {"true"}}, key: "key-1", body: true,
		},
		{
			name: "application get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().Get(ctx, "app_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1",
		},
		{
			name: "application update ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().Update(ctx, "app_1", svix.ApplicationIn{Name: "demo"}, post))
			},
			method: http.MethodPut, path: "/api/v1/app/app_1", body: true,
		},
		{
			name: "application patch ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Applications().Patch(ctx, "app_1", svix.ApplicationPatch{Name: svix.String("demo")}, post))
			},
			method: http.MethodPatch, path: "/api/v1/app/app_1", body: true,
		},
		{
			name: "application delete",
			call: func(ctx context.Context, c *Client) error {
				return c.Applications().Delete(ctx, "app_1")
			},
			method: http.MethodDelete, path: "/api/v1/app/app_1",
		},

		// Endpoints
		{
			name: "endpoint list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().List(ctx, "app_1", &svix.EndpointListOptions{Order: svix.Order(svix.OrderingDescending)}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint", query: url.Values{"order": {"descending"}},
		},
		{
			name: "endpoint create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().Create(ctx, "app_1", svix.EndpointIn{URL: "https://example.com/hook"}, post))
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/endpoint", key: "key-1", body: true,
		},
		{
			name: "endpoint get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().Get(ctx, "app_1", "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1",
		},
		{
			name: "endpoint update ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().Update(ctx, "app_1", "ep_1", svix.EndpointUpdate{URL: "https://example.com"}, post))
			},
			method: http.MethodPut, path: "/api/v1/app/app_1/endpoint/ep_1", body: true,
		},
		{
			name: "endpoint patch ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().Patch(ctx, "app_1", "ep_1", svix.EndpointPatch{}, post))
			},
			method: http.MethodPatch, path: "/api/v1/app/app_1/endpoint/ep_1", body: true,
		},
		{
			name: "endpoint delete",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().Delete(ctx, "app_1", "ep_1")
			},
			method: http.MethodDelete, path: "/api/v1/app/app_1/endpoint/ep_1",
		},
		{
			name: "endpoint get secret",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().GetSecret(ctx, "app_1", "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1/secret",
		},
		{
			name: "endpoint rotate secret",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().RotateSecret(ctx, "app_1", "ep_1", svix.EndpointSecretRotateIn{})
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/endpoint/ep_1/secret/rotate", body: true,
		},
		{
			name: "endpoint recover",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().Recover(ctx, "app_1", "ep_1", svix.RecoverIn{Since: since})
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/endpoint/ep_1/recover", body: true,
		},
		{
			name: "endpoint replay missing",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().ReplayMissing(ctx, "app_1", "ep_1", svix.ReplayIn{Since: since}, post)
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/endpoint/ep_1/replay-missing", key: "key-1", body: true,
		},
		{
			name: "endpoint get headers",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().GetHeaders(ctx, "app_1", "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1/headers",
		},
		{
			name: "endpoint update headers",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().UpdateHeaders(ctx, "app_1", "ep_1", svix.EndpointHeadersIn{Headers: map[string]string{"X-A": "1"}})
			},
			method: http.MethodPut, path: "/api/v1/app/app_1/endpoint/ep_1/headers", body: true,
		},
		{
			name: "endpoint patch headers",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().PatchHeaders(ctx, "app_1", "ep_1", svix.EndpointHeadersPatchIn{Headers: map[string]*string{"X-A": nil}})
			},
			method: http.MethodPatch, path: "/api/v1/app/app_1/endpoint/ep_1/headers", body: true,
		},
		{
			name: "endpoint get stats",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().GetStats(ctx, "app_1", "ep_1", &svix.EndpointStatsOptions{Since: svix.String("2024-01-01T00:00:00Z")}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1/stats", query: url.Values{"since": {"2024-01-01T00:00:00Z"}},
		},
		{
			name: "endpoint transformation get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().TransformationGet(ctx, "app_1", "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1/transformation",
		},
		{
			name: "endpoint transformation partial update",
			call: func(ctx context.Context, c *Client) error {
				return c.Endpoints().TransformationPartialUpdate(ctx, "app_1", "ep_1", svix.EndpointTransformationIn{Enabled: svix.Bool(true)})
			},
			method: http.MethodPatch, path: "/api/v1/app/app_1/endpoint/ep_1/transformation", body: true,
		},
		{
			name: "endpoint send example",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Endpoints().SendExample(ctx, "app_1", "ep_1", svix.EventExampleIn{EventType: "user.created"}, post))
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/endpoint/ep_1/send-example", key: "key-1", body: true,
		},

		// Integrations
		{
			name: "integration list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().List(ctx, "app_1", &svix.IntegrationListOptions{Limit: svix.Int32(5)}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/integration", query: url.Values{"limit": {"5"}},
		},
		{
			name: "integration create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().Create(ctx, "app_1", svix.IntegrationIn{Name: "zapier"}, post))
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/integration", key: "key-1", body: true,
		},
		{
			name: "integration get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().Get(ctx, "app_1", "integ_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/integration/integ_1",
		},
		{
			name: "integration update ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().Update(ctx, "app_1", "integ_1", svix.IntegrationUpdate{Name: "zapier"}, post))
			},
			method: http.MethodPut, path: "/api/v1/app/app_1/integration/integ_1", body: true,
		},
		{
			name: "integration delete",
			call: func(ctx context.Context, c *Client) error {
				return c.Integrations().Delete(ctx, "app_1", "integ_1")
			},
			method: http.MethodDelete, path: "/api/v1/app/app_1/integration/integ_1",
		},
		{
			name: "integration get key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().GetKey(ctx, "app_1", "integ_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/integration/integ_1/key",
		},
		{
			name: "integration rotate key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Integrations().RotateKey(ctx, "app_1", "integ_1"))
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/integration/integ_1/key/rotate",
		},

		// Event types
		{
			name: "event type list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().List(ctx, &svix.EventTypeListOptions{
					WithContent:     svix.Bool(true),
					IncludeArchived: svix.Bool(false),
				}))
			},
			method: http.MethodGet, path: "/api/v1/event-type",
			query: url.Values{"with_content": {"true"}, "include_archived": {"false"}},
		},
		{
			name: "event type create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().Create(ctx, svix.EventTypeIn{Name: "user.created"}, post))
			},
			method: http.MethodPost, path: "/api/v1/event-type", key: "key-1", body: true,
		},
		{
			name: "event type get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().Get(ctx, "user.created"))
			},
			method: http.MethodGet, path: "/api/v1/event-type/user.created",
		},
		{
			name: "event type update ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().Update(ctx, "user.created", svix.EventTypeUpdate{Description: "d"}, post))
			},
			method: http.MethodPut, path: "/api/v1/event-type/user.created", body: true,
		},
		{
			name: "event type patch ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().Patch(ctx, "user.created", svix.EventTypePatch{}, post))
			},
			method: http.MethodPatch, path: "/api/v1/event-type/user.created", body: true,
		},
		{
			name: "event type delete never expunges",
			call: func(ctx context.Context, c *Client) error {
				return c.EventTypes().Delete(ctx, "user.created")
			},
			method: http.MethodDelete, path: "/api/v1/event-type/user.created",
		},
		{
			name: "event type import openapi",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.EventTypes().ImportOpenAPI(ctx, svix.EventTypeImportOpenAPIIn{DryRun: svix.Bool(true)}, post))
			},
			method: http.MethodPost, path: "/api/v1/event-type/import/openapi", key: "key-1", body: true,
			response: `{"data":{"modified":[],"to_modify":[]}}`,
		},

		// Messages
		{
			name: "message list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Messages().List(ctx, "app_1", &svix.MessageListOptions{
					EventTypes: []string{"user.created", "user.deleted"},
					Channel:    svix.String("project_1"),
					Tag:        svix.String("vip"),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/msg",
			query: url.Values{"event_types": {"user.created", "user.deleted"}, "channel": {"project_1"}, "tag": {"vip"}},
		},
		{
			name: "message create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Messages().Create(ctx, "app_1", svix.MessageIn{EventType: "user.created", Payload: map[string]any{"id": 1}}, post))
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/msg", key: "key-1", body: true,
		},
		{
			name: "message get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Messages().Get(ctx, "app_1", "msg_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/msg/msg_1",
		},
		{
			name: "message expunge content",
			call: func(ctx context.Context, c *Client) error {
				return c.Messages().ExpungeContent(ctx, "app_1", "msg_1")
			},
			method: http.MethodDelete, path: "/api/v1/app/app_1/msg/msg_1/content",
		},

		// Message attempts
		{
			name: "attempt list by msg",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().ListByMsg(ctx, "app_1", "msg_1", &svix.MessageAttemptListOptions{
					Status:          &status,
					StatusCodeClass: &codeClass,
					EndpointID:      svix.String("ep_1"),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/attempt/msg/msg_1",
			query: url.Values{"status": {"2"}, "status_code_class": {"500"}, "endpoint_id": {"ep_1"}},
		},
		{
			name: "attempt list by endpoint",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().ListByEndpoint(ctx, "app_1", "ep_1", &svix.MessageAttemptListByEndpointOptions{
					WithMsg:    svix.Bool(true),
					EndpointID: svix.String("ep_other"),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/attempt/endpoint/ep_1",
			query: url.Values{"with_msg": {"true"}},
		},
		{
			name: "attempt list attempted messages",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().ListAttemptedMessages(ctx, "app_1", "ep_1", &svix.MessageAttemptListOptions{
					WithContent:     svix.Bool(false),
					StatusCodeClass: &codeClass,
					EndpointID:      svix.String("ep_other"),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/endpoint/ep_1/msg",
			query: url.Values{"with_content": {"false"}},
		},
		{
			name: "attempt list attempted destinations",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().ListAttemptedDestinations(ctx, "app_1", "msg_1", &svix.ListOptions{Iterator: svix.String("iter_1")}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/msg/msg_1/endpoint", query: url.Values{"iterator": {"iter_1"}},
		},
		{
			name: "attempt list attempts for endpoint",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().ListAttemptsForEndpoint(ctx, "app_1", "msg_1", "ep_1", &svix.MessageAttemptListOptions{
					Limit:           svix.Int32(3),
					StatusCodeClass: &codeClass,
					EndpointID:      svix.String("ep_other"),
					WithContent:     svix.Bool(true),
				}))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/msg/msg_1/endpoint/ep_1/attempt",
			query: url.Values{"limit": {"3"}},
		},
		{
			name: "attempt get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.MessageAttempts().Get(ctx, "app_1", "msg_1", "atmpt_1"))
			},
			method: http.MethodGet, path: "/api/v1/app/app_1/msg/msg_1/attempt/atmpt_1",
		},
		{
			name: "attempt resend",
			call: func(ctx context.Context, c *Client) error {
				return c.MessageAttempts().Resend(ctx, "app_1", "msg_1", "ep_1")
			},
			method: http.MethodPost, path: "/api/v1/app/app_1/msg/msg_1/endpoint/ep_1/resend",
		},
		{
			name: "attempt expunge content",
			call: func(ctx context.Context, c *Client) error {
				return c.MessageAttempts().ExpungeContent(ctx, "app_1", "msg_1", "atmpt_1")
			},
			method: http.MethodDelete, path: "/api/v1/app/app_1/msg/msg_1/attempt/atmpt_1/content",
		},

		// Operational webhook endpoints
		{
			name: "operational webhook endpoint list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.OperationalWebhookEndpoints().List(ctx, &svix.OperationalWebhookEndpointListOptions{Limit: svix.Int32(1)}))
			},
			method: http.MethodGet, path: "/api/v1/operational-webhook/endpoint", query: url.Values{"limit": {"1"}},
		},
		{
			name: "operational webhook endpoint create",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.OperationalWebhookEndpoints().Create(ctx, svix.OperationalWebhookEndpointIn{URL: "https://example.com"}, post))
			},
			method: http.MethodPost, path: "/api/v1/operational-webhook/endpoint", key: "key-1", body: true,
		},
		{
			name: "operational webhook endpoint get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.OperationalWebhookEndpoints().Get(ctx, "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/operational-webhook/endpoint/ep_1",
		},
		{
			name: "operational webhook endpoint update ignores the key",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.OperationalWebhookEndpoints().Update(ctx, "ep_1", svix.OperationalWebhookEndpointUpdate{URL: "https://example.com"}, post))
			},
			method: http.MethodPut, path: "/api/v1/operational-webhook/endpoint/ep_1", body: true,
		},
		{
			name: "operational webhook endpoint delete",
			call: func(ctx context.Context, c *Client) error {
				return c.OperationalWebhookEndpoints().Delete(ctx, "ep_1")
			},
			method: http.MethodDelete, path: "/api/v1/operational-webhook/endpoint/ep_1",
		},
		{
			name: "operational webhook endpoint get secret",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.OperationalWebhookEndpoints().GetSecret(ctx, "ep_1"))
			},
			method: http.MethodGet, path: "/api/v1/operational-webhook/endpoint/ep_1/secret",
		},
		{
			name: "operational webhook endpoint rotate secret",
			call: func(ctx context.Context, c *Client) error {
				return c.OperationalWebhookEndpoints().RotateSecret(ctx, "ep_1", svix.OperationalWebhookEndpointSecretIn{})
			},
			method: http.MethodPost, path: "/api/v1/operational-webhook/endpoint/ep_1/secret/rotate", body: true,
		},

		// Background tasks
		{
			name: "background task list",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.BackgroundTasks().List(ctx, &svix.BackgroundTaskListOptions{Status: &taskStatus, Task: &taskType}))
			},
			method: http.MethodGet, path: "/api/v1/background-task",
			query: url.Values{"status": {"running"}, "task": {"endpoint.replay"}},
		},
		{
			name: "background task get",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.BackgroundTasks().Get(ctx, "qtask_1"))
			},
			method: http.MethodGet, path: "/api/v1/background-task/qtask_1",
			response: `{"id":"qtask_1","status":"running","task":"endpoint.replay","data":{}}`,
		},

		// Statistics
		{
			name: "statistics aggregate app stats",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Statistics().AggregateAppStats(ctx, svix.AggregateAppStatsOptions{
					Since: "2024-01-01T00:00:00Z",
					Until: "2024-02-01T00:00:00Z",
				}, post))
			},
			method: http.MethodPost, path: "/api/v1/stats/usage/app", key: "key-1", body: true,
		},
		{
			name: "statistics aggregate event types",
			call: func(ctx context.Context, c *Client) error {
				return discard(c.Statistics().AggregateEventTypes(ctx))
			},
			method: http.MethodPut, path: "/api/v1/stats/usage/event-types",
		},
	}
}

func TestResourceClients_Operations(t *testing.T) {
	t.Parallel()

	for _, tc := range operationCases() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, rec := newTestClient(t)
			if tc.response != "" {
				rec.respond(http.StatusOK, tc.response)
			}

			require.NoError(t, tc.call(context.Background(), client))

			req := rec.last(t)
			assert.Equal(t, tc.method, req.Method)
			assert.Equal(t, tc.path, req.Path)
			assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
			assert.Equal(t, []string{"svix-libs/1.0.0/go"}, req.Header.Values("User-Agent"))

			if tc.query == nil {
				assert.Empty(t, req.Query)
			} else {
				assert.Equal(t, tc.query, req.Query)
			}

			if tc.key == "" {
				assert.Empty(t, req.Header.Values("idempotency-key"))
			} else {
				assert.Equal(t, tc.key, req.Header.Get("idempotency-key"))
			}

			if tc.body {
				assert.True(t, json.Valid(req.Body), "body is not JSON: %q", req.Body)
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			} else {
				assert.Empty(t, req.Body)
				assert.Empty(t, req.Header.Get("Content-Type"))
			}
		})
	}
}
