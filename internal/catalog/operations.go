// Package catalog describes every remote operation as data and dispatches
// calls through one generic function. Resource clients only translate their
// options into Params.
package catalog

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"

	"github.com/fivetwenty-io/svix-client/internal/constants"
)

// OperationID names a remote operation.
type OperationID string

// Operation describes one remote operation.
type Operation struct {
	ID     OperationID
	Method string
	// Path holds {name} placeholders for path parameters.
	Path string
	// Query lists the query parameters the operation accepts.
	Query []string
	// Idempotent operations accept an idempotency-key header.
	Idempotent bool
	// Body operations require a JSON request body; the others must not have one.
	Body bool
}

// Authentication.
const (
	AuthenticationDashboardAccess OperationID = "v1.authentication.dashboard-access"
	AuthenticationAppPortalAccess OperationID = "v1.authentication.app-portal-access"
	AuthenticationLogout          OperationID = "v1.authentication.logout"
)

// Applications.
const (
	ApplicationList   OperationID = "v1.application.list"
	ApplicationCreate OperationID = "v1.application.create"
	ApplicationGet    OperationID = "v1.application.get"
	ApplicationUpdate OperationID = "v1.application.update"
	ApplicationPatch  OperationID = "v1.application.patch"
	ApplicationDelete OperationID = "v1.application.delete"
)

// Endpoints.
const (
	EndpointList                        OperationID = "v1.endpoint.list"
	EndpointCreate                      OperationID = "v1.endpoint.create"
	EndpointGet                         OperationID = "v1.endpoint.get"
	EndpointUpdate                      OperationID = "v1.endpoint.update"
	EndpointPatch                       OperationID = "v1.endpoint.patch"
	EndpointDelete                      OperationID = "v1.endpoint.delete"
	EndpointGetSecret                   OperationID = "v1.endpoint.get-secret"
	EndpointRotateSecret                OperationID = "v1.endpoint.rotate-secret"
	EndpointRecover                     OperationID = "v1.endpoint.recover"
	EndpointReplayMissing               OperationID = "v1.endpoint.replay-missing"
	EndpointGetHeaders                  OperationID = "v1.endpoint.get-headers"
	EndpointUpdateHeaders               OperationID = "v1.endpoint.update-headers"
	EndpointPatchHeaders                OperationID = "v1.endpoint.patch-headers"
	EndpointGetStats                    OperationID = "v1.endpoint.get-stats"
	EndpointTransformationGet           OperationID = "v1.endpoint.transformation-get"
	EndpointTransformationPartialUpdate OperationID = "v1.endpoint.transformation-partial-update"
	EndpointSendExample                 OperationID = "v1.endpoint.send-example"
)

// Integrations.
const (
	IntegrationList      OperationID = "v1.integration.list"
	IntegrationCreate    OperationID = "v1.integration.create"
	IntegrationGet       OperationID = "v1.integration.get"
	IntegrationUpdate    OperationID = "v1.integration.update"
	IntegrationDelete    OperationID = "v1.integration.delete"
	IntegrationGetKey    OperationID = "v1.integration.get-key"
	IntegrationRotateKey OperationID = "v1.integration.rotate-key"
)

// Event types.
const (
	EventTypeList          OperationID = "v1.event-type.list"
	EventTypeCreate        OperationID = "v1.event-type.create"
	EventTypeGet           OperationID = "v1.event-type.get"
	EventTypeUpdate        OperationID = "v1.event-type.update"
	EventTypePatch         OperationID = "v1.event-type.patch"
	EventTypeDelete        OperationID = "v1.event-type.delete"
	EventTypeImportOpenAPI OperationID = "v1.event-type.import-openapi"
)

// Messages.
const (
	MessageList           OperationID = "v1.message.list"
	MessageCreate         OperationID = "v1.message.create"
	MessageGet            OperationID = "v1.message.get"
	MessageExpungeContent OperationID = "v1.message.expunge-content"
)

// Message attempts.
const (
	MessageAttemptListByMsg                 OperationID = "v1.message-attempt.list-by-msg"
	MessageAttemptListByEndpoint            OperationID = "v1.message-attempt.list-by-endpoint"
	MessageAttemptListAttemptedMessages     OperationID = "v1.message-attempt.list-attempted-messages"
	MessageAttemptListAttemptedDestinations OperationID = "v1.message-attempt.list-attempted-destinations"
	MessageAttemptListByEndpointDeprecated  OperationID = "v1.message-attempt.list-by-endpoint-deprecated"
	MessageAttemptGet                       OperationID = "v1.message-attempt.get"
	MessageAttemptExpungeContent            OperationID = "v1.message-attempt.expunge-content"
	MessageAttemptResend                    OperationID = "v1.message-attempt.resend"
)

// Operational webhook endpoints.
const (
	OperationalWebhookEndpointList         OperationID = "v1.operational-webhook-endpoint.list"
	OperationalWebhookEndpointCreate       OperationID = "v1.operational-webhook-endpoint.create"
	OperationalWebhookEndpointGet          OperationID = "v1.operational-webhook-endpoint.get"
	OperationalWebhookEndpointUpdate       OperationID = "v1.operational-webhook-endpoint.update"
	OperationalWebhookEndpointDelete       OperationID = "v1.operational-webhook-endpoint.delete"
	OperationalWebhookEndpointGetSecret    OperationID = "v1.operational-webhook-endpoint.get-secret"
	OperationalWebhookEndpointRotateSecret OperationID = "v1.operational-webhook-endpoint.rotate-secret"
)

// Background tasks and statistics.
const (
	BackgroundTaskList            OperationID = "v1.background-task.list"
	BackgroundTaskGet             OperationID = "v1.background-task.get"
	StatisticsAggregateAppStats   OperationID = "v1.statistics.aggregate-app-stats"
	StatisticsAggregateEventTypes OperationID = "v1.statistics.aggregate-event-types"
)

const (
	pathApp                = "/api/v1/app/{app_id}"
	pathEndpoint           = pathApp + "/endpoint/{endpoint_id}"
	pathIntegration        = pathApp + "/integration/{integ_id}"
	pathEventType          = "/api/v1/event-type/{event_type_name}"
	pathMessage            = pathApp + "/msg/{msg_id}"
	pathOperationalWebhook = "/api/v1/operational-webhook/endpoint/{endpoint_id}"
)

var (
	queryPagination = []string{constants.QueryIterator, constants.QueryLimit}
	queryOrdered    = []string{constants.QueryIterator, constants.QueryLimit, constants.QueryOrder}
	queryAttempts   = []string{
		constants.QueryIterator, constants.QueryLimit, constants.QueryEventTypes,
		constants.QueryBefore, constants.QueryAfter, constants.QueryChannel,
		constants.QueryTag, constants.QueryStatus,
	}
)

func with(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)

	return append(out, extra...)
}

var operations = map[OperationID]Operation{}

func register(ops ...Operation) {
	for _, op := range ops {
		if _, dup := operations[op.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate operation %s", op.ID))
		}

		operations[op.ID] = op
	}
}

//nolint:funlen // the table is the catalog
func init() {
	register(
		Operation{ID: AuthenticationDashboardAccess, Method: http.MethodPost, Path: "/api/v1/auth/dashboard-access/{app_id}", Idempotent: true},
		Operation{ID: AuthenticationAppPortalAccess, Method: http.MethodPost, Path: "/api/v1/auth/app-portal-access/{app_id}", Idempotent: true, Body: true},
		Operation{ID: AuthenticationLogout, Method: http.MethodPost, Path: "/api/v1/auth/logout", Idempotent: true},

		Operation{ID: ApplicationList, Method: http.MethodGet, Path: "/api/v1/app", Query: queryOrdered},
		Operation{ID: ApplicationCreate, Method: http.MethodPost, Path: "/api/v1/app", Query: []string{constants.QueryGetIfExists}, Idempotent: true, Body: true},
		Operation{ID: ApplicationGet, Method: http.MethodGet, Path: pathApp},
		Operation{ID: ApplicationUpdate, Method: http.MethodPut, Path: pathApp, Body: true},
		Operation{ID: ApplicationPatch, Method: http.MethodPatch, Path: pathApp, Body: true},
		Operation{ID: ApplicationDelete, Method: http.MethodDelete, Path: pathApp},

		Operation{ID: EndpointList, Method: http.MethodGet, Path: pathApp + "/endpoint", Query: queryOrdered},
		Operation{ID: EndpointCreate, Method: http.MethodPost, Path: pathApp + "/endpoint", Idempotent: true, Body: true},
		Operation{ID: EndpointGet, Method: http.MethodGet, Path: pathEndpoint},
		Operation{ID: EndpointUpdate, Method: http.MethodPut, Path: pathEndpoint, Body: true},
		Operation{ID: EndpointPatch, Method: http.MethodPatch, Path: pathEndpoint, Body: true},
		Operation{ID: EndpointDelete, Method: http.MethodDelete, Path: pathEndpoint},
		Operation{ID: EndpointGetSecret, Method: http.MethodGet, Path: pathEndpoint + "/secret"},
		Operation{ID: EndpointRotateSecret, Method: http.MethodPost, Path: pathEndpoint + "/secret/rotate", Idempotent: true, Body: true},
		Operation{ID: EndpointRecover, Method: http.MethodPost, Path: pathEndpoint + "/recover", Idempotent: true, Body: true},
		Operation{ID: EndpointReplayMissing, Method: http.MethodPost, Path: pathEndpoint + "/replay-missing", Idempotent: true, Body: true},
		Operation{ID: EndpointGetHeaders, Method: http.MethodGet, Path: pathEndpoint + "/headers"},
		Operation{ID: EndpointUpdateHeaders, Method: http.MethodPut, Path: pathEndpoint + "/headers", Body: true},
		Operation{ID: EndpointPatchHeaders, Method: http.MethodPatch, Path: pathEndpoint + "/headers", Body: true},
		Operation{ID: EndpointGetStats, Method: http.MethodGet, Path: pathEndpoint + "/stats", Query: []string{constants.QuerySince, constants.QueryUntil}},
		Operation{ID: EndpointTransformationGet, Method: http.MethodGet, Path: pathEndpoint + "/transformation"},
		Operation{ID: EndpointTransformationPartialUpdate, Method: http.MethodPatch, Path: pathEndpoint + "/transformation", Body: true},
		Operation{ID: EndpointSendExample, Method: http.MethodPost, Path: pathEndpoint + "/send-example", Idempotent: true, Body: true},

		Operation{ID: IntegrationList, Method: http.MethodGet, Path: pathApp + "/integration", Query: queryOrdered},
		Operation{ID: IntegrationCreate, Method: http.MethodPost, Path: pathApp + "/integration", Idempotent: true, Body: true},
		Operation{ID: IntegrationGet, Method: http.MethodGet, Path: pathIntegration},
		Operation{ID: IntegrationUpdate, Method: http.MethodPut, Path: pathIntegration, Body: true},
		Operation{ID: IntegrationDelete, Method: http.MethodDelete, Path: pathIntegration},
		Operation{ID: IntegrationGetKey, Method: http.MethodGet, Path: pathIntegration + "/key"},
		Operation{ID: IntegrationRotateKey, Method: http.MethodPost, Path: pathIntegration + "/key/rotate", Idempotent: true},

		Operation{ID: EventTypeList, Method: http.MethodGet, Path: "/api/v1/event-type", Query: with(queryOrdered, constants.QueryIncludeArchived, constants.QueryWithContent)},
		Operation{ID: EventTypeCreate, Method: http.MethodPost, Path: "/api/v1/event-type", Idempotent: true, Body: true},
		Operation{ID: EventTypeGet, Method: http.MethodGet, Path: pathEventType},
		Operation{ID: EventTypeUpdate, Method: http.MethodPut, Path: pathEventType, Body: true},
		Operation{ID: EventTypePatch, Method: http.MethodPatch, Path: pathEventType, Body: true},
		Operation{ID: EventTypeDelete, Method: http.MethodDelete, Path: pathEventType, Query: []string{constants.QueryExpunge}},
		Operation{ID: EventTypeImportOpenAPI, Method: http.MethodPost, Path: "/api/v1/event-type/import/openapi", Idempotent: true, Body: true},

		Operation{ID: MessageList, Method: http.MethodGet, Path: pathApp + "/msg", Query: with(queryPagination,
			constants.QueryChannel, constants.QueryBefore, constants.QueryAfter, constants.QueryWithContent,
			constants.QueryTag, constants.QueryEventTypes)},
		Operation{ID: MessageCreate, Method: http.MethodPost, Path: pathApp + "/msg", Query: []string{constants.QueryWithContent}, Idempotent: true, Body: true},
		Operation{ID: MessageGet, Method: http.MethodGet, Path: pathMessage, Query: []string{constants.QueryWithContent}},
		Operation{ID: MessageExpungeContent, Method: http.MethodDelete, Path: pathMessage + "/content"},

		Operation{ID: MessageAttemptListByMsg, Method: http.MethodGet, Path: pathApp + "/attempt/msg/{msg_id}", Query: with(queryAttempts,
			constants.QueryStatusCodeClass, constants.QueryEndpointID, constants.QueryWithContent)},
		Operation{ID: MessageAttemptListByEndpoint, Method: http.MethodGet, Path: pathApp + "/attempt/endpoint/{endpoint_id}", Query: with(queryAttempts,
			constants.QueryStatusCodeClass, constants.QueryWithContent, constants.QueryWithMsg)},
		Operation{ID: MessageAttemptListAttemptedMessages, Method: http.MethodGet, Path: pathEndpoint + "/msg", Query: with(queryAttempts,
			constants.QueryWithContent)},
		Operation{ID: MessageAttemptListAttemptedDestinations, Method: http.MethodGet, Path: pathMessage + "/endpoint", Query: queryPagination},
		Operation{ID: MessageAttemptListByEndpointDeprecated, Method: http.MethodGet, Path: pathMessage + "/endpoint/{endpoint_id}/attempt", Query: queryAttempts},
		Operation{ID: MessageAttemptGet, Method: http.MethodGet, Path: pathMessage + "/attempt/{attempt_id}"},
		Operation{ID: MessageAttemptExpungeContent, Method: http.MethodDelete, Path: pathMessage + "/attempt/{attempt_id}/content"},
		Operation{ID: MessageAttemptResend, Method: http.MethodPost, Path: pathMessage + "/endpoint/{endpoint_id}/resend", Idempotent: true},

		Operation{ID: OperationalWebhookEndpointList, Method: http.MethodGet, Path: "/api/v1/operational-webhook/endpoint", Query: queryOrdered},
		Operation{ID: OperationalWebhookEndpointCreate, Method: http.MethodPost, Path: "/api/v1/operational-webhook/endpoint", Idempotent: true, Body: true},
		Operation{ID: OperationalWebhookEndpointGet, Method: http.MethodGet, Path: pathOperationalWebhook},
		Operation{ID: OperationalWebhookEndpointUpdate, Method: http.MethodPut, Path: pathOperationalWebhook, Body: true},
		Operation{ID: OperationalWebhookEndpointDelete, Method: http.MethodDelete, Path: pathOperationalWebhook},
		Operation{ID: OperationalWebhookEndpointGetSecret, Method: http.MethodGet, Path: pathOperationalWebhook + "/secret"},
		Operation{ID: OperationalWebhookEndpointRotateSecret, Method: http.MethodPost, Path: pathOperationalWebhook + "/secret/rotate", Idempotent: true, Body: true},

		Operation{ID: BackgroundTaskList, Method: http.MethodGet, Path: "/api/v1/background-task", Query: with(queryOrdered,
			constants.QueryStatus, constants.QueryTask)},
		Operation{ID: BackgroundTaskGet, Method: http.MethodGet, Path: "/api/v1/background-task/{task_id}"},

		Operation{ID: StatisticsAggregateAppStats, Method: http.MethodPost, Path: "/api/v1/stats/usage/app", Idempotent: true, Body: true},
		Operation{ID: StatisticsAggregateEventTypes, Method: http.MethodPut, Path: "/api/v1/stats/usage/event-types"},
	)
}

// Lookup returns the descriptor of id.
func Lookup(id OperationID) (Operation, error) {
	op, ok := operations[id]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %s", constants.ErrUnknownOperation, id)
	}

	return op, nil
}

// Operations returns every registered descriptor.
func Operations() []Operation {
	out := make([]Operation, 0, len(operations))
	for _, op := range operations {
		out = append(out, op)
	}

	return out
}

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// PathParams returns the names of the path placeholders of op, in order.
func (op Operation) PathParams() []string {
	matches := placeholder.FindAllStringSubmatch(op.Path, -1)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}

	return names
}

// AcceptsQuery reports whether op accepts the query parameter name.
func (op Operation) AcceptsQuery(name string) bool {
	return slices.Contains(op.Query, name)
}
