package svix

// Ordering is the sort direction of a list operation.
type Ordering string

const (
	OrderingAscending  Ordering = "ascending"
	OrderingDescending Ordering = "descending"
)

// MessageStatus is the delivery status of a message attempt.
type MessageStatus int

const (
	MessageStatusSuccess MessageStatus = 0
	MessageStatusPending MessageStatus = 1
	MessageStatusFail    MessageStatus = 2
	MessageStatusSending MessageStatus = 3
)

// String returns the status name.
func (s MessageStatus) String() string {
	switch s {
	case MessageStatusSuccess:
		return "success"
	case MessageStatusPending:
		return "pending"
	case MessageStatusFail:
		return "fail"
	case MessageStatusSending:
		return "sending"
	default:
		return "unknown"
	}
}

// StatusCodeClass groups HTTP response codes of message attempts.
type StatusCodeClass int

const (
	StatusCodeClassNone StatusCodeClass = 0
	StatusCodeClass1xx  StatusCodeClass = 100
	StatusCodeClass2xx  StatusCodeClass = 200
	StatusCodeClass3xx  StatusCodeClass = 300
	StatusCodeClass4xx  StatusCodeClass = 400
	StatusCodeClass5xx  StatusCodeClass = 500
)

// MessageAttemptTriggerType tells whether an attempt was scheduled or manual.
type MessageAttemptTriggerType int

const (
	MessageAttemptTriggerScheduled MessageAttemptTriggerType = 0
	MessageAttemptTriggerManual    MessageAttemptTriggerType = 1
)

// BackgroundTaskStatus is the state of a background task.
type BackgroundTaskStatus string

const (
	BackgroundTaskStatusRunning  BackgroundTaskStatus = "running"
	BackgroundTaskStatusFinished BackgroundTaskStatus = "finished"
	BackgroundTaskStatusFailed   BackgroundTaskStatus = "failed"
)

// BackgroundTaskType is the kind of work a background task performs.
type BackgroundTaskType string

const (
	BackgroundTaskTypeEndpointReplay     BackgroundTaskType = "endpoint.replay"
	BackgroundTaskTypeEndpointRecover    BackgroundTaskType = "endpoint.recover"
	BackgroundTaskTypeApplicationStats   BackgroundTaskType = "application.stats"
	BackgroundTaskTypeMessageBroadcast   BackgroundTaskType = "message.broadcast"
	BackgroundTaskTypeSDKGenerate        BackgroundTaskType = "sdk.generate"
	BackgroundTaskTypeEventTypeAggregate BackgroundTaskType = "event-type.aggregate"
	BackgroundTaskTypeApplicationPurge   BackgroundTaskType = "application.purge_content"
)
