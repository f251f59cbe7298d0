package apiv1

import "google.golang.org/protobuf/types/known/timestamppb"

// EventType tags a history event. Workers replay history to reconstruct
// workflow state; the event attributes themselves are opaque here.
type EventType int32

const (
	EventTypeUnspecified                EventType = 0
	EventTypeWorkflowExecutionStarted   EventType = 1
	EventTypeWorkflowExecutionCompleted EventType = 2
	EventTypeWorkflowExecutionFailed    EventType = 3
	EventTypeWorkflowTaskScheduled      EventType = 4
	EventTypeWorkflowTaskStarted        EventType = 5
	EventTypeWorkflowTaskCompleted      EventType = 6
	EventTypeWorkflowTaskFailed         EventType = 7
	EventTypeActivityTaskScheduled      EventType = 8
	EventTypeActivityTaskStarted        EventType = 9
	EventTypeActivityTaskCompleted      EventType = 10
	EventTypeActivityTaskFailed         EventType = 11
	EventTypeTimerStarted               EventType = 12
	EventTypeTimerFired                 EventType = 13
	EventTypeMarkerRecorded             EventType = 14
)

// HistoryEvent is one entry in a workflow execution's event history.
type HistoryEvent struct {
	EventID    int64
	EventTime  *timestamppb.Timestamp
	EventType  EventType
	Version    int64
	TaskID     int64
	Attributes *Payload
}

// History is an ordered page of workflow execution events.
type History struct {
	Events []*HistoryEvent
}
