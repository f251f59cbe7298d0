package apiv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TaskQueueKind distinguishes the server-managed queue flavors.
type TaskQueueKind int32

const (
	TaskQueueKindUnspecified TaskQueueKind = 0
	// TaskQueueKindNormal is a regular, shared task queue.
	TaskQueueKindNormal TaskQueueKind = 1
	// TaskQueueKindSticky is a worker-specific queue used to route
	// subsequent workflow tasks back to the worker holding a cached
	// workflow.
	TaskQueueKindSticky TaskQueueKind = 2
)

func (k TaskQueueKind) String() string {
	switch k {
	case TaskQueueKindNormal:
		return "Normal"
	case TaskQueueKindSticky:
		return "Sticky"
	default:
		return "Unspecified"
	}
}

// TaskQueue addresses a queue workers poll for tasks. For sticky queues,
// NormalName records the normal queue the sticky queue was derived from;
// for normal queues it is empty.
type TaskQueue struct {
	Name       string
	Kind       TaskQueueKind
	NormalName string
}

// TaskQueueMetadata carries optional per-poll queue hints. A nil
// MaxTasksPerSecond means the worker imposes no rate limit.
type TaskQueueMetadata struct {
	MaxTasksPerSecond *wrapperspb.DoubleValue
}

// StickyExecutionAttributes asks the server to queue the workflow's next
// task on the given worker-specific queue, falling back to the normal queue
// if the worker does not poll within the schedule-to-start timeout.
type StickyExecutionAttributes struct {
	WorkerTaskQueue        *TaskQueue
	ScheduleToStartTimeout *durationpb.Duration
}
