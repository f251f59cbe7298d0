// Package transport defines the narrow handle the worker client uses to
// reach the orchestration service, and a retrying decorator that gives any
// such handle per-call backoff.
//
// Implementations are expected to surface failures as gRPC status errors;
// callers above this package treat a status code plus message as the only
// failure shape.
package transport

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
)

// WorkflowService is the worker-facing surface of the orchestration
// service: one method per wire operation, plus read access to the cached
// server capability descriptor.
//
// Handles are cheap to share; an interface value may be used concurrently
// from any number of goroutines. Capabilities may return nil until the
// system-info handshake has populated the cache — callers must treat nil
// as "no optional capabilities".
type WorkflowService interface {
	PollWorkflowTaskQueue(ctx context.Context, req *apiv1.PollWorkflowTaskQueueRequest) (*apiv1.PollWorkflowTaskQueueResponse, error)
	PollActivityTaskQueue(ctx context.Context, req *apiv1.PollActivityTaskQueueRequest) (*apiv1.PollActivityTaskQueueResponse, error)
	RespondWorkflowTaskCompleted(ctx context.Context, req *apiv1.RespondWorkflowTaskCompletedRequest) (*apiv1.RespondWorkflowTaskCompletedResponse, error)
	RespondWorkflowTaskFailed(ctx context.Context, req *apiv1.RespondWorkflowTaskFailedRequest) (*apiv1.RespondWorkflowTaskFailedResponse, error)
	RespondActivityTaskCompleted(ctx context.Context, req *apiv1.RespondActivityTaskCompletedRequest) (*apiv1.RespondActivityTaskCompletedResponse, error)
	RecordActivityTaskHeartbeat(ctx context.Context, req *apiv1.RecordActivityTaskHeartbeatRequest) (*apiv1.RecordActivityTaskHeartbeatResponse, error)
	RespondActivityTaskCanceled(ctx context.Context, req *apiv1.RespondActivityTaskCanceledRequest) (*apiv1.RespondActivityTaskCanceledResponse, error)
	RespondActivityTaskFailed(ctx context.Context, req *apiv1.RespondActivityTaskFailedRequest) (*apiv1.RespondActivityTaskFailedResponse, error)
	GetWorkflowExecutionHistory(ctx context.Context, req *apiv1.GetWorkflowExecutionHistoryRequest) (*apiv1.GetWorkflowExecutionHistoryResponse, error)
	RespondQueryTaskCompleted(ctx context.Context, req *apiv1.RespondQueryTaskCompletedRequest) (*apiv1.RespondQueryTaskCompletedResponse, error)

	Capabilities() *apiv1.Capabilities
}

// IsRetryable reports whether err is a transient transport failure worth
// retrying. Anything that is not a gRPC status error is treated as
// permanent.
func IsRetryable(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}
