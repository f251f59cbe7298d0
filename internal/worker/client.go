// Package worker implements the client layer a worker uses to talk to the
// Loom orchestration service: it turns worker intent (poll for work, report
// an outcome, heartbeat) into fully-populated wire requests and unwraps the
// responses.
//
// The package owns protocol translation only. Connection management, retry
// and backoff belong to the injected transport handle; workflow and
// activity execution belong to the layers above.
package worker

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/wrapperspb"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
	"github.com/loomworks/loom/internal/transport"
)

// WorkerClient is everything a worker needs from the orchestration service,
// and hence the minimal surface to mock in tests. Operations that issue a
// call return the transport's error unchanged; none of them retry, classify
// or recover. All operations are safe for concurrent use.
type WorkerClient interface {
	// PollWorkflowTask long-polls the given task queue for the next
	// workflow task. Blocks until work arrives or the poll window closes;
	// cancel via ctx to abandon the poll.
	PollWorkflowTask(ctx context.Context, taskQueue *apiv1.TaskQueue) (*apiv1.PollWorkflowTaskQueueResponse, error)
	// PollActivityTask long-polls the named queue for the next activity
	// task. maxTasksPerSecond caps this worker's task rate; zero or
	// negative means no limit.
	PollActivityTask(ctx context.Context, taskQueue string, maxTasksPerSecond float64) (*apiv1.PollActivityTaskQueueResponse, error)
	// CompleteWorkflowTask reports a workflow task's outcome.
	CompleteWorkflowTask(ctx context.Context, completion *WorkflowTaskCompletion) (*apiv1.RespondWorkflowTaskCompletedResponse, error)
	// CompleteActivityTask reports an activity's result. A nil result is a
	// successful completion with no return value.
	CompleteActivityTask(ctx context.Context, token TaskToken, result *apiv1.Payloads) (*apiv1.RespondActivityTaskCompletedResponse, error)
	// RecordActivityHeartbeat keeps an activity's lease alive.
	RecordActivityHeartbeat(ctx context.Context, token TaskToken, details *apiv1.Payloads) (*apiv1.RecordActivityTaskHeartbeatResponse, error)
	// CancelActivityTask acknowledges that an activity was cancelled.
	CancelActivityTask(ctx context.Context, token TaskToken, details *apiv1.Payloads) (*apiv1.RespondActivityTaskCanceledResponse, error)
	// FailActivityTask reports an activity failure.
	FailActivityTask(ctx context.Context, token TaskToken, failure *apiv1.Failure) (*apiv1.RespondActivityTaskFailedResponse, error)
	// FailWorkflowTask reports that a workflow task could not be processed.
	FailWorkflowTask(ctx context.Context, token TaskToken, cause apiv1.WorkflowTaskFailedCause, failure *apiv1.Failure) (*apiv1.RespondWorkflowTaskFailedResponse, error)
	// GetWorkflowExecutionHistory fetches one page of an execution's event
	// history. An empty runID addresses the latest run.
	GetWorkflowExecutionHistory(ctx context.Context, workflowID, runID string, pageToken []byte) (*apiv1.GetWorkflowExecutionHistoryResponse, error)
	// RespondLegacyQuery answers a direct query using the pre-batching
	// protocol. The query id is not part of that protocol and is dropped.
	RespondLegacyQuery(ctx context.Context, token TaskToken, result QueryResult) (*apiv1.RespondQueryTaskCompletedResponse, error)
	// Capabilities returns the transport's cached server capability
	// descriptor, or nil if it has not been populated. No call is issued.
	Capabilities() *apiv1.Capabilities
}

// Config holds construction parameters for a Client. Service and Namespace
// are required; the rest default.
type Config struct {
	// Service is the already-connected, retry-capable transport handle.
	Service transport.WorkflowService
	// Namespace scopes every call this client issues.
	Namespace string
	// Identity names this worker to the server. Defaults to a fresh
	// uuid@hostname.
	Identity string
	// WorkerBuildID identifies the worker's build for versioned routing,
	// or serves as the legacy binary checksum against older servers.
	WorkerBuildID string
	// UseVersioning opts this worker into build-id based task routing when
	// the server supports it.
	UseVersioning bool
	Logger        *slog.Logger
}

// Client implements WorkerClient over a WorkflowService handle. Every field
// is immutable after construction; the capability cache behind the handle
// is read on each call but never written here, so a Client needs no
// synchronization of its own.
type Client struct {
	service       transport.WorkflowService
	namespace     string
	identity      string
	workerBuildID string
	useVersioning bool
	logger        *slog.Logger
}

var _ WorkerClient = (*Client)(nil)

// NewClient creates a worker client over the given transport handle.
func NewClient(cfg *Config) *Client {
	identity := cfg.Identity
	if identity == "" {
		hostname, _ := os.Hostname()
		identity = uuid.NewString() + "@" + hostname
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		service:       cfg.Service,
		namespace:     cfg.Namespace,
		identity:      identity,
		workerBuildID: cfg.WorkerBuildID,
		useVersioning: cfg.UseVersioning,
		logger:        logger,
	}
}

// Identity returns the worker identity attached to outgoing requests.
func (c *Client) Identity() string {
	return c.identity
}

func (c *Client) PollWorkflowTask(ctx context.Context, taskQueue *apiv1.TaskQueue) (*apiv1.PollWorkflowTaskQueueResponse, error) {
	c.logger.DebugContext(ctx, "polling workflow task queue",
		"task_queue", taskQueue.Name,
		"kind", taskQueue.Kind)

	return c.service.PollWorkflowTaskQueue(ctx, &apiv1.PollWorkflowTaskQueueRequest{
		Namespace:                 c.namespace,
		TaskQueue:                 taskQueue,
		Identity:                  c.identity,
		BinaryChecksum:            c.binaryChecksum(),
		WorkerVersionCapabilities: c.workerVersionCapabilities(),
	})
}

func (c *Client) PollActivityTask(ctx context.Context, taskQueue string, maxTasksPerSecond float64) (*apiv1.PollActivityTaskQueueResponse, error) {
	c.logger.DebugContext(ctx, "polling activity task queue",
		"task_queue", taskQueue)

	var queueMetadata *apiv1.TaskQueueMetadata
	if maxTasksPerSecond > 0 {
		queueMetadata = &apiv1.TaskQueueMetadata{
			MaxTasksPerSecond: wrapperspb.Double(maxTasksPerSecond),
		}
	}

	return c.service.PollActivityTaskQueue(ctx, &apiv1.PollActivityTaskQueueRequest{
		Namespace: c.namespace,
		TaskQueue: &apiv1.TaskQueue{
			Name:       taskQueue,
			Kind:       apiv1.TaskQueueKindNormal,
			NormalName: "",
		},
		Identity:                  c.identity,
		TaskQueueMetadata:         queueMetadata,
		WorkerVersionCapabilities: c.workerVersionCapabilities(),
	})
}

func (c *Client) CompleteWorkflowTask(ctx context.Context, completion *WorkflowTaskCompletion) (*apiv1.RespondWorkflowTaskCompletedResponse, error) {
	queryResults := make(map[string]*apiv1.WorkflowQueryResult, len(completion.QueryResponses))
	for _, qr := range completion.QueryResponses {
		queryResults[qr.ID] = qr.wire()
	}

	return c.service.RespondWorkflowTaskCompleted(ctx, &apiv1.RespondWorkflowTaskCompletedRequest{
		TaskToken:                  completion.TaskToken.Bytes(),
		Commands:                   completion.Commands,
		Identity:                   c.identity,
		StickyAttributes:           completion.StickyAttributes,
		ReturnNewWorkflowTask:      completion.ReturnNewWorkflowTask,
		ForceCreateNewWorkflowTask: completion.ForceCreateNewWorkflowTask,
		WorkerVersionStamp:         c.workerVersionStamp(),
		Messages:                   nil,
		BinaryChecksum:             c.binaryChecksum(),
		QueryResults:               queryResults,
		Namespace:                  c.namespace,
		SDKMetadata:                completion.SDKMetadata,
		MeteringMetadata:           completion.MeteringMetadata,
	})
}

func (c *Client) CompleteActivityTask(ctx context.Context, token TaskToken, result *apiv1.Payloads) (*apiv1.RespondActivityTaskCompletedResponse, error) {
	return c.service.RespondActivityTaskCompleted(ctx, &apiv1.RespondActivityTaskCompletedRequest{
		TaskToken:     token.Bytes(),
		Result:        result,
		Identity:      c.identity,
		Namespace:     c.namespace,
		WorkerVersion: c.workerVersionStamp(),
	})
}

// RecordActivityHeartbeat carries no versioning fields: heartbeats renew a
// lease on an already-routed task, so they are not build-id scoped.
func (c *Client) RecordActivityHeartbeat(ctx context.Context, token TaskToken, details *apiv1.Payloads) (*apiv1.RecordActivityTaskHeartbeatResponse, error) {
	return c.service.RecordActivityTaskHeartbeat(ctx, &apiv1.RecordActivityTaskHeartbeatRequest{
		TaskToken: token.Bytes(),
		Details:   details,
		Identity:  c.identity,
		Namespace: c.namespace,
	})
}

func (c *Client) CancelActivityTask(ctx context.Context, token TaskToken, details *apiv1.Payloads) (*apiv1.RespondActivityTaskCanceledResponse, error) {
	return c.service.RespondActivityTaskCanceled(ctx, &apiv1.RespondActivityTaskCanceledRequest{
		TaskToken:     token.Bytes(),
		Details:       details,
		Identity:      c.identity,
		Namespace:     c.namespace,
		WorkerVersion: c.workerVersionStamp(),
	})
}

func (c *Client) FailActivityTask(ctx context.Context, token TaskToken, failure *apiv1.Failure) (*apiv1.RespondActivityTaskFailedResponse, error) {
	return c.service.RespondActivityTaskFailed(ctx, &apiv1.RespondActivityTaskFailedRequest{
		TaskToken: token.Bytes(),
		Failure:   failure,
		Identity:  c.identity,
		Namespace: c.namespace,
		// LastHeartbeatDetails is reserved until the protocol revision that
		// defines failure-attached heartbeats.
		LastHeartbeatDetails: nil,
		WorkerVersion:        c.workerVersionStamp(),
	})
}

func (c *Client) FailWorkflowTask(ctx context.Context, token TaskToken, cause apiv1.WorkflowTaskFailedCause, failure *apiv1.Failure) (*apiv1.RespondWorkflowTaskFailedResponse, error) {
	return c.service.RespondWorkflowTaskFailed(ctx, &apiv1.RespondWorkflowTaskFailedRequest{
		TaskToken:      token.Bytes(),
		Cause:          cause,
		Failure:        failure,
		Identity:       c.identity,
		BinaryChecksum: c.binaryChecksum(),
		Namespace:      c.namespace,
		Messages:       nil,
		WorkerVersion:  c.workerVersionStamp(),
	})
}

func (c *Client) GetWorkflowExecutionHistory(ctx context.Context, workflowID, runID string, pageToken []byte) (*apiv1.GetWorkflowExecutionHistoryResponse, error) {
	return c.service.GetWorkflowExecutionHistory(ctx, &apiv1.GetWorkflowExecutionHistoryRequest{
		Namespace: c.namespace,
		Execution: &apiv1.WorkflowExecution{
			WorkflowID: workflowID,
			RunID:      runID,
		},
		NextPageToken: pageToken,
	})
}

func (c *Client) RespondLegacyQuery(ctx context.Context, token TaskToken, result QueryResult) (*apiv1.RespondQueryTaskCompletedResponse, error) {
	return c.service.RespondQueryTaskCompleted(ctx, &apiv1.RespondQueryTaskCompletedRequest{
		TaskToken:     token.Bytes(),
		CompletedType: result.Type,
		QueryResult:   result.Answer,
		ErrorMessage:  result.ErrorMessage,
		Namespace:     c.namespace,
	})
}

func (c *Client) Capabilities() *apiv1.Capabilities {
	return c.service.Capabilities()
}
