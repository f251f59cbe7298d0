package worker

import (
	apiv1 "github.com/loomworks/loom/internal/api/v1"
)

// QueryResult is one answer to a query delivered with a workflow task.
// During request assembly it is exploded into its wire parts: the id
// becomes the map key of the batched form (and is dropped entirely on the
// legacy path), the rest becomes a WorkflowQueryResult.
type QueryResult struct {
	ID           string
	Type         apiv1.QueryResultType
	Answer       *apiv1.Payloads
	ErrorMessage string
}

func (q QueryResult) wire() *apiv1.WorkflowQueryResult {
	return &apiv1.WorkflowQueryResult{
		ResultType:   q.Type,
		Answer:       q.Answer,
		ErrorMessage: q.ErrorMessage,
	}
}

// WorkflowTaskCompletion is a partially-built workflow task completion. The
// caller fills in what it knows — the outcome of running the task — and
// CompleteWorkflowTask supplies identity, namespace and versioning fields
// when assembling the wire request. Build one per call; it is consumed by
// value and never retained.
type WorkflowTaskCompletion struct {
	// TaskToken is the token received from polling for the workflow task.
	TaskToken TaskToken
	// Commands are the state transitions produced by this task, in order.
	Commands []*apiv1.Command
	// StickyAttributes, if set, ask the server to queue the next task on a
	// worker-specific queue.
	StickyAttributes *apiv1.StickyExecutionAttributes
	// QueryResponses answer the queries that were attached to the task.
	QueryResponses []QueryResult
	// ReturnNewWorkflowTask requests the next workflow task on the
	// completion response if one is available.
	ReturnNewWorkflowTask bool
	// ForceCreateNewWorkflowTask forces a new workflow task to be created
	// after this completion even if none is pending.
	ForceCreateNewWorkflowTask bool
	// SDKMetadata is passed through to the server unmodified.
	SDKMetadata *apiv1.WorkflowTaskCompletedMetadata
	// MeteringMetadata is passed through to the server unmodified.
	MeteringMetadata *apiv1.MeteringMetadata
}
