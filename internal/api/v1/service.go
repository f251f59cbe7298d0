package apiv1

import "google.golang.org/protobuf/types/known/timestamppb"

// Request and response records for the worker-facing operations of the
// orchestration service. Field sets follow the service schema exactly;
// omitting a field from an outgoing request corrupts the protocol, so the
// assembly layer maps every one explicitly.

// PollWorkflowTaskQueueRequest is a long-poll for the next workflow task.
type PollWorkflowTaskQueueRequest struct {
	Namespace                 string
	TaskQueue                 *TaskQueue
	Identity                  string
	BinaryChecksum            string
	WorkerVersionCapabilities *WorkerVersionCapabilities
}

// PollWorkflowTaskQueueResponse delivers a workflow task, or zero values
// when the poll timed out without work.
type PollWorkflowTaskQueueResponse struct {
	TaskToken              []byte
	WorkflowExecution      *WorkflowExecution
	WorkflowType           *WorkflowType
	PreviousStartedEventID int64
	StartedEventID         int64
	Attempt                int32
	BacklogCountHint       int64
	History                *History
	NextPageToken          []byte
	Queries                map[string]*WorkflowQuery
	ScheduledTime          *timestamppb.Timestamp
	StartedTime            *timestamppb.Timestamp
}

// PollActivityTaskQueueRequest is a long-poll for the next activity task.
type PollActivityTaskQueueRequest struct {
	Namespace                 string
	TaskQueue                 *TaskQueue
	Identity                  string
	TaskQueueMetadata         *TaskQueueMetadata
	WorkerVersionCapabilities *WorkerVersionCapabilities
}

// PollActivityTaskQueueResponse delivers an activity task, or zero values
// when the poll timed out without work.
type PollActivityTaskQueueResponse struct {
	TaskToken         []byte
	WorkflowNamespace string
	WorkflowType      *WorkflowType
	WorkflowExecution *WorkflowExecution
	ActivityType      *ActivityType
	ActivityID        string
	Header            *Header
	Input             *Payloads
	HeartbeatDetails  *Payloads
	ScheduledTime     *timestamppb.Timestamp
	StartedTime       *timestamppb.Timestamp
	Attempt           int32
}

// RespondWorkflowTaskCompletedRequest reports the outcome of a workflow
// task: the commands produced, answers to any queries delivered with the
// task, and routing hints for the next task.
type RespondWorkflowTaskCompletedRequest struct {
	TaskToken                  []byte
	Commands                   []*Command
	Identity                   string
	StickyAttributes           *StickyExecutionAttributes
	ReturnNewWorkflowTask      bool
	ForceCreateNewWorkflowTask bool
	WorkerVersionStamp         *WorkerVersionStamp
	Messages                   []*Message
	BinaryChecksum             string
	QueryResults               map[string]*WorkflowQueryResult
	Namespace                  string
	SDKMetadata                *WorkflowTaskCompletedMetadata
	MeteringMetadata           *MeteringMetadata
}

// RespondWorkflowTaskCompletedResponse may carry an eagerly-dispatched next
// workflow task when the completion asked for one.
type RespondWorkflowTaskCompletedResponse struct {
	WorkflowTask        *PollWorkflowTaskQueueResponse
	ActivityTasks       []*PollActivityTaskQueueResponse
	ResetHistoryEventID int64
}

// RespondWorkflowTaskFailedRequest reports that the worker could not
// process a workflow task.
type RespondWorkflowTaskFailedRequest struct {
	TaskToken      []byte
	Cause          WorkflowTaskFailedCause
	Failure        *Failure
	Identity       string
	BinaryChecksum string
	Namespace      string
	Messages       []*Message
	WorkerVersion  *WorkerVersionStamp
}

type RespondWorkflowTaskFailedResponse struct{}

// RespondActivityTaskCompletedRequest reports an activity's result.
type RespondActivityTaskCompletedRequest struct {
	TaskToken     []byte
	Result        *Payloads
	Identity      string
	Namespace     string
	WorkerVersion *WorkerVersionStamp
}

type RespondActivityTaskCompletedResponse struct{}

// RecordActivityTaskHeartbeatRequest keeps a long-running activity's lease
// alive and may carry progress details.
type RecordActivityTaskHeartbeatRequest struct {
	TaskToken []byte
	Details   *Payloads
	Identity  string
	Namespace string
}

// RecordActivityTaskHeartbeatResponse tells the worker whether the
// activity's cancellation has been requested.
type RecordActivityTaskHeartbeatResponse struct {
	CancelRequested bool
}

// RespondActivityTaskCanceledRequest acknowledges an activity cancellation.
type RespondActivityTaskCanceledRequest struct {
	TaskToken     []byte
	Details       *Payloads
	Identity      string
	Namespace     string
	WorkerVersion *WorkerVersionStamp
}

type RespondActivityTaskCanceledResponse struct{}

// RespondActivityTaskFailedRequest reports an activity failure.
// LastHeartbeatDetails is reserved for a future protocol revision and is
// always unset today.
type RespondActivityTaskFailedRequest struct {
	TaskToken            []byte
	Failure              *Failure
	Identity             string
	Namespace            string
	LastHeartbeatDetails *Payloads
	WorkerVersion        *WorkerVersionStamp
}

type RespondActivityTaskFailedResponse struct {
	Failures []*Failure
}

// GetWorkflowExecutionHistoryRequest fetches one page of an execution's
// event history.
type GetWorkflowExecutionHistoryRequest struct {
	Namespace       string
	Execution       *WorkflowExecution
	MaximumPageSize int32
	NextPageToken   []byte
	WaitNewEvent    bool
	SkipArchival    bool
}

type GetWorkflowExecutionHistoryResponse struct {
	History       *History
	NextPageToken []byte
	Archived      bool
}

// RespondQueryTaskCompletedRequest answers a legacy direct query. The
// legacy protocol predates query batching and carries no query id.
type RespondQueryTaskCompletedRequest struct {
	TaskToken     []byte
	CompletedType QueryResultType
	QueryResult   *Payloads
	ErrorMessage  string
	Namespace     string
}

type RespondQueryTaskCompletedResponse struct{}
