package apiv1

// Payload is a single serialized value plus its encoding metadata. The
// worker client never inspects payload contents.
type Payload struct {
	Metadata map[string][]byte
	Data     []byte
}

// Payloads is an ordered list of payloads, used wherever the wire contract
// allows multiple values (activity results, heartbeat details, query
// answers).
type Payloads struct {
	Payloads []*Payload
}

// Header carries request-scoped metadata alongside payloads, such as
// tracing context propagated by interceptors.
type Header struct {
	Fields map[string]*Payload
}

// WorkflowExecution identifies a single run of a workflow. An empty RunID
// addresses the latest run of the workflow.
type WorkflowExecution struct {
	WorkflowID string
	RunID      string
}

// WorkflowType names the workflow definition an execution was started from.
type WorkflowType struct {
	Name string
}

// ActivityType names the activity definition a task invokes.
type ActivityType struct {
	Name string
}

// WorkerVersionCapabilities is sent on poll requests when the server
// supports build-id based versioning. It declares the worker's build id and
// whether the worker opts into versioned task routing.
type WorkerVersionCapabilities struct {
	BuildID       string
	UseVersioning bool
}

// WorkerVersionStamp is attached to task completions when the server
// supports build-id based versioning. BundleID is reserved and always empty
// for now.
type WorkerVersionStamp struct {
	BuildID       string
	BundleID      string
	UseVersioning bool
}

// MeteringMetadata is usage-accounting information the worker reports with
// workflow task completions. Opaque to this layer.
type MeteringMetadata struct {
	NonfirstLocalActivityExecutionAttempts uint32
}

// WorkflowTaskCompletedMetadata carries SDK-internal flags recorded with a
// workflow task completion so that replays can detect which internal
// behaviors were in use.
type WorkflowTaskCompletedMetadata struct {
	CoreUsedFlags []uint32
	LangUsedFlags []uint32
	SDKName       string
	SDKVersion    string
}

// Message is an inter-SDK protocol message. Workers that do not speak the
// message protocol always send an empty message list.
type Message struct {
	ID                 string
	ProtocolInstanceID string
	Body               *Payload
}
