package apiv1

// Capabilities is the server capability descriptor returned by the system
// info handshake and cached by the transport. Workers consult it to pick
// the wire-format variant of each outgoing request.
//
// A nil descriptor is treated everywhere as "all capabilities disabled",
// which matches servers that predate the handshake.
type Capabilities struct {
	// SignalAndQueryHeader indicates headers are propagated on signal and
	// query requests.
	SignalAndQueryHeader bool
	// InternalErrorDifferentiation indicates the server distinguishes
	// internal errors from user-visible ones in returned statuses.
	InternalErrorDifferentiation bool
	// ActivityFailureIncludeHeartbeat indicates activity failures carry the
	// last recorded heartbeat details.
	ActivityFailureIncludeHeartbeat bool
	// EncodedFailureAttributes indicates failures may carry encoded
	// attributes instead of plain fields.
	EncodedFailureAttributes bool
	// BuildIDBasedVersioning indicates workers are tracked and routed by an
	// explicit build identifier rather than a binary checksum string.
	BuildIDBasedVersioning bool
	// EagerWorkflowStart indicates the server can hand the first workflow
	// task back on the start-workflow response.
	EagerWorkflowStart bool
	// SDKMetadata indicates the server accepts SDK metadata blocks on
	// workflow task completions.
	SDKMetadata bool
}

// GetSystemInfoRequest asks the service for its version and capability
// descriptor. It carries no fields.
type GetSystemInfoRequest struct{}

// GetSystemInfoResponse is the system info handshake result.
type GetSystemInfoResponse struct {
	ServerVersion string
	Capabilities  *Capabilities
}
