package apiv1

// CommandType tags the kind of state transition a workflow task completion
// asks the server to apply.
type CommandType int32

const (
	CommandTypeUnspecified               CommandType = 0
	CommandTypeScheduleActivityTask      CommandType = 1
	CommandTypeRequestCancelActivityTask CommandType = 2
	CommandTypeStartTimer                CommandType = 3
	CommandTypeCompleteWorkflowExecution CommandType = 4
	CommandTypeFailWorkflowExecution     CommandType = 5
	CommandTypeCancelTimer               CommandType = 6
	CommandTypeCancelWorkflowExecution   CommandType = 7
	CommandTypeRecordMarker              CommandType = 8
	CommandTypeContinueAsNew             CommandType = 9
	CommandTypeStartChildWorkflow        CommandType = 10
	CommandTypeSignalExternalWorkflow    CommandType = 11
	CommandTypeUpsertSearchAttributes    CommandType = 12
	CommandTypeModifyWorkflowProperties  CommandType = 13
)

// Command is one entry in the ordered command list of a workflow task
// completion. Attributes are command-type specific and opaque here.
type Command struct {
	CommandType CommandType
	Attributes  *Payload
}
