package apiv1

// WorkflowTaskFailedCause reports why a worker gave up on a workflow task.
type WorkflowTaskFailedCause int32

const (
	WorkflowTaskFailedCauseUnspecified                    WorkflowTaskFailedCause = 0
	WorkflowTaskFailedCauseUnhandledCommand               WorkflowTaskFailedCause = 1
	WorkflowTaskFailedCauseBadScheduleActivityAttributes  WorkflowTaskFailedCause = 2
	WorkflowTaskFailedCauseWorkflowWorkerUnhandledFailure WorkflowTaskFailedCause = 3
	WorkflowTaskFailedCauseNonDeterministicError          WorkflowTaskFailedCause = 4
	WorkflowTaskFailedCauseResetWorkflow                  WorkflowTaskFailedCause = 5
)

func (c WorkflowTaskFailedCause) String() string {
	switch c {
	case WorkflowTaskFailedCauseUnhandledCommand:
		return "UnhandledCommand"
	case WorkflowTaskFailedCauseBadScheduleActivityAttributes:
		return "BadScheduleActivityAttributes"
	case WorkflowTaskFailedCauseWorkflowWorkerUnhandledFailure:
		return "WorkflowWorkerUnhandledFailure"
	case WorkflowTaskFailedCauseNonDeterministicError:
		return "NonDeterministicError"
	case WorkflowTaskFailedCauseResetWorkflow:
		return "ResetWorkflow"
	default:
		return "Unspecified"
	}
}
