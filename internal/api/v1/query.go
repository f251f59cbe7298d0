package apiv1

// QueryResultType tags whether a query was answered or failed.
type QueryResultType int32

const (
	QueryResultTypeUnspecified QueryResultType = 0
	QueryResultTypeAnswered    QueryResultType = 1
	QueryResultTypeFailed      QueryResultType = 2
)

func (t QueryResultType) String() string {
	switch t {
	case QueryResultTypeAnswered:
		return "Answered"
	case QueryResultTypeFailed:
		return "Failed"
	default:
		return "Unspecified"
	}
}

// WorkflowQuery is a query delivered to the worker inside a workflow task.
type WorkflowQuery struct {
	QueryType string
	QueryArgs *Payloads
	Header    *Header
}

// WorkflowQueryResult is the wire form of one query answer inside a
// workflow task completion. The query id travels as the map key, not in
// the record itself.
type WorkflowQueryResult struct {
	ResultType   QueryResultType
	Answer       *Payloads
	ErrorMessage string
}
