package worker

import "fmt"

// TaskToken is the opaque identifier correlating a polled task with its
// eventual completion, failure, heartbeat or cancellation call. It is a
// value type with explicit construction and extraction so raw byte slices
// can never be confused with tokens across call sites.
type TaskToken struct {
	data []byte
}

// NewTaskToken wraps the token bytes returned by a poll response.
func NewTaskToken(data []byte) TaskToken {
	return TaskToken{data: data}
}

// Bytes extracts the raw token for placement in an outgoing request.
func (t TaskToken) Bytes() []byte {
	return t.data
}

// IsEmpty reports whether the token carries no bytes, which a poll response
// uses to signal "no work before the poll window closed".
func (t TaskToken) IsEmpty() bool {
	return len(t.data) == 0
}

// String renders an abbreviated hex form suitable for logging. Tokens are
// never round-tripped through this representation.
func (t TaskToken) String() string {
	const maxShown = 8
	if len(t.data) <= maxShown {
		return fmt.Sprintf("%x", t.data)
	}
	return fmt.Sprintf("%x…", t.data[:maxShown])
}
