package transport

import (
	"context"
	"encoding/json"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
)

// servicePath is the fully qualified name of the worker-facing gRPC service.
const servicePath = "/loom.api.workflowservice.v1.WorkflowService/"

// jsonCodec carries the apiv1 records over gRPC using the json content
// subtype, which the service accepts alongside proto.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// GRPC is a WorkflowService backed by a gRPC client connection. It also owns
// the capability cache: RefreshCapabilities runs the system info handshake
// once and every later call reads the cached descriptor.
type GRPC struct {
	conn *grpc.ClientConn

	mu   sync.RWMutex
	caps *apiv1.Capabilities
}

var _ WorkflowService = (*GRPC)(nil)

// NewGRPC wraps an established client connection. The connection is owned by
// the caller and must outlive the handle.
func NewGRPC(conn *grpc.ClientConn) *GRPC {
	return &GRPC{conn: conn}
}

func (g *GRPC) call(ctx context.Context, method string, req, resp any) error {
	return g.conn.Invoke(ctx, servicePath+method, req, resp, grpc.CallContentSubtype(jsonCodec{}.Name()))
}

// RefreshCapabilities performs the system info handshake and caches the
// returned capability descriptor. Until the first successful refresh,
// Capabilities returns nil and callers fall back to pre-handshake behavior.
func (g *GRPC) RefreshCapabilities(ctx context.Context) error {
	var resp apiv1.GetSystemInfoResponse
	if err := g.call(ctx, "GetSystemInfo", &apiv1.GetSystemInfoRequest{}, &resp); err != nil {
		return err
	}
	g.mu.Lock()
	g.caps = resp.Capabilities
	g.mu.Unlock()
	return nil
}

func (g *GRPC) Capabilities() *apiv1.Capabilities {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.caps
}

func (g *GRPC) PollWorkflowTaskQueue(ctx context.Context, req *apiv1.PollWorkflowTaskQueueRequest) (*apiv1.PollWorkflowTaskQueueResponse, error) {
	var resp apiv1.PollWorkflowTaskQueueResponse
	if err := g.call(ctx, "PollWorkflowTaskQueue", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) PollActivityTaskQueue(ctx context.Context, req *apiv1.PollActivityTaskQueueRequest) (*apiv1.PollActivityTaskQueueResponse, error) {
	var resp apiv1.PollActivityTaskQueueResponse
	if err := g.call(ctx, "PollActivityTaskQueue", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondWorkflowTaskCompleted(ctx context.Context, req *apiv1.RespondWorkflowTaskCompletedRequest) (*apiv1.RespondWorkflowTaskCompletedResponse, error) {
	var resp apiv1.RespondWorkflowTaskCompletedResponse
	if err := g.call(ctx, "RespondWorkflowTaskCompleted", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondWorkflowTaskFailed(ctx context.Context, req *apiv1.RespondWorkflowTaskFailedRequest) (*apiv1.RespondWorkflowTaskFailedResponse, error) {
	var resp apiv1.RespondWorkflowTaskFailedResponse
	if err := g.call(ctx, "RespondWorkflowTaskFailed", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondActivityTaskCompleted(ctx context.Context, req *apiv1.RespondActivityTaskCompletedRequest) (*apiv1.RespondActivityTaskCompletedResponse, error) {
	var resp apiv1.RespondActivityTaskCompletedResponse
	if err := g.call(ctx, "RespondActivityTaskCompleted", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RecordActivityTaskHeartbeat(ctx context.Context, req *apiv1.RecordActivityTaskHeartbeatRequest) (*apiv1.RecordActivityTaskHeartbeatResponse, error) {
	var resp apiv1.RecordActivityTaskHeartbeatResponse
	if err := g.call(ctx, "RecordActivityTaskHeartbeat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondActivityTaskCanceled(ctx context.Context, req *apiv1.RespondActivityTaskCanceledRequest) (*apiv1.RespondActivityTaskCanceledResponse, error) {
	var resp apiv1.RespondActivityTaskCanceledResponse
	if err := g.call(ctx, "RespondActivityTaskCanceled", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondActivityTaskFailed(ctx context.Context, req *apiv1.RespondActivityTaskFailedRequest) (*apiv1.RespondActivityTaskFailedResponse, error) {
	var resp apiv1.RespondActivityTaskFailedResponse
	if err := g.call(ctx, "RespondActivityTaskFailed", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) GetWorkflowExecutionHistory(ctx context.Context, req *apiv1.GetWorkflowExecutionHistoryRequest) (*apiv1.GetWorkflowExecutionHistoryResponse, error) {
	var resp apiv1.GetWorkflowExecutionHistoryResponse
	if err := g.call(ctx, "GetWorkflowExecutionHistory", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *GRPC) RespondQueryTaskCompleted(ctx context.Context, req *apiv1.RespondQueryTaskCompletedRequest) (*apiv1.RespondQueryTaskCompletedResponse, error) {
	var resp apiv1.RespondQueryTaskCompletedResponse
	if err := g.call(ctx, "RespondQueryTaskCompleted", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
