package worker

import (
	"context"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
	"github.com/loomworks/loom/internal/transport"
)

// mockService implements transport.WorkflowService for tests. Each
// operation records its request and call count; set the matching func to
// control the response, otherwise an empty response is returned.
type mockService struct {
	caps *apiv1.Capabilities

	pollWorkflowFunc     func(*apiv1.PollWorkflowTaskQueueRequest) (*apiv1.PollWorkflowTaskQueueResponse, error)
	pollActivityFunc     func(*apiv1.PollActivityTaskQueueRequest) (*apiv1.PollActivityTaskQueueResponse, error)
	completeWorkflowFunc func(*apiv1.RespondWorkflowTaskCompletedRequest) (*apiv1.RespondWorkflowTaskCompletedResponse, error)
	failWorkflowFunc     func(*apiv1.RespondWorkflowTaskFailedRequest) (*apiv1.RespondWorkflowTaskFailedResponse, error)
	completeActivityFunc func(*apiv1.RespondActivityTaskCompletedRequest) (*apiv1.RespondActivityTaskCompletedResponse, error)
	heartbeatFunc        func(*apiv1.RecordActivityTaskHeartbeatRequest) (*apiv1.RecordActivityTaskHeartbeatResponse, error)
	cancelActivityFunc   func(*apiv1.RespondActivityTaskCanceledRequest) (*apiv1.RespondActivityTaskCanceledResponse, error)
	failActivityFunc     func(*apiv1.RespondActivityTaskFailedRequest) (*apiv1.RespondActivityTaskFailedResponse, error)
	getHistoryFunc       func(*apiv1.GetWorkflowExecutionHistoryRequest) (*apiv1.GetWorkflowExecutionHistoryResponse, error)
	respondQueryFunc     func(*apiv1.RespondQueryTaskCompletedRequest) (*apiv1.RespondQueryTaskCompletedResponse, error)

	pollWorkflowReq     *apiv1.PollWorkflowTaskQueueRequest
	pollActivityReq     *apiv1.PollActivityTaskQueueRequest
	completeWorkflowReq *apiv1.RespondWorkflowTaskCompletedRequest
	failWorkflowReq     *apiv1.RespondWorkflowTaskFailedRequest
	completeActivityReq *apiv1.RespondActivityTaskCompletedRequest
	heartbeatReq        *apiv1.RecordActivityTaskHeartbeatRequest
	cancelActivityReq   *apiv1.RespondActivityTaskCanceledRequest
	failActivityReq     *apiv1.RespondActivityTaskFailedRequest
	getHistoryReq       *apiv1.GetWorkflowExecutionHistoryRequest
	respondQueryReq     *apiv1.RespondQueryTaskCompletedRequest

	calls int
}

var _ transport.WorkflowService = (*mockService)(nil)

func (m *mockService) PollWorkflowTaskQueue(_ context.Context, req *apiv1.PollWorkflowTaskQueueRequest) (*apiv1.PollWorkflowTaskQueueResponse, error) {
	m.calls++
	m.pollWorkflowReq = req
	if m.pollWorkflowFunc != nil {
		return m.pollWorkflowFunc(req)
	}
	return &apiv1.PollWorkflowTaskQueueResponse{}, nil
}

func (m *mockService) PollActivityTaskQueue(_ context.Context, req *apiv1.PollActivityTaskQueueRequest) (*apiv1.PollActivityTaskQueueResponse, error) {
	m.calls++
	m.pollActivityReq = req
	if m.pollActivityFunc != nil {
		return m.pollActivityFunc(req)
	}
	return &apiv1.PollActivityTaskQueueResponse{}, nil
}

func (m *mockService) RespondWorkflowTaskCompleted(_ context.Context, req *apiv1.RespondWorkflowTaskCompletedRequest) (*apiv1.RespondWorkflowTaskCompletedResponse, error) {
	m.calls++
	m.completeWorkflowReq = req
	if m.completeWorkflowFunc != nil {
		return m.completeWorkflowFunc(req)
	}
	return &apiv1.RespondWorkflowTaskCompletedResponse{}, nil
}

func (m *mockService) RespondWorkflowTaskFailed(_ context.Context, req *apiv1.RespondWorkflowTaskFailedRequest) (*apiv1.RespondWorkflowTaskFailedResponse, error) {
	m.calls++
	m.failWorkflowReq = req
	if m.failWorkflowFunc != nil {
		return m.failWorkflowFunc(req)
	}
	return &apiv1.RespondWorkflowTaskFailedResponse{}, nil
}

func (m *mockService) RespondActivityTaskCompleted(_ context.Context, req *apiv1.RespondActivityTaskCompletedRequest) (*apiv1.RespondActivityTaskCompletedResponse, error) {
	m.calls++
	m.completeActivityReq = req
	if m.completeActivityFunc != nil {
		return m.completeActivityFunc(req)
	}
	return &apiv1.RespondActivityTaskCompletedResponse{}, nil
}

func (m *mockService) RecordActivityTaskHeartbeat(_ context.Context, req *apiv1.RecordActivityTaskHeartbeatRequest) (*apiv1.RecordActivityTaskHeartbeatResponse, error) {
	m.calls++
	m.heartbeatReq = req
	if m.heartbeatFunc != nil {
		return m.heartbeatFunc(req)
	}
	return &apiv1.RecordActivityTaskHeartbeatResponse{}, nil
}

func (m *mockService) RespondActivityTaskCanceled(_ context.Context, req *apiv1.RespondActivityTaskCanceledRequest) (*apiv1.RespondActivityTaskCanceledResponse, error) {
	m.calls++
	m.cancelActivityReq = req
	if m.cancelActivityFunc != nil {
		return m.cancelActivityFunc(req)
	}
	return &apiv1.RespondActivityTaskCanceledResponse{}, nil
}

func (m *mockService) RespondActivityTaskFailed(_ context.Context, req *apiv1.RespondActivityTaskFailedRequest) (*apiv1.RespondActivityTaskFailedResponse, error) {
	m.calls++
	m.failActivityReq = req
	if m.failActivityFunc != nil {
		return m.failActivityFunc(req)
	}
	return &apiv1.RespondActivityTaskFailedResponse{}, nil
}

func (m *mockService) GetWorkflowExecutionHistory(_ context.Context, req *apiv1.GetWorkflowExecutionHistoryRequest) (*apiv1.GetWorkflowExecutionHistoryResponse, error) {
	m.calls++
	m.getHistoryReq = req
	if m.getHistoryFunc != nil {
		return m.getHistoryFunc(req)
	}
	return &apiv1.GetWorkflowExecutionHistoryResponse{}, nil
}

func (m *mockService) RespondQueryTaskCompleted(_ context.Context, req *apiv1.RespondQueryTaskCompletedRequest) (*apiv1.RespondQueryTaskCompletedResponse, error) {
	m.calls++
	m.respondQueryReq = req
	if m.respondQueryFunc != nil {
		return m.respondQueryFunc(req)
	}
	return &apiv1.RespondQueryTaskCompletedResponse{}, nil
}

func (m *mockService) Capabilities() *apiv1.Capabilities {
	return m.caps
}
