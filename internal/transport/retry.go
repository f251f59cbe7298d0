package transport

import (
	"context"
	"log/slog"
	"math"
	"time"

	"google.golang.org/grpc/metadata"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
)

const (
	defaultInitialInterval    = 100 * time.Millisecond
	defaultMaxInterval        = 5 * time.Second
	defaultBackoffCoefficient = 2.0
	defaultMaxAttempts        = 5
)

// RetryPolicy controls the backoff applied between attempts of a single
// call. Zero values are replaced with defaults.
type RetryPolicy struct {
	InitialInterval    time.Duration
	MaxInterval        time.Duration
	BackoffCoefficient float64
	MaxAttempts        int
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.InitialInterval <= 0 {
		p.InitialInterval = defaultInitialInterval
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = defaultMaxInterval
	}
	if p.BackoffCoefficient <= 1 {
		p.BackoffCoefficient = defaultBackoffCoefficient
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	return p
}

// RetryingConfig configures a Retrying handle.
type RetryingConfig struct {
	Service WorkflowService
	Policy  RetryPolicy
	// Headers are attached to the outgoing metadata of every call, merged
	// with whatever the caller's context already carries. Typically the
	// client name and version.
	Headers map[string]string
	Logger  *slog.Logger
}

// Retrying wraps a WorkflowService with per-call retries of transient
// status codes. Deadline expiry and cancellation are never retried, so
// long-poll calls end with their poll window regardless of policy.
type Retrying struct {
	service WorkflowService
	policy  RetryPolicy
	headers metadata.MD
	logger  *slog.Logger
}

// NewRetrying builds a retrying handle over cfg.Service.
func NewRetrying(cfg *RetryingConfig) *Retrying {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var md metadata.MD
	if len(cfg.Headers) > 0 {
		md = metadata.New(cfg.Headers)
	}
	return &Retrying{
		service: cfg.Service,
		policy:  cfg.Policy.withDefaults(),
		headers: md,
		logger:  logger,
	}
}

func (r *Retrying) outgoing(ctx context.Context) context.Context {
	if len(r.headers) == 0 {
		return ctx
	}
	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		return metadata.NewOutgoingContext(ctx, metadata.Join(md, r.headers))
	}
	return metadata.NewOutgoingContext(ctx, r.headers)
}

// invoke runs one call under the retry policy. The final attempt's error is
// returned unchanged so callers see the exact transport status.
func invoke[Req, Resp any](
	ctx context.Context,
	r *Retrying,
	op string,
	req Req,
	fn func(context.Context, Req) (Resp, error),
) (Resp, error) {
	ctx = r.outgoing(ctx)
	delay := r.policy.InitialInterval

	var resp Resp
	var err error
	for attempt := 1; ; attempt++ {
		resp, err = fn(ctx, req)
		if err == nil || !IsRetryable(err) || attempt >= r.policy.MaxAttempts {
			return resp, err
		}

		r.logger.Warn("retrying call",
			"operation", op,
			"attempt", attempt,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return resp, err
		case <-time.After(delay):
		}

		delay = time.Duration(math.Min(
			float64(delay)*r.policy.BackoffCoefficient,
			float64(r.policy.MaxInterval),
		))
	}
}

func (r *Retrying) PollWorkflowTaskQueue(ctx context.Context, req *apiv1.PollWorkflowTaskQueueRequest) (*apiv1.PollWorkflowTaskQueueResponse, error) {
	return invoke(ctx, r, "PollWorkflowTaskQueue", req, r.service.PollWorkflowTaskQueue)
}

func (r *Retrying) PollActivityTaskQueue(ctx context.Context, req *apiv1.PollActivityTaskQueueRequest) (*apiv1.PollActivityTaskQueueResponse, error) {
	return invoke(ctx, r, "PollActivityTaskQueue", req, r.service.PollActivityTaskQueue)
}

func (r *Retrying) RespondWorkflowTaskCompleted(ctx context.Context, req *apiv1.RespondWorkflowTaskCompletedRequest) (*apiv1.RespondWorkflowTaskCompletedResponse, error) {
	return invoke(ctx, r, "RespondWorkflowTaskCompleted", req, r.service.RespondWorkflowTaskCompleted)
}

func (r *Retrying) RespondWorkflowTaskFailed(ctx context.Context, req *apiv1.RespondWorkflowTaskFailedRequest) (*apiv1.RespondWorkflowTaskFailedResponse, error) {
	return invoke(ctx, r, "RespondWorkflowTaskFailed", req, r.service.RespondWorkflowTaskFailed)
}

func (r *Retrying) RespondActivityTaskCompleted(ctx context.Context, req *apiv1.RespondActivityTaskCompletedRequest) (*apiv1.RespondActivityTaskCompletedResponse, error) {
	return invoke(ctx, r, "RespondActivityTaskCompleted", req, r.service.RespondActivityTaskCompleted)
}

func (r *Retrying) RecordActivityTaskHeartbeat(ctx context.Context, req *apiv1.RecordActivityTaskHeartbeatRequest) (*apiv1.RecordActivityTaskHeartbeatResponse, error) {
	return invoke(ctx, r, "RecordActivityTaskHeartbeat", req, r.service.RecordActivityTaskHeartbeat)
}

func (r *Retrying) RespondActivityTaskCanceled(ctx context.Context, req *apiv1.RespondActivityTaskCanceledRequest) (*apiv1.RespondActivityTaskCanceledResponse, error) {
	return invoke(ctx, r, "RespondActivityTaskCanceled", req, r.service.RespondActivityTaskCanceled)
}

func (r *Retrying) RespondActivityTaskFailed(ctx context.Context, req *apiv1.RespondActivityTaskFailedRequest) (*apiv1.RespondActivityTaskFailedResponse, error) {
	return invoke(ctx, r, "RespondActivityTaskFailed", req, r.service.RespondActivityTaskFailed)
}

func (r *Retrying) GetWorkflowExecutionHistory(ctx context.Context, req *apiv1.GetWorkflowExecutionHistoryRequest) (*apiv1.GetWorkflowExecutionHistoryResponse, error) {
	return invoke(ctx, r, "GetWorkflowExecutionHistory", req, r.service.GetWorkflowExecutionHistory)
}

func (r *Retrying) RespondQueryTaskCompleted(ctx context.Context, req *apiv1.RespondQueryTaskCompletedRequest) (*apiv1.RespondQueryTaskCompletedResponse, error) {
	return invoke(ctx, r, "RespondQueryTaskCompleted", req, r.service.RespondQueryTaskCompleted)
}

// Capabilities returns the wrapped service's cached capability descriptor.
func (r *Retrying) Capabilities() *apiv1.Capabilities {
	return r.service.Capabilities()
}

var _ WorkflowService = (*Retrying)(nil)
