package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	apiv1 "github.com/loomworks/loom/internal/api/v1"
	"github.com/loomworks/loom/internal/transport"
	"github.com/loomworks/loom/internal/worker"
)

const (
	clientName    = "loom-go-worker"
	clientVersion = "0.1.0"

	defaultAddress   = "localhost:7233"
	defaultNamespace = "default"
	defaultTaskQueue = "default"
)

var version = flag.Bool("version", false, "Print version and exit")

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("Loom Worker v%s\n", clientVersion)
		os.Exit(0)
	}

	// Read configuration from environment
	address := getEnv("LOOM_ADDRESS", defaultAddress)
	namespace := getEnv("LOOM_NAMESPACE", defaultNamespace)
	taskQueue := getEnv("LOOM_TASK_QUEUE", defaultTaskQueue)
	buildID := getEnv("LOOM_WORKER_BUILD_ID", "")
	useVersioning := getEnvBool("LOOM_USE_VERSIONING", false)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("worker starting",
		"address", address,
		"namespace", namespace,
		"task_queue", taskQueue,
		"build_id", buildID,
		"use_versioning", useVersioning)

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Error("failed to create connection", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := transport.NewGRPC(conn)
	if err := svc.RefreshCapabilities(ctx); err != nil {
		logger.Warn("system info handshake failed, assuming no optional capabilities", "error", err)
	}

	client := worker.NewClient(&worker.Config{
		Service: transport.NewRetrying(&transport.RetryingConfig{
			Service: svc,
			Headers: map[string]string{
				"client-name":    clientName,
				"client-version": clientVersion,
			},
			Logger: logger,
		}),
		Namespace:     namespace,
		WorkerBuildID: buildID,
		UseVersioning: useVersioning,
		Logger:        logger,
	})

	logger.Info("polling for workflow tasks", "identity", client.Identity())

	for {
		task, err := client.PollWorkflowTask(ctx, &apiv1.TaskQueue{
			Name: taskQueue,
			Kind: apiv1.TaskQueueKindNormal,
		})
		if ctx.Err() != nil {
			logger.Info("shutting down")
			return
		}
		if err != nil {
			logger.Error("poll failed", "code", status.Code(err), "error", err)
			continue
		}
		if len(task.TaskToken) == 0 {
			// Poll window elapsed without work.
			continue
		}

		logger.Info("received workflow task",
			"task_token", worker.NewTaskToken(task.TaskToken),
			"attempt", task.Attempt,
			"queries", len(task.Queries))

		// This binary registers no workflow executor; hand the task back so
		// the service reschedules it for a full worker.
		if _, err := client.FailWorkflowTask(ctx, worker.NewTaskToken(task.TaskToken),
			apiv1.WorkflowTaskFailedCauseWorkflowWorkerUnhandledFailure,
			&apiv1.Failure{Message: "no workflow executor registered", Source: clientName}); err != nil {
			logger.Error("failed to return workflow task", "code", status.Code(err), "error", err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
