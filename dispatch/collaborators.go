package dispatch

//go:generate mockgen -source=collaborators.go -package=dispatch -destination=collaborators_mock.go

import (
	"context"
	"time"
)

// ResourceCluster is the dispatch engine's view of the compute cluster: it
// turns a resource request into a concrete executor, and resolves an
// executor id or hostname back into the information the engine needs to
// talk to it. Consumers (this package) define the interface; cluster
// provides the implementation.
type ResourceCluster interface {
	// GetTaskExecutorFor selects an executor able to satisfy def for
	// workerID. Returns an error when no executor currently qualifies; the
	// engine classifies any error from this call as AssignmentUnavailable
	// (see errors.go).
	GetTaskExecutorFor(ctx context.Context, def MachineDefinition, workerID string) (TaskExecutorID, error)

	// GetTaskExecutorGateway returns the Gateway used to talk to id.
	GetTaskExecutorGateway(ctx context.Context, id TaskExecutorID) (Gateway, error)

	// GetTaskExecutorInfo returns id's registration. Implementations may
	// serve this from a bounded cache; callers that need the executor's
	// current state (e.g. immediately before publishing an outcome) must
	// use GetCurrentTaskExecutorInfo instead.
	GetTaskExecutorInfo(ctx context.Context, id TaskExecutorID) (TaskExecutorRegistration, error)

	// GetCurrentTaskExecutorInfo returns id's registration read directly
	// from the underlying source, bypassing any cache. The placement
	// pipeline uses this for the pre-publish re-read so a published
	// WorkerLaunched always reflects the executor's current state, per
	// the "current registration as source of truth" invariant.
	GetCurrentTaskExecutorInfo(ctx context.Context, id TaskExecutorID) (TaskExecutorRegistration, error)

	// GetTaskExecutorInfoByHostname resolves hostname to the executor
	// currently registered under it, used by the cancellation pipeline
	// which only has a hostname to go on.
	GetTaskExecutorInfoByHostname(ctx context.Context, hostname string) (TaskExecutorID, TaskExecutorRegistration, error)
}

// ExecutorPayload is the opaque, executor-ready task description produced
// by a PayloadBuilder and consumed by a Gateway's SubmitTask.
type ExecutorPayload interface{}

// PayloadBuilder turns a ScheduleRequest and the registration of the
// executor it was assigned to into the payload the executor's submitTask
// RPC expects. Implementations must be pure: no I/O, no blocking.
type PayloadBuilder interface {
	Build(req ScheduleRequest, reg TaskExecutorRegistration) (ExecutorPayload, error)
}

// Gateway is the dispatch engine's view of a single task executor's RPC
// surface: submit a task, cancel a task.
type Gateway interface {
	SubmitTask(ctx context.Context, payload ExecutorPayload) error
	CancelTask(ctx context.Context, workerID string) error
}

// JobMessageRouter publishes a WorkerEvent to the job-management plane.
// A false return means the event was not durably handed off and should be
// logged and counted as a routing failure; the engine does not retry
// publication itself.
type JobMessageRouter interface {
	RouteWorkerEvent(evt WorkerEvent) bool
}

// Timer schedules action to run once, after d elapses. Real use schedules
// onto the wall clock; tests substitute a virtual clock so retry delays
// don't make the test suite slow. Grounded on stats.StatsTime / StatsTicker,
// the teacher's mockable-clock pattern.
type Timer interface {
	ScheduleOnce(d time.Duration, action func())
}
