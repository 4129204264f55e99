// Package dispatch implements the dispatch engine: the actor that places a
// worker of a streaming job's stage onto a task executor, coordinating
// resource assignment, task submission, status publication, and
// cancellation. See doc.go for an overview.
package dispatch

// MachineDefinition is the resource shape a worker requires: CPU, memory,
// disk, network, and GPU.
type MachineDefinition struct {
	CPUCores    float64
	MemoryMB    int64
	DiskMB      int64
	NetworkMbps int64
	GPUs        int
}

// ScheduleRequest is the immutable input that asks the engine to place one
// worker. Payload carries fields opaque to the engine and handed through to
// the executor via PayloadBuilder.
type ScheduleRequest struct {
	WorkerID   string
	StageNum   int
	MachineDef MachineDefinition
	Payload    map[string]interface{}
}

// Attempt wraps a ScheduleRequest with a 1-based attempt counter and the
// cause of the previous attempt's failure, if any. It is the unit the
// placement pipeline operates on; a retry rebuilds it with Num+1.
type Attempt struct {
	Request     ScheduleRequest
	Num         int
	PrevFailure error

	// id is a per-attempt correlation id, regenerated each time a new
	// Attempt is built. Only the log line that starts the attempt's
	// assignment carries it; the later failure and publish log lines carry
	// the worker id and attempt number but not this id.
	id string
}

func newAttempt(req ScheduleRequest, num int, prevFailure error) Attempt {
	return Attempt{
		Request:     req,
		Num:         num,
		PrevFailure: prevFailure,
		id:          generateAttemptID(),
	}
}

// Retry builds the next attempt for the same request, incrementing Num and
// attaching cause as PrevFailure.
func (a Attempt) Retry(cause error) Attempt {
	return newAttempt(a.Request, a.Num+1, cause)
}

// TaskExecutorID is an opaque identifier of a cluster node capable of
// running a task, produced by the resource cluster's placement function.
type TaskExecutorID string

// TaskExecutorRegistration describes a selected executor: its hostname,
// owning cluster, the ports assigned to the worker, and a resource id the
// job-management plane can correlate back to the cluster's own bookkeeping.
type TaskExecutorRegistration struct {
	Hostname          string
	ClusterID         string
	WorkerPorts       []int
	ResourceID        string
	ClusterResourceID string
}

// CancelRequest identifies a worker to cancel and the hostname currently
// believed to be hosting it.
type CancelRequest struct {
	WorkerID string
	HostName string
}

// WorkerEvent is the closed set of outbound events the engine publishes to
// the job-management plane.
type WorkerEvent interface {
	workerEvent()
}

// WorkerLaunched reports that placement succeeded and the executor accepted
// the task.
type WorkerLaunched struct {
	WorkerID          string
	StageNum          int
	Hostname          string
	ResourceID        string
	ClusterResourceID string
	WorkerPorts       []int
}

func (WorkerLaunched) workerEvent() {}

// WorkerLaunchFailed reports that placement failed terminally.
type WorkerLaunchFailed struct {
	WorkerID   string
	StageNum   int
	CauseString string
}

func (WorkerLaunchFailed) workerEvent() {}
