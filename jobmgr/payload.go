package jobmgr

import (
	"time"

	"github.com/scootdev/dispatch/dispatch"
)

// TaskPayload is the JSON document handed to a task executor's submitTask
// RPC. Shaped after the teacher runner's Command: an argv plus environment
// and an optional timeout, with the worker identity and stage number the
// executor needs to report back against.
type TaskPayload struct {
	WorkerID   string            `json:"worker_id"`
	StageNum   int               `json:"stage_num"`
	Argv       []string          `json:"argv"`
	EnvVars    map[string]string `json:"env_vars,omitempty"`
	Timeout    time.Duration     `json:"timeout,omitempty"`
	SnapshotID string            `json:"snapshot_id,omitempty"`

	ClusterResourceID string `json:"cluster_resource_id"`
}

// CommandPayloadBuilder implements dispatch.PayloadBuilder, pulling the
// process to run out of a ScheduleRequest's generic Payload map. Keys not
// present use their zero value, matching the teacher's NewCommand
// tolerance for empty env/timeout/snapshot. DefaultEnv is merged under
// any per-request env_vars, letting an operator set fleet-wide defaults
// (e.g. via dispatchd's -default_env_vars flag) without every caller
// having to repeat them.
type CommandPayloadBuilder struct {
	DefaultEnv map[string]string
}

func (b CommandPayloadBuilder) Build(req dispatch.ScheduleRequest, reg dispatch.TaskExecutorRegistration) (dispatch.ExecutorPayload, error) {
	p := TaskPayload{
		WorkerID:          req.WorkerID,
		StageNum:          req.StageNum,
		ClusterResourceID: reg.ClusterResourceID,
	}

	if argv, ok := req.Payload["argv"].([]string); ok {
		p.Argv = argv
	}
	if timeout, ok := req.Payload["timeout"].(time.Duration); ok {
		p.Timeout = timeout
	}
	if snapshotID, ok := req.Payload["snapshot_id"].(string); ok {
		p.SnapshotID = snapshotID
	}

	env := map[string]string{}
	for k, v := range b.DefaultEnv {
		env[k] = v
	}
	if requested, ok := req.Payload["env_vars"].(map[string]string); ok {
		for k, v := range requested {
			env[k] = v
		}
	}
	if len(env) > 0 {
		p.EnvVars = env
	}

	return p, nil
}

var _ dispatch.PayloadBuilder = CommandPayloadBuilder{}
