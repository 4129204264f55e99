// Package config loads dispatchd's runtime configuration: command-line
// flags for the daemon's own knobs, plus a JSON file describing the
// static set of task executors to run against (until a dynamic cluster
// source replaces it).
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/common"
)

// Flags holds the command-line surface of dispatchd. Mirrors the
// teacher scheduler binary's flat flag.String/flag.Int style rather than
// a structured flag package.
type Flags struct {
	AdminAddr              string
	ClusterFile            string
	AssignRetryDelay       time.Duration
	MaxAssignAttempts      int
	CancelRetryDelay       time.Duration
	MaxCancelAttempts      int
	MailboxSize            int
	RegistrationCacheBytes int64
	DefaultEnvVars         string
}

// RegisterFlags binds Flags to fs (typically flag.CommandLine) and
// returns the struct flag.Parse will populate.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.AdminAddr, "admin_addr", "localhost:9091", "bind address for the admin/stats http server")
	fs.StringVar(&f.ClusterFile, "cluster_file", "", "path to a JSON file listing the static task executors to run against")
	fs.DurationVar(&f.AssignRetryDelay, "assign_retry_delay", 60*time.Second, "delay before retrying a failed assignment")
	fs.IntVar(&f.MaxAssignAttempts, "max_assign_attempts", 0, "maximum assignment attempts before giving up, 0 for unbounded")
	fs.DurationVar(&f.CancelRetryDelay, "cancel_retry_delay", 5*time.Second, "delay before retrying a failed cancellation")
	fs.IntVar(&f.MaxCancelAttempts, "max_cancel_attempts", 2, "maximum cancellation attempts before giving up")
	fs.IntVar(&f.MailboxSize, "mailbox_size", 256, "buffer size of the dispatch engine's mailbox channel")
	fs.Int64Var(&f.RegistrationCacheBytes, "registration_cache_bytes", 8<<20, "max bytes for the task executor registration cache")
	fs.StringVar(&f.DefaultEnvVars, "default_env_vars", "", "comma-separated key=value pairs merged into every submitted task's environment")
	return f
}

// DefaultEnvVarsMap parses DefaultEnvVars into a map, empty if unset.
func (f *Flags) DefaultEnvVarsMap() map[string]string {
	return common.SplitCommaSepToMap(f.DefaultEnvVars)
}

// EngineConfig converts the parsed flags into a dispatch.Config.
func (f *Flags) EngineConfig() dispatch.Config {
	return dispatch.Config{
		AssignRetryDelay:  f.AssignRetryDelay,
		MaxAssignAttempts: f.MaxAssignAttempts,
		CancelRetryDelay:  f.CancelRetryDelay,
		MaxCancelAttempts: f.MaxCancelAttempts,
		MailboxSize:       f.MailboxSize,
	}
}

// StaticExecutor describes one task executor entry in a cluster file.
type StaticExecutor struct {
	ID                string   `json:"id"`
	Hostname          string   `json:"hostname"`
	ClusterID         string   `json:"cluster_id"`
	WorkerPorts       []int    `json:"worker_ports"`
	ResourceID        string   `json:"resource_id"`
	ClusterResourceID string   `json:"cluster_resource_id"`
	CPUCores          float64  `json:"cpu_cores"`
	MemoryMB          int64    `json:"memory_mb"`
	DiskMB            int64    `json:"disk_mb"`
	NetworkMbps       int64    `json:"network_mbps"`
	GPUs              int      `json:"gpus"`
}

// LoadClusterFile reads and parses a static cluster file. An empty path
// yields an empty cluster, useful for local development against fakes.
func LoadClusterFile(path string) ([]StaticExecutor, error) {
	if path == "" {
		return nil, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cluster file %s: %v", path, err)
	}
	var executors []StaticExecutor
	if err := json.Unmarshal(data, &executors); err != nil {
		return nil, fmt.Errorf("parsing cluster file %s: %v", path, err)
	}
	return executors, nil
}

// Registration converts a StaticExecutor into the registration and
// capacity types the cluster package works with.
func (e StaticExecutor) Registration() dispatch.TaskExecutorRegistration {
	return dispatch.TaskExecutorRegistration{
		Hostname:          e.Hostname,
		ClusterID:         e.ClusterID,
		WorkerPorts:       e.WorkerPorts,
		ResourceID:        e.ResourceID,
		ClusterResourceID: e.ClusterResourceID,
	}
}

// Capacity converts a StaticExecutor into a dispatch.MachineDefinition.
func (e StaticExecutor) Capacity() dispatch.MachineDefinition {
	return dispatch.MachineDefinition{
		CPUCores:    e.CPUCores,
		MemoryMB:    e.MemoryMB,
		DiskMB:      e.DiskMB,
		NetworkMbps: e.NetworkMbps,
		GPUs:        e.GPUs,
	}
}
