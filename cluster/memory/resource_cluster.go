// Package memory provides an in-memory dispatch.ResourceCluster test
// double: executors are added and removed directly by a test rather than
// discovered over the network, and assignment/lookup failures can be
// injected on demand.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/scootdev/dispatch/dispatch"
)

type entry struct {
	reg      dispatch.TaskExecutorRegistration
	capacity dispatch.MachineDefinition
	gateway  dispatch.Gateway
}

// Cluster is a goroutine-safe, in-memory dispatch.ResourceCluster.
type Cluster struct {
	mu        sync.Mutex
	executors map[dispatch.TaskExecutorID]entry
	assignErr error
}

// NewCluster returns an empty Cluster; add executors with Add before using
// it as a placement target.
func NewCluster() *Cluster {
	return &Cluster{executors: make(map[dispatch.TaskExecutorID]entry)}
}

// Add registers an executor with the given free capacity and the Gateway
// that should be returned for it.
func (c *Cluster) Add(id dispatch.TaskExecutorID, reg dispatch.TaskExecutorRegistration, capacity dispatch.MachineDefinition, gw dispatch.Gateway) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executors[id] = entry{reg: reg, capacity: capacity, gateway: gw}
}

// Remove deregisters an executor, simulating it leaving the cluster.
func (c *Cluster) Remove(id dispatch.TaskExecutorID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.executors, id)
}

// SetAssignError makes every subsequent GetTaskExecutorFor call fail with
// err until cleared with SetAssignError(nil). Used to exercise the
// engine's fixed-delay assignment retry.
func (c *Cluster) SetAssignError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assignErr = err
}

func (c *Cluster) GetTaskExecutorFor(ctx context.Context, def dispatch.MachineDefinition, workerID string) (dispatch.TaskExecutorID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.assignErr != nil {
		return "", c.assignErr
	}
	for id, e := range c.executors {
		if fits(e.capacity, def) {
			return id, nil
		}
	}
	return "", errors.Errorf("no executor with capacity for %+v", def)
}

func (c *Cluster) GetTaskExecutorGateway(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.Gateway, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.executors[id]
	if !ok {
		return nil, errors.Errorf("executor %q is not a member", id)
	}
	return e.gateway, nil
}

func (c *Cluster) GetTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.executors[id]
	if !ok {
		return dispatch.TaskExecutorRegistration{}, errors.Errorf("executor %q is not a member", id)
	}
	return e.reg, nil
}

// GetCurrentTaskExecutorInfo has no cache to bypass here; it is identical
// to GetTaskExecutorInfo.
func (c *Cluster) GetCurrentTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	return c.GetTaskExecutorInfo(ctx, id)
}

func (c *Cluster) GetTaskExecutorInfoByHostname(ctx context.Context, hostname string) (dispatch.TaskExecutorID, dispatch.TaskExecutorRegistration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.executors {
		if e.reg.Hostname == hostname {
			return id, e.reg, nil
		}
	}
	return "", dispatch.TaskExecutorRegistration{}, errors.Errorf("no executor registered under hostname %q", hostname)
}

func fits(have, need dispatch.MachineDefinition) bool {
	return have.CPUCores >= need.CPUCores &&
		have.MemoryMB >= need.MemoryMB &&
		have.DiskMB >= need.DiskMB &&
		have.NetworkMbps >= need.NetworkMbps &&
		have.GPUs >= need.GPUs
}

var _ dispatch.ResourceCluster = (*Cluster)(nil)
