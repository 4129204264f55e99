package cluster

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/logging"
)

// GatewayFactory builds the Gateway used to talk to the executor described
// by reg. Concrete dialing lives in the gateway package; ResourceCluster
// only needs the factory shape so it can stay independent of the wire
// protocol.
type GatewayFactory func(reg dispatch.TaskExecutorRegistration) (dispatch.Gateway, error)

// HostnameResolver looks up a registration directly from the executor
// itself, for use when the cluster's push-based membership feed has no
// entry for a hostname the cancellation pipeline needs. httpfallback.Fallback
// implements this.
type HostnameResolver interface {
	Resolve(hostname string) (dispatch.TaskExecutorRegistration, error)
}

// ResourceCluster implements dispatch.ResourceCluster over a Cluster's
// membership view: placement picks the first executor with enough free
// capacity for the request, a simple bin-packing policy appropriate for a
// cluster where executors are roughly homogeneous.
type ResourceCluster struct {
	cl             Cluster
	gatewayFactory GatewayFactory
	fallback       HostnameResolver

	mu           sync.Mutex
	fallbackRegs map[dispatch.TaskExecutorID]dispatch.TaskExecutorRegistration
}

// NewResourceCluster wires a ResourceCluster over cl, dialing executors
// via factory.
func NewResourceCluster(cl Cluster, factory GatewayFactory) *ResourceCluster {
	return &ResourceCluster{
		cl:             cl,
		gatewayFactory: factory,
		fallbackRegs:   make(map[dispatch.TaskExecutorID]dispatch.TaskExecutorRegistration),
	}
}

// WithHostnameFallback sets the resolver used when a hostname has no entry
// in the cluster's own membership view (e.g. the push feed hasn't caught up
// with a newly registered executor). Returns r for chaining at construction
// time.
func (r *ResourceCluster) WithHostnameFallback(fallback HostnameResolver) *ResourceCluster {
	r.fallback = fallback
	return r
}

var _ dispatch.ResourceCluster = (*ResourceCluster)(nil)

func (r *ResourceCluster) GetTaskExecutorFor(ctx context.Context, def dispatch.MachineDefinition, workerID string) (dispatch.TaskExecutorID, error) {
	members, err := r.cl.Members()
	if err != nil {
		return "", errors.Wrap(err, "listing cluster members")
	}
	for _, e := range members {
		if fits(e.Capacity(), def) {
			return e.Id(), nil
		}
	}
	logging.WithFields(map[string]interface{}{
		"workerID":  workerID,
		"candidates": len(members),
	}).Debug("no executor with sufficient capacity")
	return "", errors.Errorf("no executor with capacity for %+v among %d members", def, len(members))
}

func (r *ResourceCluster) GetTaskExecutorGateway(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.Gateway, error) {
	e, err := r.find(id)
	if err != nil {
		return nil, err
	}
	return r.gatewayFactory(e.Registration())
}

func (r *ResourceCluster) GetTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	e, err := r.find(id)
	if err != nil {
		return dispatch.TaskExecutorRegistration{}, err
	}
	return e.Registration(), nil
}

// GetCurrentTaskExecutorInfo has no cache to bypass here; it is identical
// to GetTaskExecutorInfo.
func (r *ResourceCluster) GetCurrentTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	return r.GetTaskExecutorInfo(ctx, id)
}

func (r *ResourceCluster) GetTaskExecutorInfoByHostname(ctx context.Context, hostname string) (dispatch.TaskExecutorID, dispatch.TaskExecutorRegistration, error) {
	members, err := r.cl.Members()
	if err != nil {
		return "", dispatch.TaskExecutorRegistration{}, errors.Wrap(err, "listing cluster members")
	}
	for _, e := range members {
		if e.Registration().Hostname == hostname {
			return e.Id(), e.Registration(), nil
		}
	}
	if r.fallback != nil {
		reg, err := r.fallback.Resolve(hostname)
		if err != nil {
			return "", dispatch.TaskExecutorRegistration{}, errors.Wrapf(err, "hostname fallback resolving %q", hostname)
		}
		id := dispatch.TaskExecutorID("fallback:" + hostname)
		r.mu.Lock()
		r.fallbackRegs[id] = reg
		r.mu.Unlock()
		logging.WithFields(map[string]interface{}{"hostname": hostname}).Info("resolved executor via hostname fallback")
		return id, reg, nil
	}
	return "", dispatch.TaskExecutorRegistration{}, errors.Errorf("no executor registered under hostname %q", hostname)
}

func (r *ResourceCluster) find(id dispatch.TaskExecutorID) (Executor, error) {
	members, err := r.cl.Members()
	if err != nil {
		return nil, errors.Wrap(err, "listing cluster members")
	}
	for _, e := range members {
		if e.Id() == id {
			return e, nil
		}
	}
	r.mu.Lock()
	reg, ok := r.fallbackRegs[id]
	r.mu.Unlock()
	if ok {
		return NewExecutor(string(id), reg, dispatch.MachineDefinition{}), nil
	}
	return nil, errors.Errorf("executor %q is no longer a cluster member", id)
}

// fits reports whether an executor with free capacity have can take on a
// worker needing need.
func fits(have, need dispatch.MachineDefinition) bool {
	return have.CPUCores >= need.CPUCores &&
		have.MemoryMB >= need.MemoryMB &&
		have.DiskMB >= need.DiskMB &&
		have.NetworkMbps >= need.NetworkMbps &&
		have.GPUs >= need.GPUs
}
