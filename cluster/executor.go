// Package cluster tracks the compute cluster's task executors and
// implements dispatch.ResourceCluster on top of that membership view.
package cluster

import (
	"fmt"

	"github.com/scootdev/dispatch/dispatch"
)

// Executor is one cluster member: an id, the registration info the
// dispatch engine needs to reach it, and the resources it currently has
// free.
type Executor interface {
	Id() dispatch.TaskExecutorID
	Registration() dispatch.TaskExecutorRegistration
	Capacity() dispatch.MachineDefinition
}

type idExecutor struct {
	id       dispatch.TaskExecutorID
	reg      dispatch.TaskExecutorRegistration
	capacity dispatch.MachineDefinition
}

func (e *idExecutor) String() string {
	return string(e.id)
}

// NewExecutor builds an Executor from its registration and free capacity.
func NewExecutor(id string, reg dispatch.TaskExecutorRegistration, capacity dispatch.MachineDefinition) Executor {
	return &idExecutor{id: dispatch.TaskExecutorID(id), reg: reg, capacity: capacity}
}

func (e *idExecutor) Id() dispatch.TaskExecutorID                       { return e.id }
func (e *idExecutor) Registration() dispatch.TaskExecutorRegistration   { return e.reg }
func (e *idExecutor) Capacity() dispatch.MachineDefinition              { return e.capacity }

var _ Executor = (*idExecutor)(nil)

// ExecutorSorter sorts Executors by id, giving diffs and test output a
// stable order.
type ExecutorSorter []Executor

func (s ExecutorSorter) Len() int           { return len(s) }
func (s ExecutorSorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ExecutorSorter) Less(i, j int) bool { return s[i].Id() < s[j].Id() }

// UpdateType distinguishes an Executor joining from one leaving.
type UpdateType int

const (
	Added UpdateType = iota
	Removed
)

// ExecutorUpdate represents one membership change.
type ExecutorUpdate struct {
	UpdateType UpdateType
	Id         dispatch.TaskExecutorID
	Executor   Executor // only set for Added
}

func (u ExecutorUpdate) String() string {
	return fmt.Sprintf("%v %v %v", u.UpdateType, u.Id, u.Executor)
}

// NewAdd builds an ExecutorUpdate reporting e joining the cluster.
func NewAdd(e Executor) ExecutorUpdate {
	return ExecutorUpdate{UpdateType: Added, Id: e.Id(), Executor: e}
}

// NewRemove builds an ExecutorUpdate reporting id leaving the cluster.
func NewRemove(id dispatch.TaskExecutorID) ExecutorUpdate {
	return ExecutorUpdate{UpdateType: Removed, Id: id}
}

// ExecutorUpdates supports sort.Sort so diffs present in a predictable
// added-then-removed, id-ascending order.
type ExecutorUpdates []ExecutorUpdate

func (u ExecutorUpdates) Len() int      { return len(u) }
func (u ExecutorUpdates) Swap(i, j int) { u[i], u[j] = u[j], u[i] }
func (u ExecutorUpdates) Less(i, j int) bool {
	if u[i].UpdateType != u[j].UpdateType {
		return u[i].UpdateType < u[j].UpdateType
	}
	return u[i].Id < u[j].Id
}
