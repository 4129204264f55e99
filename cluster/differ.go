package cluster

import (
	"sort"

	"github.com/scootdev/dispatch/dispatch"
)

// Differ computes the minimal set of ExecutorUpdates between successive
// membership snapshots. Grounded on the teacher's registration differ: it
// keeps the previous snapshot keyed by id and reports adds for ids new to
// this snapshot, removes for ids missing from it.
type Differ struct {
	nodes map[dispatch.TaskExecutorID]Executor
}

// MakeDiffer returns a Differ with no prior snapshot, so the first call to
// MakeDiff reports every passed-in executor as added.
func MakeDiffer() *Differ {
	return &Differ{nodes: make(map[dispatch.TaskExecutorID]Executor)}
}

// MakeDiff compares current against the last snapshot passed to MakeDiff
// and returns the updates, sorted for predictable test output.
func (d *Differ) MakeDiff(current []Executor) ExecutorUpdates {
	next := make(map[dispatch.TaskExecutorID]Executor, len(current))
	var added []Executor
	for _, e := range current {
		id := e.Id()
		next[id] = e
		if _, exists := d.nodes[id]; exists {
			delete(d.nodes, id)
		} else {
			added = append(added, e)
		}
	}
	var removed []Executor
	for _, e := range d.nodes {
		removed = append(removed, e)
	}

	var out ExecutorUpdates
	for _, e := range added {
		out = append(out, NewAdd(e))
	}
	for _, e := range removed {
		out = append(out, NewRemove(e.Id()))
	}
	sort.Sort(out)

	d.nodes = next
	return out
}
