package cluster

import (
	"testing"

	"github.com/scootdev/dispatch/dispatch"
)

type helper struct {
	t  *testing.T
	c  Cluster
	ch chan ExecutorUpdates
}

func makeHelper(t *testing.T) *helper {
	h := &helper{t: t, ch: make(chan ExecutorUpdates)}
	h.c = NewCluster(nil, h.ch)
	return h
}

func (h *helper) close() { h.c.Close() }

func (h *helper) members() []Executor {
	m, err := h.c.Members()
	if err != nil {
		h.t.Fatalf("Members() error: %v", err)
	}
	return m
}

func (h *helper) add(ids ...string) {
	var updates ExecutorUpdates
	for _, id := range ids {
		updates = append(updates, NewAdd(exec(id)))
	}
	h.ch <- updates
}

func (h *helper) remove(ids ...string) {
	var updates ExecutorUpdates
	for _, id := range ids {
		updates = append(updates, NewRemove(dispatch.TaskExecutorID(id)))
	}
	h.ch <- updates
}

func (h *helper) assertMembers(ids ...string) {
	t := h.t
	actual := h.members()
	if len(actual) != len(ids) {
		t.Fatalf("unequal members: %v vs %v", actual, ids)
	}
	seen := map[string]bool{}
	for _, e := range actual {
		seen[string(e.Id())] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Fatalf("expected member %v, got %v", id, actual)
		}
	}
}

func TestClusterMembers(t *testing.T) {
	h := makeHelper(t)
	defer h.close()
	h.assertMembers()
	h.add("node1")
	h.assertMembers("node1")
	h.remove("node1")
	h.assertMembers()
	h.add("node1", "node2")
	h.assertMembers("node1", "node2")
	h.remove("node1", "node2")
	h.assertMembers()
	// removing a nonexistent node is a no-op, not an error
	h.remove("node3")
	h.assertMembers()
}

func TestClusterSubscribe(t *testing.T) {
	h := makeHelper(t)
	defer h.close()

	sub, err := h.c.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}
	defer sub.Closer.Close()
	if len(sub.InitialMembers) != 0 {
		t.Fatalf("expected no initial members, got %v", sub.InitialMembers)
	}

	h.add("node1")
	h.members() // force the update to propagate before reading it
	updates := <-sub.Updates
	if len(updates) != 1 || updates[0].Id != "node1" || updates[0].UpdateType != Added {
		t.Fatalf("unexpected updates: %v", updates)
	}
}
