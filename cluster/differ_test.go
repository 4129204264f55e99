package cluster

import (
	"testing"

	"github.com/scootdev/dispatch/dispatch"
)

func exec(id string) Executor {
	return NewExecutor(id, dispatch.TaskExecutorRegistration{Hostname: id}, dispatch.MachineDefinition{})
}

func TestDiffer(t *testing.T) {
	d := MakeDiffer()
	assertDiff(t, d, []string{}, ExecutorUpdates{})
	assertDiff(t, d, []string{"host1:1234"}, ExecutorUpdates{NewAdd(exec("host1:1234"))})
	assertDiff(t, d, []string{}, ExecutorUpdates{NewRemove("host1:1234")})
	assertDiff(t, d, []string{"host1:1234", "host1:4321"},
		ExecutorUpdates{NewAdd(exec("host1:1234")), NewAdd(exec("host1:4321"))})
	// same membership, no diff
	assertDiff(t, d, []string{"host1:1234", "host1:4321"}, ExecutorUpdates{})
	// one added, one removed — Added sorts before Removed regardless of
	// generation order
	assertDiff(t, d, []string{"host1:1234", "host1:6789"},
		ExecutorUpdates{NewAdd(exec("host1:6789")), NewRemove("host1:4321")})
	assertDiff(t, d, []string{}, ExecutorUpdates{NewRemove("host1:1234"), NewRemove("host1:6789")})
}

func assertDiff(t *testing.T, d *Differ, ids []string, expected ExecutorUpdates) {
	t.Helper()
	var current []Executor
	for _, id := range ids {
		current = append(current, exec(id))
	}
	actual := d.MakeDiff(current)
	if len(actual) != len(expected) {
		t.Fatalf("unequal updates: %v vs %v", actual, expected)
	}
	for i, ex := range expected {
		act := actual[i]
		if ex.UpdateType != act.UpdateType || ex.Id != act.Id {
			t.Fatalf("unequal update at %d: %v vs %v", i, act, ex)
		}
	}
}
