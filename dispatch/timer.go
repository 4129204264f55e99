package dispatch

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff"
)

// wallClockTimer schedules onto the real clock via time.AfterFunc. This is
// the Timer the daemon wires up in production.
type wallClockTimer struct{}

// NewWallClockTimer returns the production Timer.
func NewWallClockTimer() Timer {
	return wallClockTimer{}
}

func (wallClockTimer) ScheduleOnce(d time.Duration, action func()) {
	time.AfterFunc(d, action)
}

// virtualTimer is a mockable Timer for tests: instead of sleeping, it
// records each scheduled action and lets the test fire it on demand via
// FireAll. Grounded on stats.StatsTime/StatsTicker, the teacher's pattern
// for making time-based code deterministic in tests.
type virtualTimer struct {
	mu      sync.Mutex
	pending []virtualTimerEntry
}

type virtualTimerEntry struct {
	delay  time.Duration
	action func()
}

// NewVirtualTimer returns a Timer whose scheduled actions only run when the
// test calls FireAll.
func NewVirtualTimer() *virtualTimer {
	return &virtualTimer{}
}

func (v *virtualTimer) ScheduleOnce(d time.Duration, action func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = append(v.pending, virtualTimerEntry{delay: d, action: action})
}

// Pending returns the number of actions scheduled and not yet fired.
func (v *virtualTimer) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// FireAll runs every scheduled action, oldest first, and clears the queue.
// Actions scheduled by a fired action (e.g. a retry-of-a-retry) are not
// included in this pass; call FireAll again to drain them.
func (v *virtualTimer) FireAll() {
	v.mu.Lock()
	due := v.pending
	v.pending = nil
	v.mu.Unlock()
	for _, e := range due {
		e.action()
	}
}

// assignRetryPolicy returns the backoff policy for assignment retries: a
// fixed delay, matching the spec's "always wait 60s, never backoff"
// requirement. handleFailedToScheduleRequestEvent calls NextBackOff() on
// the result rather than reading delay directly, so swapping in a real
// backoff.BackOff (exponential, jittered) later is a one-line change.
func assignRetryPolicy(delay time.Duration) backoff.BackOff {
	return backoff.NewConstantBackOff(delay)
}
