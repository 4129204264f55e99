// Package jobmgr implements dispatch.JobMessageRouter: it hands each
// WorkerEvent the dispatch engine publishes off to a Sink (the actual
// transport to the job-management plane) and fans a copy out to any
// registered Listeners for logging and stats, mirroring the teacher
// scheduler's listener hook (sched/scheduler's logging listener observes
// every worker reply and action without being on the critical path for
// delivering it).
package jobmgr

import (
	"sync"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/logging"
)

// Sink delivers evt to the job-management plane, returning whether the
// event was durably handed off.
type Sink interface {
	Deliver(evt dispatch.WorkerEvent) bool
}

// Listener observes every event routed through a Router, regardless of
// whether the Sink accepted it. Used for logging and metrics, never for
// anything the dispatch engine depends on for correctness.
type Listener interface {
	OnWorkerEvent(evt dispatch.WorkerEvent)
}

// Router implements dispatch.JobMessageRouter over a single Sink plus any
// number of Listeners.
type Router struct {
	sink Sink

	mu        sync.Mutex
	listeners []Listener
}

// NewRouter builds a Router that delivers through sink.
func NewRouter(sink Sink) *Router {
	return &Router{sink: sink}
}

// AddListener registers l to observe every subsequent RouteWorkerEvent
// call. Safe to call concurrently with RouteWorkerEvent; a
// RouteWorkerEvent call already in progress does not notify l.
func (r *Router) AddListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// RouteWorkerEvent implements dispatch.JobMessageRouter.
func (r *Router) RouteWorkerEvent(evt dispatch.WorkerEvent) bool {
	r.mu.Lock()
	listeners := append([]Listener{}, r.listeners...)
	r.mu.Unlock()

	for _, l := range listeners {
		l.OnWorkerEvent(evt)
	}

	ok := r.sink.Deliver(evt)
	if !ok {
		logging.WithFields(map[string]interface{}{"event": evt}).Error("sink rejected worker event")
	}
	return ok
}

var _ dispatch.JobMessageRouter = (*Router)(nil)
