package dispatch

import (
	"context"

	"github.com/scootdev/dispatch/logging"
	"github.com/scootdev/dispatch/stats"
)

// Engine is the dispatch actor: a single mailbox goroutine that serializes
// every state transition for every in-flight ScheduleRequest and
// CancelRequest. ResourceCluster, PayloadBuilder and Gateway calls are
// invoked from short-lived goroutines spawned by the handlers; their results
// are always re-posted to the mailbox rather than applied directly, so the
// loop goroutine is the only one that ever reads or writes engine state.
type Engine struct {
	cluster        ResourceCluster
	router         JobMessageRouter
	payloadBuilder PayloadBuilder
	timer          Timer
	cfg            Config
	stat           stats.StatsReceiver

	mailbox chan message
	stopCh  chan struct{}
	doneCh  chan struct{}

	// assignAttempts tracks the most recent attempt number seen per
	// worker id, touched only by the loop goroutine.
	assignAttempts map[string]int
	// cancelAttempts tracks retry counts per worker id for the
	// cancellation pipeline, touched only by the loop goroutine.
	cancelAttempts map[string]int
	// pendingRetries counts assignment retries currently waiting on a
	// timer, touched only by the loop goroutine.
	pendingRetries int
}

// NewEngine wires an Engine from its collaborators. Call Start to begin
// processing.
func NewEngine(cluster ResourceCluster, router JobMessageRouter, pb PayloadBuilder, timer Timer, cfg Config, stat stats.StatsReceiver) *Engine {
	return &Engine{
		cluster:        cluster,
		router:         router,
		payloadBuilder: pb,
		timer:          timer,
		cfg:            cfg,
		stat:           stat,
		mailbox:        make(chan message, cfg.MailboxSize),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
		assignAttempts: make(map[string]int),
		cancelAttempts: make(map[string]int),
	}
}

// Start launches the mailbox loop in its own goroutine.
func (e *Engine) Start() {
	go e.loop()
}

// Stop halts the mailbox loop; messages still queued in the mailbox are not
// processed. It does not wait for in-flight RPC goroutines to finish; any
// message they post after Stop returns is dropped.
func (e *Engine) Stop() {
	close(e.stopCh)
	<-e.doneCh
}

// Submit enqueues req as a new placement attempt. Returns immediately;
// outcomes arrive via JobMessageRouter.
func (e *Engine) Submit(req ScheduleRequest) {
	e.post(scheduleRequestEvent{attempt: newAttempt(req, 1, nil)})
}

// Cancel enqueues req for cancellation. Returns immediately.
func (e *Engine) Cancel(req CancelRequest) {
	e.post(cancelRequestEvent{req: req})
}

// post hands m to the mailbox, dropping it (and logging) rather than
// blocking forever if the engine has already stopped.
func (e *Engine) post(m message) {
	select {
	case e.mailbox <- m:
	case <-e.stopCh:
		logging.WithFields(map[string]interface{}{"message": m}).Debug("dropping message, engine stopped")
	}
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	for {
		select {
		case m := <-e.mailbox:
			e.handle(m)
		case <-e.stopCh:
			return
		}
	}
}

func (e *Engine) handle(m message) {
	switch msg := m.(type) {
	case scheduleRequestEvent:
		e.handleScheduleRequestEvent(msg)
	case assignedScheduleRequestEvent:
		e.handleAssignedScheduleRequestEvent(msg)
	case failedToScheduleRequestEvent:
		e.handleFailedToScheduleRequestEvent(msg)
	case submittedScheduleRequestEvent:
		e.handleSubmittedScheduleRequestEvent(msg)
	case failedToSubmitScheduleRequestEvent:
		e.handleFailedToSubmitScheduleRequestEvent(msg)
	case cancelRequestEvent:
		e.handleCancelRequestEvent(msg)
	case retryCancelRequestEvent:
		e.handleRetryCancelRequestEvent(msg)
	case noop:
		delete(e.assignAttempts, msg.workerID)
		delete(e.cancelAttempts, msg.workerID)
		e.stat.Gauge(stats.DispatchInFlightGauge).Update(int64(len(e.assignAttempts)))
	default:
		logging.WithFields(map[string]interface{}{"message": m}).Error("unrecognized dispatch message")
	}
}

// publish hands evt to the JobMessageRouter and counts the outcome. Safe to
// call from any goroutine.
func (e *Engine) publish(evt WorkerEvent) {
	ok := e.router.RouteWorkerEvent(evt)
	if !ok {
		e.stat.Counter(stats.DispatchRoutingFailureCounter).Inc(1)
		logging.WithFields(map[string]interface{}{"event": evt}).Error("job message router rejected event")
		return
	}
	switch evt.(type) {
	case WorkerLaunched:
		e.stat.Counter(stats.DispatchLaunchedCounter).Inc(1)
	case WorkerLaunchFailed:
		e.stat.Counter(stats.DispatchLaunchFailedCounter).Inc(1)
	}
}

func backgroundContext() context.Context {
	return context.Background()
}
