package dispatch

import (
	"github.com/scootdev/dispatch/logging"
	"github.com/scootdev/dispatch/stats"
)

// handleCancelRequestEvent resolves req's hostname to an executor and asks
// it to cancel the worker. Failure is retried once (see Config.
// MaxCancelAttempts) rather than dropped silently or retried forever; see
// DESIGN.md Open Question #2.
func (e *Engine) handleCancelRequestEvent(msg cancelRequestEvent) {
	e.stat.Counter(stats.DispatchCancelRequestsCounter).Inc(1)
	e.runCancelAttempt(msg.req, 1, nil)
}

// handleRetryCancelRequestEvent fires after the retry timer elapses for a
// previously failed cancellation.
func (e *Engine) handleRetryCancelRequestEvent(msg retryCancelRequestEvent) {
	e.runCancelAttempt(msg.req, msg.num, msg.cause)
}

func (e *Engine) runCancelAttempt(req CancelRequest, num int, prevCause error) {
	e.cancelAttempts[req.WorkerID] = num
	log := logging.WithFields(map[string]interface{}{
		"workerID": req.WorkerID,
		"hostname": req.HostName,
		"attempt":  num,
	})
	log.Debug("cancelling task")

	cluster := e.cluster
	go func() {
		ctx := backgroundContext()
		id, _, err := cluster.GetTaskExecutorInfoByHostname(ctx, req.HostName)
		if err != nil {
			e.onCancelFailure(req, num, newPipelineError(LookupFailure, err))
			return
		}
		gw, err := cluster.GetTaskExecutorGateway(ctx, id)
		if err != nil {
			e.onCancelFailure(req, num, newPipelineError(LookupFailure, err))
			return
		}
		if err := gw.CancelTask(ctx, req.WorkerID); err != nil {
			e.onCancelFailure(req, num, newPipelineError(CancellationFailure, err))
			return
		}
		e.post(noop{workerID: req.WorkerID})
	}()
}

func (e *Engine) onCancelFailure(req CancelRequest, num int, cause error) {
	if num >= e.cfg.MaxCancelAttempts {
		e.stat.Counter(stats.DispatchCancelFailureCounter).Inc(1)
		logging.WithFields(map[string]interface{}{
			"workerID": req.WorkerID,
			"hostname": req.HostName,
			"attempt":  num,
			"cause":    causeString(cause),
		}).Error("cancellation failed, giving up")
		e.post(noop{workerID: req.WorkerID})
		return
	}
	delay := e.cfg.CancelRetryDelay
	e.timer.ScheduleOnce(delay, func() {
		e.post(retryCancelRequestEvent{req: req, num: num + 1, cause: cause})
	})
}
