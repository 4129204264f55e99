package dispatch

import (
	"github.com/scootdev/dispatch/logging"
	"github.com/scootdev/dispatch/stats"
)

// handleScheduleRequestEvent begins (or retries) assignment for attempt.
// It is the only place GetTaskExecutorFor is called from.
func (e *Engine) handleScheduleRequestEvent(msg scheduleRequestEvent) {
	workerID := msg.attempt.Request.WorkerID
	if msg.attempt.Num == 1 {
		e.stat.Counter(stats.DispatchRequestsCounter).Inc(1)
	} else {
		e.pendingRetries--
		e.stat.Gauge(stats.DispatchPendingRetryGauge).Update(int64(e.pendingRetries))
	}
	e.assignAttempts[workerID] = msg.attempt.Num
	e.stat.Gauge(stats.DispatchInFlightGauge).Update(int64(len(e.assignAttempts)))

	log := logging.WithFields(map[string]interface{}{
		"workerID": workerID,
		"attempt":  msg.attempt.Num,
		"attemptID": msg.attempt.id,
	})
	log.Debug("assigning task executor")

	attempt := msg.attempt
	cluster := e.cluster
	go func() {
		ctx := backgroundContext()
		latency := e.stat.Latency(stats.DispatchAssignLatencyMs).Time()
		id, err := cluster.GetTaskExecutorFor(ctx, attempt.Request.MachineDef, attempt.Request.WorkerID)
		latency.Stop()
		if err != nil {
			e.post(failedToScheduleRequestEvent{attempt: attempt, cause: newPipelineError(AssignmentUnavailable, err)})
			return
		}
		e.post(assignedScheduleRequestEvent{attempt: attempt, executor: id})
	}()
}

// handleFailedToScheduleRequestEvent either schedules a retry on the fixed
// assignment delay or, once attempt number MaxAssignAttempts has failed,
// reports terminal failure. MaxAssignAttempts == 0 means unbounded, matching the original
// behavior.
func (e *Engine) handleFailedToScheduleRequestEvent(msg failedToScheduleRequestEvent) {
	workerID := msg.attempt.Request.WorkerID
	log := logging.WithFields(map[string]interface{}{
		"workerID": workerID,
		"attempt":  msg.attempt.Num,
		"cause":    causeString(msg.cause),
	})

	if e.cfg.MaxAssignAttempts > 0 && msg.attempt.Num >= e.cfg.MaxAssignAttempts {
		log.Info("exhausted assignment attempts, giving up")
		e.publish(WorkerLaunchFailed{
			WorkerID:    workerID,
			StageNum:    msg.attempt.Request.StageNum,
			CauseString: causeString(msg.cause),
		})
		e.post(noop{workerID: workerID})
		return
	}

	log.Debug("assignment failed, scheduling retry")
	e.stat.Counter(stats.DispatchAssignRetryCounter).Inc(1)
	e.pendingRetries++
	e.stat.Gauge(stats.DispatchPendingRetryGauge).Update(int64(e.pendingRetries))
	next := msg.attempt.Retry(msg.cause)
	delay := assignRetryPolicy(e.cfg.AssignRetryDelay).NextBackOff()
	e.timer.ScheduleOnce(delay, func() {
		e.post(scheduleRequestEvent{attempt: next})
	})
}

// handleAssignedScheduleRequestEvent carries an assigned attempt through
// payload construction and submission.
func (e *Engine) handleAssignedScheduleRequestEvent(msg assignedScheduleRequestEvent) {
	attempt := msg.attempt
	executor := msg.executor
	cluster := e.cluster
	pb := e.payloadBuilder

	go func() {
		ctx := backgroundContext()
		reg, err := cluster.GetTaskExecutorInfo(ctx, executor)
		if err != nil {
			e.post(failedToSubmitScheduleRequestEvent{attempt: attempt, executor: executor, cause: newPipelineError(LookupFailure, err)})
			return
		}
		payload, err := pb.Build(attempt.Request, reg)
		if err != nil {
			e.post(failedToSubmitScheduleRequestEvent{attempt: attempt, executor: executor, cause: newPipelineError(SubmissionRejected, err)})
			return
		}
		gw, err := cluster.GetTaskExecutorGateway(ctx, executor)
		if err != nil {
			e.post(failedToSubmitScheduleRequestEvent{attempt: attempt, executor: executor, cause: newPipelineError(LookupFailure, err)})
			return
		}
		latency := e.stat.Latency(stats.DispatchSubmitLatencyMs).Time()
		err = gw.SubmitTask(ctx, payload)
		latency.Stop()
		if err != nil {
			e.post(failedToSubmitScheduleRequestEvent{attempt: attempt, executor: executor, cause: newPipelineError(SubmissionRejected, err)})
			return
		}
		e.post(submittedScheduleRequestEvent{attempt: attempt, executor: executor, assignTimeReg: reg})
	}()
}

// handleFailedToSubmitScheduleRequestEvent is terminal: a rejected
// submission is never retried onto the same or a different executor.
func (e *Engine) handleFailedToSubmitScheduleRequestEvent(msg failedToSubmitScheduleRequestEvent) {
	workerID := msg.attempt.Request.WorkerID
	logging.WithFields(map[string]interface{}{
		"workerID": workerID,
		"attempt":  msg.attempt.Num,
		"cause":    causeString(msg.cause),
	}).Info("submission rejected")

	e.publish(WorkerLaunchFailed{
		WorkerID:    workerID,
		StageNum:    msg.attempt.Request.StageNum,
		CauseString: causeString(msg.cause),
	})
	e.post(noop{workerID: workerID})
}

// handleSubmittedScheduleRequestEvent re-reads the executor's registration,
// bypassing any cache, before publishing WorkerLaunched, so the reported
// hostname/ports reflect the executor's current state rather than the
// state seen at assignment time (§4.2's "current registration as source of
// truth"). If the re-read itself fails, it falls back to the assignment
// -time registration rather than publishing a blank one.
func (e *Engine) handleSubmittedScheduleRequestEvent(msg submittedScheduleRequestEvent) {
	attempt := msg.attempt
	executor := msg.executor
	cluster := e.cluster

	go func() {
		ctx := backgroundContext()
		reg, err := cluster.GetCurrentTaskExecutorInfo(ctx, executor)
		if err != nil {
			logging.WithFields(map[string]interface{}{
				"workerID": attempt.Request.WorkerID,
				"executor": executor,
			}).Error("launched worker but could not re-resolve executor registration, falling back to assignment-time registration")
			reg = msg.assignTimeReg
		}
		e.publish(WorkerLaunched{
			WorkerID:          attempt.Request.WorkerID,
			StageNum:          attempt.Request.StageNum,
			Hostname:          reg.Hostname,
			ResourceID:        reg.ResourceID,
			ClusterResourceID: reg.ClusterResourceID,
			WorkerPorts:       reg.WorkerPorts,
		})
		e.post(noop{workerID: attempt.Request.WorkerID})
	}()
}
