package dispatch

// message is the closed set of values the engine's mailbox accepts. Every
// state transition in the placement and cancellation pipelines is driven by
// one of these arriving on the mailbox channel; nothing else touches engine
// state.
type message interface {
	isMessage()
}

// scheduleRequestEvent asks the engine to place attempt, either as a fresh
// request (Num == 1) or a retry after an earlier assignment failure.
type scheduleRequestEvent struct {
	attempt Attempt
}

func (scheduleRequestEvent) isMessage() {}

// cancelRequestEvent asks the engine to cancel a previously scheduled
// worker.
type cancelRequestEvent struct {
	req CancelRequest
}

func (cancelRequestEvent) isMessage() {}

// retryCancelRequestEvent is the bounded retry of a failed cancellation.
// It is not part of the original closed set; see DESIGN.md's note on
// Open Question #2 for why the engine grew an eighth message instead of
// dropping failed cancellations silently.
type retryCancelRequestEvent struct {
	req   CancelRequest
	num   int
	cause error
}

func (retryCancelRequestEvent) isMessage() {}

// assignedScheduleRequestEvent reports that GetTaskExecutorFor succeeded.
type assignedScheduleRequestEvent struct {
	attempt  Attempt
	executor TaskExecutorID
}

func (assignedScheduleRequestEvent) isMessage() {}

// failedToScheduleRequestEvent reports that GetTaskExecutorFor failed.
type failedToScheduleRequestEvent struct {
	attempt Attempt
	cause   error
}

func (failedToScheduleRequestEvent) isMessage() {}

// submittedScheduleRequestEvent reports that the executor's submitTask
// accepted the task. assignTimeReg is the registration seen at assignment
// time, kept only as a fallback for the pre-publish re-read in
// handleSubmittedScheduleRequestEvent.
type submittedScheduleRequestEvent struct {
	attempt       Attempt
	executor      TaskExecutorID
	assignTimeReg TaskExecutorRegistration
}

func (submittedScheduleRequestEvent) isMessage() {}

// failedToSubmitScheduleRequestEvent reports that the submission phase
// failed: the registration or gateway lookup, the payload build, or
// submitTask itself. Unlike assignment failure this is terminal: the engine does not retry a
// submission onto the same or a different executor.
type failedToSubmitScheduleRequestEvent struct {
	attempt  Attempt
	executor TaskExecutorID
	cause    error
}

func (failedToSubmitScheduleRequestEvent) isMessage() {}

// noop signals that workerID's pipeline (placement or cancellation) has
// reached a terminal state, so the loop goroutine can clear its
// bookkeeping for it. It carries no further state transition.
type noop struct {
	workerID string
}

func (noop) isMessage() {}
