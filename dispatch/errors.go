package dispatch

// kind identifies where in the pipeline an error originated, so handlers
// can decide whether to retry without string-matching messages.
type kind int

const (
	// AssignmentUnavailable means ResourceCluster.GetTaskExecutorFor found
	// no qualifying executor. Retried on the fixed assignment delay.
	AssignmentUnavailable kind = iota
	// SubmissionRejected means the executor's submitTask declined the
	// task. Terminal.
	SubmissionRejected
	// RoutingFailure means JobMessageRouter.RouteWorkerEvent returned
	// false. Logged and counted, never retried by the engine itself.
	RoutingFailure
	// CancellationFailure means a cancellation RPC failed. Retried once
	// per Config.MaxCancelAttempts, then dropped.
	CancellationFailure
	// LookupFailure means resolving a hostname or executor id failed.
	LookupFailure
)

func (k kind) String() string {
	switch k {
	case AssignmentUnavailable:
		return "assignment unavailable"
	case SubmissionRejected:
		return "submission rejected"
	case RoutingFailure:
		return "routing failure"
	case CancellationFailure:
		return "cancellation failure"
	case LookupFailure:
		return "lookup failure"
	default:
		return "unknown"
	}
}

// pipelineError wraps a cause with the kind of pipeline stage that produced
// it, so handlers can branch on Kind() while logs still carry the original
// error text via Error().
type pipelineError struct {
	k     kind
	cause error
}

func newPipelineError(k kind, cause error) *pipelineError {
	return &pipelineError{k: k, cause: cause}
}

func (e *pipelineError) Error() string {
	return e.k.String() + ": " + e.cause.Error()
}

func (e *pipelineError) Cause() error { return e.cause }

func (e *pipelineError) Unwrap() error { return e.cause }

func (e *pipelineError) Kind() kind { return e.k }

// causeString returns err's full message, including every wrapped cause in
// its chain (kind prefix, RPC error, and any github.com/pkg/errors context
// in between), for inclusion in a WorkerLaunchFailed event.
func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
