package stats

/*
This file defines all the metrics the dispatch engine collects. As new
metrics are added please follow this pattern.
*/

const (
	/************************* Dispatch engine metrics **************************/

	// Number of ScheduleRequests submitted to the engine.
	DispatchRequestsCounter = "dispatchRequestsCounter"

	// Number of CancelRequests submitted to the engine.
	DispatchCancelRequestsCounter = "dispatchCancelRequestsCounter"

	// Number of WorkerLaunched events published.
	DispatchLaunchedCounter = "dispatchLaunchedCounter"

	// Number of WorkerLaunchFailed events published.
	DispatchLaunchFailedCounter = "dispatchLaunchFailedCounter"

	// Number of assignment retries scheduled (FAILED_ASSIGN -> ASSIGNING).
	DispatchAssignRetryCounter = "dispatchAssignRetryCounter"

	// Number of times routeWorkerEvent returned false.
	DispatchRoutingFailureCounter = "dispatchRoutingFailureCounter"

	// Number of cancellations that failed after exhausting retries.
	DispatchCancelFailureCounter = "dispatchCancelFailureCounter"

	// Latency of one ResourceCluster.getTaskExecutorFor call. Each attempt is
	// timed on its own; retry delays are not included.
	DispatchAssignLatencyMs = "dispatchAssignLatency_ms"

	// Latency of Gateway.submitTask.
	DispatchSubmitLatencyMs = "dispatchSubmitLatency_ms"

	// Number of workers with an in-flight placement pipeline. Cancellations
	// are not counted.
	DispatchInFlightGauge = "dispatchInFlightGauge"

	// Number of requests currently waiting on a retry timer.
	DispatchPendingRetryGauge = "dispatchPendingRetryGauge"
)
