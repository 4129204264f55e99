// Package dispatch places streaming-job workers onto the executors of a
// compute cluster.
//
// Each ScheduleRequest drives a small pipeline: an executor is selected
// (ResourceCluster.GetTaskExecutorFor), a task is built and submitted to it
// (PayloadBuilder, Gateway.SubmitTask), and the outcome is published
// (JobMessageRouter.RouteWorkerEvent) as either WorkerLaunched or
// WorkerLaunchFailed. Assignment failures are retried on a fixed delay;
// submission failures are terminal. CancelRequests resolve a hostname back
// to an executor and invoke Gateway.CancelTask.
//
// All of this is serialized through a single mailbox goroutine (Engine.loop)
// so that two messages about the same worker are never processed
// concurrently; the ResourceCluster, PayloadBuilder and Gateway are always
// called from short-lived goroutines that post their result back onto the
// mailbox rather than mutating engine state directly. Terminal failures are
// published to the JobMessageRouter, and retries scheduled on the Timer,
// from the mailbox goroutine itself.
package dispatch
