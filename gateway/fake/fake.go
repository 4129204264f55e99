// Package fake provides dispatch.Gateway test doubles: an immediately
// successful gateway, one that simulates network latency, and one that
// always fails. Grounded on the teacher's fake worker controllers
// (noop/waiting/panic), generalized from a RunAndWait-style worker
// interface to dispatch's narrower submit/cancel Gateway.
package fake

import (
	"context"
	"fmt"
	"time"

	"github.com/scootdev/dispatch/dispatch"
)

// NoopGateway accepts every submission and cancellation immediately.
type NoopGateway struct{}

func (NoopGateway) SubmitTask(ctx context.Context, payload dispatch.ExecutorPayload) error {
	return nil
}

func (NoopGateway) CancelTask(ctx context.Context, workerID string) error {
	return nil
}

// WaitingGateway simulates network latency before accepting a submission
// or cancellation.
type WaitingGateway struct {
	Delay time.Duration
}

func (g WaitingGateway) SubmitTask(ctx context.Context, payload dispatch.ExecutorPayload) error {
	select {
	case <-time.After(g.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g WaitingGateway) CancelTask(ctx context.Context, workerID string) error {
	select {
	case <-time.After(g.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FailingGateway rejects every submission and cancellation with Err, or a
// generic error if Err is nil.
type FailingGateway struct {
	Err error
}

func (g FailingGateway) SubmitTask(ctx context.Context, payload dispatch.ExecutorPayload) error {
	if g.Err != nil {
		return g.Err
	}
	return fmt.Errorf("fake gateway: submitTask always fails")
}

func (g FailingGateway) CancelTask(ctx context.Context, workerID string) error {
	if g.Err != nil {
		return g.Err
	}
	return fmt.Errorf("fake gateway: cancelTask always fails")
}

var (
	_ dispatch.Gateway = NoopGateway{}
	_ dispatch.Gateway = WaitingGateway{}
	_ dispatch.Gateway = FailingGateway{}
)
