package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/scootdev/dispatch/stats"
)

type fakeCluster struct {
	assignResult TaskExecutorID
	assignErr    error
	assignCalls  int
	reg          TaskExecutorRegistration
	infoErr      error
	// currentInfoErr, when set, makes GetCurrentTaskExecutorInfo fail;
	// currentReg overrides reg for it when useCurrentReg is set, so tests
	// can simulate the executor's registration changing between assignment
	// and the pre-publish re-read.
	useCurrentReg  bool
	currentReg     TaskExecutorRegistration
	currentInfoErr error
	gatewayErr     error
	gw             Gateway
	hostnameResult TaskExecutorID
	hostnameErr    error
}

func (f *fakeCluster) GetTaskExecutorFor(ctx context.Context, def MachineDefinition, workerID string) (TaskExecutorID, error) {
	f.assignCalls++
	if f.assignErr != nil {
		return "", f.assignErr
	}
	return f.assignResult, nil
}

func (f *fakeCluster) GetTaskExecutorGateway(ctx context.Context, id TaskExecutorID) (Gateway, error) {
	if f.gatewayErr != nil {
		return nil, f.gatewayErr
	}
	return f.gw, nil
}

func (f *fakeCluster) GetTaskExecutorInfo(ctx context.Context, id TaskExecutorID) (TaskExecutorRegistration, error) {
	if f.infoErr != nil {
		return TaskExecutorRegistration{}, f.infoErr
	}
	return f.reg, nil
}

func (f *fakeCluster) GetCurrentTaskExecutorInfo(ctx context.Context, id TaskExecutorID) (TaskExecutorRegistration, error) {
	if f.currentInfoErr != nil {
		return TaskExecutorRegistration{}, f.currentInfoErr
	}
	if f.useCurrentReg {
		return f.currentReg, nil
	}
	return f.GetTaskExecutorInfo(ctx, id)
}

func (f *fakeCluster) GetTaskExecutorInfoByHostname(ctx context.Context, hostname string) (TaskExecutorID, TaskExecutorRegistration, error) {
	if f.hostnameErr != nil {
		return "", TaskExecutorRegistration{}, f.hostnameErr
	}
	return f.hostnameResult, f.reg, nil
}

type fakeGateway struct {
	submitErr error
	cancelErr error
	submitted []ExecutorPayload
	cancelled []string
}

func (g *fakeGateway) SubmitTask(ctx context.Context, payload ExecutorPayload) error {
	g.submitted = append(g.submitted, payload)
	return g.submitErr
}

func (g *fakeGateway) CancelTask(ctx context.Context, workerID string) error {
	g.cancelled = append(g.cancelled, workerID)
	return g.cancelErr
}

type fakePayloadBuilder struct{}

func (fakePayloadBuilder) Build(req ScheduleRequest, reg TaskExecutorRegistration) (ExecutorPayload, error) {
	return req, nil
}

type fakeRouter struct {
	events chan WorkerEvent
}

func newFakeRouter() *fakeRouter {
	return &fakeRouter{events: make(chan WorkerEvent, 16)}
}

func (r *fakeRouter) RouteWorkerEvent(evt WorkerEvent) bool {
	r.events <- evt
	return true
}

func (r *fakeRouter) next(t *testing.T) WorkerEvent {
	t.Helper()
	select {
	case evt := <-r.events:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func newTestEngine(cluster ResourceCluster, router JobMessageRouter, timer Timer, cfg Config) *Engine {
	return NewEngine(cluster, router, fakePayloadBuilder{}, timer, cfg, stats.NilStatsReceiver())
}

func TestEngine_SuccessfulPlacement(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{
		assignResult: "exec-1",
		reg:          TaskExecutorRegistration{Hostname: "host-1", ResourceID: "r1", WorkerPorts: []int{9000}},
		gw:           gw,
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w1", StageNum: 3})

	evt := router.next(t)
	launched, ok := evt.(WorkerLaunched)
	if !ok {
		t.Fatalf("expected WorkerLaunched, got %T", evt)
	}
	if launched.WorkerID != "w1" || launched.Hostname != "host-1" || launched.StageNum != 3 {
		t.Fatalf("unexpected event contents: %v", spew.Sdump(launched))
	}
	if len(gw.submitted) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(gw.submitted))
	}
}

// TestEngine_PublishesCurrentRegistrationNotAssignTimeOne exercises the
// "current registration as source of truth" invariant: if the executor's
// registration changes between assignment and submission, the published
// WorkerLaunched must carry the changed registration, not the one seen at
// assignment time.
func TestEngine_PublishesCurrentRegistrationNotAssignTimeOne(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{
		assignResult:  "exec-1",
		reg:           TaskExecutorRegistration{Hostname: "host-1", WorkerPorts: []int{9000}},
		useCurrentReg: true,
		currentReg:    TaskExecutorRegistration{Hostname: "host-1-renamed", WorkerPorts: []int{9001}},
		gw:            gw,
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w1"})

	evt := router.next(t)
	launched, ok := evt.(WorkerLaunched)
	if !ok {
		t.Fatalf("expected WorkerLaunched, got %T", evt)
	}
	if launched.Hostname != "host-1-renamed" {
		t.Fatalf("expected published event to carry the current registration, got %v", spew.Sdump(launched))
	}
}

// TestEngine_FallsBackToAssignTimeRegistrationOnReReadFailure exercises the
// fallback path: when the pre-publish re-read fails, the engine should
// still publish the assignment-time registration rather than a blank one.
func TestEngine_FallsBackToAssignTimeRegistrationOnReReadFailure(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{
		assignResult:   "exec-1",
		reg:            TaskExecutorRegistration{Hostname: "host-1", WorkerPorts: []int{9000}},
		currentInfoErr: errors.New("registration lookup unavailable"),
		gw:             gw,
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w1"})

	evt := router.next(t)
	launched, ok := evt.(WorkerLaunched)
	if !ok {
		t.Fatalf("expected WorkerLaunched, got %T", evt)
	}
	if launched.Hostname != "host-1" {
		t.Fatalf("expected fallback to assignment-time registration, got %v", spew.Sdump(launched))
	}
}

func TestEngine_AssignmentRetriedThenSucceeds(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{
		assignErr: errors.New("no capacity"),
		gw:        gw,
		reg:       TaskExecutorRegistration{Hostname: "host-2"},
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w2"})

	deadline := time.Now().Add(2 * time.Second)
	for timer.Pending() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if timer.Pending() != 1 {
		t.Fatalf("expected one pending retry timer, got %d", timer.Pending())
	}

	cluster.assignErr = nil
	cluster.assignResult = "exec-2"
	timer.FireAll()

	evt := router.next(t)
	launched, ok := evt.(WorkerLaunched)
	if !ok {
		t.Fatalf("expected WorkerLaunched after retry, got %T", evt)
	}
	if launched.Hostname != "host-2" {
		t.Fatalf("unexpected hostname: %+v", launched)
	}
	if cluster.assignCalls != 2 {
		t.Fatalf("expected 2 assignment attempts, got %d", cluster.assignCalls)
	}
}

func TestEngine_SubmissionFailureIsTerminal(t *testing.T) {
	gw := &fakeGateway{submitErr: errors.New("rejected")}
	cluster := &fakeCluster{
		assignResult: "exec-3",
		reg:          TaskExecutorRegistration{Hostname: "host-3"},
		gw:           gw,
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w3"})

	evt := router.next(t)
	failed, ok := evt.(WorkerLaunchFailed)
	if !ok {
		t.Fatalf("expected WorkerLaunchFailed, got %T", evt)
	}
	if failed.WorkerID != "w3" {
		t.Fatalf("unexpected event: %+v", failed)
	}

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		if timer.Pending() != 0 {
			t.Fatal("submission failure must not schedule a retry")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestEngine_MaxAssignAttemptsBoundsRetries(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{
		assignErr: errors.New("no capacity"),
		gw:        gw,
	}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	cfg.MaxAssignAttempts = 2
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Submit(ScheduleRequest{WorkerID: "w4"})

	waitForPending(t, timer, 1)
	timer.FireAll()

	evt := router.next(t)
	failed, ok := evt.(WorkerLaunchFailed)
	if !ok {
		t.Fatalf("expected terminal WorkerLaunchFailed, got %T", evt)
	}
	if failed.WorkerID != "w4" {
		t.Fatalf("unexpected event: %+v", failed)
	}
	if cluster.assignCalls != 2 {
		t.Fatalf("expected exactly 2 assignment attempts, got %d", cluster.assignCalls)
	}
}

func TestEngine_CancelSuccess(t *testing.T) {
	gw := &fakeGateway{}
	cluster := &fakeCluster{hostnameResult: "exec-5", gw: gw}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	e := newTestEngine(cluster, router, timer, NewDefaultConfig())
	e.Start()
	defer e.Stop()

	e.Cancel(CancelRequest{WorkerID: "w5", HostName: "host-5"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(gw.cancelled) == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if len(gw.cancelled) != 1 || gw.cancelled[0] != "w5" {
		t.Fatalf("expected w5 to be cancelled, got %v", gw.cancelled)
	}
}

func TestEngine_CancelRetriedOnceThenGivesUp(t *testing.T) {
	gw := &fakeGateway{cancelErr: errors.New("unreachable")}
	cluster := &fakeCluster{hostnameResult: "exec-6", gw: gw}
	router := newFakeRouter()
	timer := NewVirtualTimer()
	cfg := NewDefaultConfig()
	cfg.MaxCancelAttempts = 2
	e := newTestEngine(cluster, router, timer, cfg)
	e.Start()
	defer e.Stop()

	e.Cancel(CancelRequest{WorkerID: "w6", HostName: "host-6"})

	waitForPending(t, timer, 1)
	timer.FireAll()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(gw.cancelled) == 2 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if len(gw.cancelled) != 2 {
		t.Fatalf("expected 2 cancel attempts, got %d", len(gw.cancelled))
	}
}

func waitForPending(t *testing.T, timer *virtualTimer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for timer.Pending() < n && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if timer.Pending() < n {
		t.Fatalf("expected at least %d pending timer entries, got %d", n, timer.Pending())
	}
}
