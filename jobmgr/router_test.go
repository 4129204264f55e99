package jobmgr

import (
	"reflect"
	"testing"
	"time"

	"github.com/scootdev/dispatch/dispatch"
)

type recordingListener struct {
	events []dispatch.WorkerEvent
}

func (l *recordingListener) OnWorkerEvent(evt dispatch.WorkerEvent) {
	l.events = append(l.events, evt)
}

func TestRouter_DeliversToSinkAndListeners(t *testing.T) {
	sink := NewChannelSink(1)
	listener := &recordingListener{}

	r := NewRouter(sink)
	r.AddListener(listener)

	evt := dispatch.WorkerLaunched{WorkerID: "w1", StageNum: 2, Hostname: "host1"}
	ok := r.RouteWorkerEvent(evt)
	if !ok {
		t.Fatalf("expected RouteWorkerEvent to report success")
	}
	if len(listener.events) != 1 || !reflect.DeepEqual(listener.events[0], dispatch.WorkerEvent(evt)) {
		t.Fatalf("listener did not observe event: %v", listener.events)
	}

	select {
	case got := <-sink.Events:
		if !reflect.DeepEqual(got, dispatch.WorkerEvent(evt)) {
			t.Fatalf("sink got wrong event: %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("sink never received event")
	}
}

func TestRouter_ReportsSinkRejection(t *testing.T) {
	sink := NewChannelSink(0) // unbuffered and nobody's reading: Deliver always fails
	r := NewRouter(sink)

	ok := r.RouteWorkerEvent(dispatch.WorkerLaunchFailed{WorkerID: "w1"})
	if ok {
		t.Fatalf("expected RouteWorkerEvent to report failure when sink is full")
	}
}

func TestLoggingSink_AlwaysSucceeds(t *testing.T) {
	var s LoggingSink
	if !s.Deliver(dispatch.WorkerLaunched{WorkerID: "w1"}) {
		t.Fatalf("LoggingSink should always report success")
	}
}
