package jobmgr

import (
	"github.com/luci/go-render/render"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/logging"
)

// LoggingSink logs every event and always reports delivery as successful.
// Useful as a placeholder Sink until a real job-management plane is wired
// in, or alongside a real Sink during development.
type LoggingSink struct{}

func (LoggingSink) Deliver(evt dispatch.WorkerEvent) bool {
	logging.WithFields(map[string]interface{}{"event": render.Render(evt)}).Info("worker event")
	return true
}

// ChannelSink delivers events onto a buffered channel, for tests that want
// to assert on exactly what a Router forwarded. Deliver reports false if
// the channel is full rather than blocking the dispatch engine's mailbox
// goroutine.
type ChannelSink struct {
	Events chan dispatch.WorkerEvent
}

// NewChannelSink builds a ChannelSink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{Events: make(chan dispatch.WorkerEvent, buffer)}
}

func (s *ChannelSink) Deliver(evt dispatch.WorkerEvent) bool {
	select {
	case s.Events <- evt:
		return true
	default:
		return false
	}
}

var (
	_ Sink = LoggingSink{}
	_ Sink = (*ChannelSink)(nil)
)
