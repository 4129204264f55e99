package cluster

import "io"

// Subscription is a subscription to cluster membership changes.
type Subscription struct {
	InitialMembers []Executor        // the members at the time the subscription started
	Updates        chan ExecutorUpdates // updates as they happen
	Closer         io.Closer         // how to stop subscribing
}

// subscriber buffers updates between the cluster's loop goroutine and a
// slow consumer, so a subscriber that falls behind never blocks the
// cluster's own update processing.
type subscriber struct {
	inCh  chan ExecutorUpdates
	outCh chan ExecutorUpdates
	cl    closable
	queue ExecutorUpdates
}

// closable is the subset of *simpleCluster a subscriber needs to
// unregister itself, kept as an interface so subscription.go doesn't
// depend on simpleCluster's exact fields.
type closable interface {
	closeSubscription(s *subscriber)
}

func makeSubscription(initial []Executor, cl closable, inCh chan ExecutorUpdates) Subscription {
	s := &subscriber{
		inCh:  inCh,
		outCh: make(chan ExecutorUpdates),
		cl:    cl,
		queue: nil,
	}
	go s.loop()
	return Subscription{
		InitialMembers: initial,
		Updates:        s.outCh,
		Closer:         s,
	}
}

func (s *subscriber) Close() error {
	s.cl.closeSubscription(s)
	return nil
}

func (s *subscriber) loop() {
	for s.inCh != nil || len(s.queue) > 0 {
		var outCh chan ExecutorUpdates
		var outgoing ExecutorUpdates
		if len(s.queue) > 0 {
			outCh = s.outCh
			outgoing = s.queue
		}
		select {
		case updates, ok := <-s.inCh:
			if !ok {
				s.inCh = nil
				continue
			}
			s.queue = append(s.queue, updates...)
		case outCh <- outgoing:
			s.queue = nil
		}
	}
	close(s.outCh)
}
