package cluster

// Cluster tracks task executor membership and notifies subscribers of
// changes. resource_cluster.go builds dispatch.ResourceCluster on top of
// one of these plus a placement policy.
type Cluster interface {
	// Members returns the current members, or an error if they can't be
	// determined.
	Members() ([]Executor, error)
	// Subscribe subscribes to membership changes.
	Subscribe() (Subscription, error)
	// Close stops monitoring this cluster.
	Close() error
}

// simpleCluster serializes membership reads, writes, and subscription
// bookkeeping through a single select loop, the same pattern the dispatch
// engine itself uses for its mailbox.
type simpleCluster struct {
	inCh  chan ExecutorUpdates
	reqCh chan interface{}

	members []Executor
	subs    []chan ExecutorUpdates
}

// NewCluster starts a Cluster seeded with initial membership, applying
// every batch of updates that arrives on updateCh.
func NewCluster(initial []Executor, updateCh chan ExecutorUpdates) Cluster {
	c := &simpleCluster{
		inCh:    updateCh,
		reqCh:   make(chan interface{}),
		members: initial,
	}
	go c.loop()
	return c
}

func (c *simpleCluster) Members() ([]Executor, error) {
	ch := make(chan []Executor)
	c.reqCh <- ch
	return <-ch, nil
}

func (c *simpleCluster) Subscribe() (Subscription, error) {
	ch := make(chan Subscription)
	c.reqCh <- ch
	return <-ch, nil
}

func (c *simpleCluster) Close() error {
	close(c.reqCh)
	return nil
}

func (c *simpleCluster) done() bool {
	return c.inCh == nil && c.reqCh == nil
}

func (c *simpleCluster) loop() {
	for !c.done() {
		select {
		case updates, ok := <-c.inCh:
			if !ok {
				c.inCh = nil
				continue
			}
			c.apply(updates)
			for _, sub := range c.subs {
				sub <- updates
			}
		case req, ok := <-c.reqCh:
			if !ok {
				c.reqCh = nil
				continue
			}
			c.handleReq(req)
		}
	}
	for _, sub := range c.subs {
		close(sub)
	}
}

func (c *simpleCluster) apply(updates ExecutorUpdates) {
	for _, u := range updates {
		switch u.UpdateType {
		case Added:
			c.members = append(c.members, u.Executor)
		case Removed:
			for i, e := range c.members {
				if e.Id() == u.Id {
					c.members = append(c.members[0:i], c.members[i+1:]...)
					break
				}
			}
		}
	}
}

func (c *simpleCluster) handleReq(req interface{}) {
	switch req := req.(type) {
	case chan []Executor:
		req <- append([]Executor{}, c.members...)
	case chan Subscription:
		ch := make(chan ExecutorUpdates)
		s := makeSubscription(append([]Executor{}, c.members...), c, ch)
		c.subs = append(c.subs, ch)
		req <- s
	case chan ExecutorUpdates:
		for i, sub := range c.subs {
			if sub == req {
				c.subs = append(c.subs[0:i], c.subs[i+1:]...)
				close(req)
				break
			}
		}
	}
}

func (c *simpleCluster) closeSubscription(s *subscriber) {
	c.reqCh <- s.inCh
}
