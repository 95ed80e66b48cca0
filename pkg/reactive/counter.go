package reactive

// Counter is a non-negative integer cell owned by exactly one state owner.
// It starts at 0 and only ever grows by one.
//
// Increment notifies the counter's own subscribers and nobody else: two
// counters never share consumers unless a consumer subscribed to both.
type Counter struct {
	id    uint64
	value int
	subs  Subscribers
	sched *Scheduler
}

// NewCounter creates a counter whose notifications are routed through sched.
// A nil scheduler delivers notifications synchronously.
func NewCounter(sched *Scheduler) *Counter {
	return &Counter{
		id:    NextID(),
		sched: sched,
	}
}

// Read returns the current value.
func (c *Counter) Read() int {
	return c.value
}

// Increment adds one and notifies subscribers.
func (c *Counter) Increment() {
	c.value++
	c.subs.Notify(c.sched)
}

// Subscribe registers l for change notifications and returns a function
// that removes it again.
func (c *Counter) Subscribe(l Listener) (unsubscribe func()) {
	c.subs.Subscribe(l)
	return func() { c.subs.Unsubscribe(l) }
}

// Subscribers returns the number of registered listeners.
func (c *Counter) Subscribers() int {
	return c.subs.Len()
}

// ID returns the unique identifier for this counter.
func (c *Counter) ID() uint64 {
	return c.id
}
