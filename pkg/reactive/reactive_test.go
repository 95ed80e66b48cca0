package reactive

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

type testListener struct {
	id    uint64
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: NextID()}
}

func (l *testListener) MarkDirty() { l.dirty++ }
func (l *testListener) ID() uint64 { return l.id }

func TestCounterStartsAtZero(t *testing.T) {
	c := NewCounter(nil)
	if c.Read() != 0 {
		t.Errorf("Read() = %d, want 0", c.Read())
	}
}

func TestCounterIncrement(t *testing.T) {
	c := NewCounter(NewScheduler())
	for i := 1; i <= 25; i++ {
		c.Increment()
		if c.Read() != i {
			t.Fatalf("after %d increments Read() = %d", i, c.Read())
		}
	}
}

func TestCounterIsolation(t *testing.T) {
	sched := NewScheduler()
	a := NewCounter(sched)
	b := NewCounter(sched)

	la := newTestListener()
	lb := newTestListener()
	a.Subscribe(la)
	b.Subscribe(lb)

	a.Increment()
	a.Increment()

	if la.dirty != 2 {
		t.Errorf("a listener dirty = %d, want 2", la.dirty)
	}
	if lb.dirty != 0 {
		t.Errorf("b listener dirty = %d, want 0", lb.dirty)
	}
	if b.Read() != 0 {
		t.Errorf("b.Read() = %d, want 0", b.Read())
	}
}

func TestCounterUnsubscribe(t *testing.T) {
	c := NewCounter(nil)
	l := newTestListener()
	unsub := c.Subscribe(l)
	c.Subscribe(l)

	if c.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1 (dedupe by ID)", c.Subscribers())
	}

	c.Increment()
	unsub()
	c.Increment()

	if l.dirty != 1 {
		t.Errorf("dirty = %d, want 1", l.dirty)
	}
	if c.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", c.Subscribers())
	}
}

func TestSchedulerBatchDeduplicates(t *testing.T) {
	sched := NewScheduler()
	a := NewCounter(sched)
	b := NewCounter(sched)
	l := newTestListener()
	a.Subscribe(l)
	b.Subscribe(l)

	flushes := 0
	sched.OnFlush(func() { flushes++ })

	sched.Run(func() {
		a.Increment()
		b.Increment()
		a.Increment()
		if l.dirty != 0 {
			t.Errorf("notified inside batch: dirty = %d", l.dirty)
		}
	})

	if l.dirty != 1 {
		t.Errorf("dirty = %d, want 1", l.dirty)
	}
	if flushes != 1 {
		t.Errorf("flushes = %d, want 1", flushes)
	}
	if sched.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", sched.Flushes())
	}
}

func TestSchedulerNestedBatch(t *testing.T) {
	sched := NewScheduler()
	c := NewCounter(sched)
	l := newTestListener()
	c.Subscribe(l)

	sched.Batch(func() {
		c.Increment()
		sched.Batch(func() {
			c.Increment()
		})
		if !sched.InBatch() {
			t.Error("InBatch() = false inside outer batch")
		}
		if l.dirty != 0 {
			t.Errorf("inner batch notified: dirty = %d", l.dirty)
		}
	})

	if sched.InBatch() {
		t.Error("InBatch() = true after batch")
	}
	if l.dirty != 1 {
		t.Errorf("dirty = %d, want 1", l.dirty)
	}
}

func TestSchedulerFlushHookCanRequeue(t *testing.T) {
	sched := NewScheduler()
	a := NewCounter(sched)
	b := NewCounter(sched)
	la := newTestListener()
	lb := newTestListener()
	a.Subscribe(la)
	b.Subscribe(lb)

	once := false
	sched.OnFlush(func() {
		if !once {
			once = true
			b.Increment()
		}
	})

	sched.Run(a.Increment)

	if la.dirty != 1 || lb.dirty != 1 {
		t.Errorf("dirty = (%d, %d), want (1, 1)", la.dirty, lb.dirty)
	}
	if sched.Flushes() != 2 {
		t.Errorf("Flushes() = %d, want 2", sched.Flushes())
	}
}

func TestSchedulerWarnsWhenFlushDoesNotSettle(t *testing.T) {
	var logs bytes.Buffer
	sched := NewScheduler()
	sched.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	a := NewCounter(sched)
	a.Subscribe(newTestListener())
	sched.OnFlush(a.Increment)

	sched.Run(a.Increment)

	if sched.Flushes() != maxFlushRounds {
		t.Errorf("Flushes() = %d, want %d", sched.Flushes(), maxFlushRounds)
	}
	out := logs.String()
	for _, want := range []string{"level=WARN", "flush did not settle", "pending=1", "component=scheduler"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSchedulerNoFlushWithoutNotifications(t *testing.T) {
	sched := NewScheduler()
	flushes := 0
	sched.OnFlush(func() { flushes++ })

	sched.Run(func() {})

	if flushes != 0 {
		t.Errorf("flushes = %d, want 0", flushes)
	}
}

func TestProbe(t *testing.T) {
	var p Probe
	if p.Value() != 0 {
		t.Errorf("Value() = %d, want 0", p.Value())
	}
	for i := 1; i <= 3; i++ {
		if got := p.Tick(); got != i {
			t.Errorf("Tick() = %d, want %d", got, i)
		}
	}
	if p.Value() != 3 {
		t.Errorf("Value() = %d, want 3", p.Value())
	}
}

func TestCallbackIdentity(t *testing.T) {
	calls := 0
	a := NewCallback(func() { calls++ })
	b := NewCallback(func() { calls++ })

	if !Same(a, a) {
		t.Error("Same(a, a) = false")
	}
	if Same(a, b) {
		t.Error("Same(a, b) = true")
	}

	a.Call()
	b.Call()
	var nilCb *Callback
	nilCb.Call()

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
