package reactive

import "log/slog"

// maxFlushRounds bounds the number of notify/flush rounds a single flush may
// take. A round only repeats when a flush hook changes state again.
const maxFlushRounds = 64

// Scheduler groups notifications raised during one interaction into a single
// delivery phase. All listener notifications queued inside a batch are
// deduplicated by listener ID and delivered once, when the outermost batch
// completes. The flush hooks run right after delivery.
//
// Batches can be nested. Notifications only fire when the outermost batch
// completes.
//
// Example:
//
//	sched.Run(func() {
//	    page.Increment()
//	    box.Increment()
//	})
//	// every consumer of page or box is marked dirty exactly once
type Scheduler struct {
	depth    int
	pending  []Listener
	onFlush  []func()
	flushing bool
	flushes  uint64
	logger   *slog.Logger
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{logger: slog.Default().With("component", "scheduler")}
}

// SetLogger replaces the scheduler logger.
func (s *Scheduler) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger.With("component", "scheduler")
	}
}

// OnFlush registers fn to run after every delivery phase.
func (s *Scheduler) OnFlush(fn func()) {
	s.onFlush = append(s.onFlush, fn)
}

// Run executes fn as one interaction. It is an alias for Batch that reads
// better at event-dispatch call sites.
func (s *Scheduler) Run(fn func()) {
	s.Batch(fn)
}

// Batch runs fn with notifications deferred until the outermost batch ends.
func (s *Scheduler) Batch(fn func()) {
	s.depth++

	defer func() {
		s.depth--
		if s.depth == 0 {
			s.flush()
		}
	}()

	fn()
}

// InBatch reports whether a batch is open.
func (s *Scheduler) InBatch() bool {
	return s.depth > 0
}

// Flushes returns the number of delivery phases completed so far.
func (s *Scheduler) Flushes() uint64 {
	return s.flushes
}

// queue defers l until the current batch ends.
func (s *Scheduler) queue(l Listener) {
	s.pending = append(s.pending, l)
}

// flush deduplicates and notifies pending listeners, then runs flush hooks.
func (s *Scheduler) flush() {
	if s.flushing {
		// The running flush picks up anything queued by its hooks.
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for round := 0; round < maxFlushRounds && len(s.pending) > 0; round++ {
		updates := s.pending
		s.pending = nil

		seen := make(map[uint64]bool, len(updates))
		for _, listener := range updates {
			id := listener.ID()
			if seen[id] {
				continue
			}
			seen[id] = true
			listener.MarkDirty()
		}

		for _, fn := range s.onFlush {
			fn()
		}
		s.flushes++
	}

	if len(s.pending) > 0 {
		// Left for the next flush.
		s.logger.Warn("flush did not settle",
			"rounds", maxFlushRounds,
			"pending", len(s.pending))
	}
}
