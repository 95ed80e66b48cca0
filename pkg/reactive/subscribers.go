package reactive

// Subscribers is an ordered listener list with ID deduplication.
// It is embedded by every state owner that broadcasts changes.
type Subscribers struct {
	subs []Listener
}

// Subscribe adds l to the list. It reports false when a listener with the
// same ID is already subscribed.
func (s *Subscribers) Subscribe(l Listener) bool {
	if l == nil {
		return false
	}

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return false
		}
	}

	s.subs = append(s.subs, l)
	return true
}

// Unsubscribe removes l from the list.
func (s *Subscribers) Unsubscribe(l Listener) {
	if l == nil {
		return
	}

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribed listeners.
func (s *Subscribers) Len() int {
	return len(s.subs)
}

// Clear drops every listener.
func (s *Subscribers) Clear() {
	s.subs = nil
}

// Notify marks every subscriber dirty through sched. With a nil scheduler
// the listeners are marked immediately.
//
// The list is copied before notification so listeners may unsubscribe
// while being notified.
func (s *Subscribers) Notify(sched *Scheduler) {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)

	if sched == nil {
		for _, sub := range subs {
			sub.MarkDirty()
		}
		return
	}

	sched.Batch(func() {
		for _, sub := range subs {
			sched.queue(sub)
		}
	})
}
