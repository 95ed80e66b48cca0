// Package store provides the shared box store used by the context-driven
// demo.
//
// A BoxStore is created by Provide for exactly one subtree and lives as long
// as the owner it is provided on. Components below that owner reach it with
// Use; anywhere else Use fails with ErrNotProvided.
//
// Subscribers are notified on every change of any field, so readers of box2
// re-render when only page changes.
package store

import (
	"errors"

	"github.com/vango-dev/rerender/pkg/reactive"
)

// ErrNotProvided is returned when the store is accessed outside the subtree
// of an active provider.
var ErrNotProvided = errors.New("store: box store used outside its provider")

// Scope is anything that sits in the owner hierarchy, such as a component
// instance.
type Scope interface {
	Owner() *reactive.Owner
}

// ListenerScope is a Scope that can be notified, such as a component
// instance.
type ListenerScope interface {
	Scope
	reactive.Listener
}

// storeKey is the owner value key the provider registers under.
type storeKey struct{}

// Snapshot is an immutable view of the store. Every change produces a new
// snapshot with a higher Version; the increment functions are shared by all
// snapshots of one store.
type Snapshot struct {
	Version int
	Page    int
	Box1    int
	Box2    int

	IncrementPage func()
	IncrementBox1 func()
	IncrementBox2 func()
}

// BoxStore holds the page, box1 and box2 counters of one provider subtree.
type BoxStore struct {
	sched  *reactive.Scheduler
	page   *reactive.Counter
	box1   *reactive.Counter
	box2   *reactive.Counter
	subs   reactive.Subscribers
	snap   *Snapshot
	active bool

	incPage, incBox1, incBox2 func()
}

// Provide creates a store bound to owner and makes it visible to every scope
// below owner. The store is disposed together with owner.
func Provide(owner *reactive.Owner, sched *reactive.Scheduler) *BoxStore {
	s := &BoxStore{
		sched:  sched,
		page:   reactive.NewCounter(nil),
		box1:   reactive.NewCounter(nil),
		box2:   reactive.NewCounter(nil),
		active: true,
	}
	s.incPage = func() { s.bump(s.page) }
	s.incBox1 = func() { s.bump(s.box1) }
	s.incBox2 = func() { s.bump(s.box2) }
	s.publish()

	owner.SetValue(storeKey{}, s)
	owner.OnCleanup(s.dispose)
	return s
}

// Use returns the store provided above scope.
func Use(scope Scope) (*BoxStore, error) {
	if scope == nil || scope.Owner() == nil {
		return nil, ErrNotProvided
	}
	s, _ := scope.Owner().Value(storeKey{}).(*BoxStore)
	if s == nil || !s.active {
		return nil, ErrNotProvided
	}
	return s, nil
}

// MustUse is like Use but panics with ErrNotProvided.
func MustUse(scope Scope) *BoxStore {
	s, err := Use(scope)
	if err != nil {
		panic(err)
	}
	return s
}

// Snapshot returns the current snapshot.
func (s *BoxStore) Snapshot() (*Snapshot, error) {
	if !s.active {
		return nil, ErrNotProvided
	}
	return s.snap, nil
}

// Active reports whether the providing owner is still alive.
func (s *BoxStore) Active() bool {
	return s.active
}

// Subscribe registers l for every store change and returns a function that
// removes it again. Subscribing to a disposed store is a no-op.
func (s *BoxStore) Subscribe(l reactive.Listener) (unsubscribe func()) {
	if !s.active {
		return func() {}
	}
	s.subs.Subscribe(l)
	return func() { s.subs.Unsubscribe(l) }
}

// Subscribers returns the number of registered listeners.
func (s *BoxStore) Subscribers() int {
	return s.subs.Len()
}

// bump increments one field and publishes a new snapshot to everybody.
func (s *BoxStore) bump(field *reactive.Counter) {
	if !s.active {
		return
	}
	field.Increment()
	s.publish()
	s.subs.Notify(s.sched)
}

func (s *BoxStore) publish() {
	version := 0
	if s.snap != nil {
		version = s.snap.Version + 1
	}
	s.snap = &Snapshot{
		Version:       version,
		Page:          s.page.Read(),
		Box1:          s.box1.Read(),
		Box2:          s.box2.Read(),
		IncrementPage: s.incPage,
		IncrementBox1: s.incBox1,
		IncrementBox2: s.incBox2,
	}
}

func (s *BoxStore) dispose() {
	s.active = false
	s.subs.Clear()
}
