package store

// Consume looks the store up from scope, subscribes scope's listener to it
// until scope is disposed, and returns the store.
//
// The scope must also be a reactive.Listener (component instances are); the
// listener is what the store marks dirty on every change.
func Consume(scope ListenerScope) (*BoxStore, error) {
	s, err := Use(scope)
	if err != nil {
		return nil, err
	}
	scope.Owner().OnCleanup(s.Subscribe(scope))
	return s, nil
}

// MustConsume is like Consume but panics with ErrNotProvided.
func MustConsume(scope ListenerScope) *BoxStore {
	s, err := Consume(scope)
	if err != nil {
		panic(err)
	}
	return s
}

// Field pairs one store value with its increment function.
type Field struct {
	Value     int
	Increment func()
}

// UsePageCount returns the page field of the current snapshot.
func UsePageCount(s *BoxStore) (Field, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Field{}, err
	}
	return Field{Value: snap.Page, Increment: snap.IncrementPage}, nil
}

// UseBox1 returns the box1 field of the current snapshot.
func UseBox1(s *BoxStore) (Field, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Field{}, err
	}
	return Field{Value: snap.Box1, Increment: snap.IncrementBox1}, nil
}

// UseBox2 returns the box2 field of the current snapshot.
func UseBox2(s *BoxStore) (Field, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Field{}, err
	}
	return Field{Value: snap.Box2, Increment: snap.IncrementBox2}, nil
}
