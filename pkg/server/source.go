package server

// wsSource is the fragment source of one session: the browser's address
// fragment, mirrored over the socket. It is only touched by the session's
// event loop.
type wsSource struct {
	fragment string
	subs     map[int]func(string)
	nextID   int
	send     func(Message) error
}

func newWSSource(send func(Message) error) *wsSource {
	return &wsSource{subs: make(map[int]func(string)), send: send}
}

// Fragment implements router.FragmentSource.
func (w *wsSource) Fragment() string {
	return w.fragment
}

// SetFragment pushes a new history entry on the client.
func (w *wsSource) SetFragment(path string) {
	w.write(path, false)
}

// ReplaceFragment rewrites the client's current entry.
func (w *wsSource) ReplaceFragment(path string) {
	w.write(path, true)
}

func (w *wsSource) write(path string, replace bool) {
	if path == w.fragment {
		return
	}
	w.fragment = path
	// A failed send closes the session.
	_ = w.send(Message{T: MsgFragment, Fragment: path, Replace: replace})
}

// OnFragmentChange implements router.FragmentSource.
func (w *wsSource) OnFragmentChange(fn func(string)) (cancel func()) {
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

// receive applies a fragment reported by the client. Echoes of our own
// writes are dropped.
func (w *wsSource) receive(fragment string) {
	if fragment == w.fragment {
		return
	}
	w.fragment = fragment
	for _, fn := range w.subs {
		fn(fragment)
	}
}
