package router

// FragmentSource is the host's address fragment: location.hash in a
// browser, an in-memory history in the terminal host.
type FragmentSource interface {
	// Fragment returns the current fragment without the leading '#'.
	Fragment() string

	// SetFragment writes the fragment as a new history entry. Writing the
	// current value is a no-op.
	SetFragment(path string)

	// OnFragmentChange registers fn for changes made outside SetFragment
	// (address bar edits, back/forward) and returns a function that
	// removes it again.
	OnFragmentChange(fn func(string)) (cancel func())
}

// Replacer is implemented by sources that can overwrite the current history
// entry instead of pushing a new one.
type Replacer interface {
	ReplaceFragment(path string)
}

// MemorySource is an in-memory FragmentSource with browser-like history.
// It is not safe for concurrent use.
type MemorySource struct {
	history []string
	pos     int
	nextID  int
	subs    map[int]func(string)
}

// NewMemorySource creates a source whose only history entry is initial.
func NewMemorySource(initial string) *MemorySource {
	return &MemorySource{
		history: []string{initial},
		subs:    make(map[int]func(string)),
	}
}

// Fragment implements FragmentSource.
func (m *MemorySource) Fragment() string {
	return m.history[m.pos]
}

// SetFragment implements FragmentSource. Forward history is discarded.
func (m *MemorySource) SetFragment(path string) {
	if path == m.Fragment() {
		return
	}
	m.history = append(m.history[:m.pos+1], path)
	m.pos++
}

// ReplaceFragment implements Replacer.
func (m *MemorySource) ReplaceFragment(path string) {
	m.history[m.pos] = path
}

// OnFragmentChange implements FragmentSource.
func (m *MemorySource) OnFragmentChange(fn func(string)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

// Edit simulates the user typing a new fragment into the address bar.
func (m *MemorySource) Edit(path string) {
	if path == m.Fragment() {
		return
	}
	m.SetFragment(path)
	m.emit()
}

// Back moves one entry back in history. It reports false at the start.
func (m *MemorySource) Back() bool {
	if m.pos == 0 {
		return false
	}
	m.pos--
	m.emit()
	return true
}

// Forward moves one entry forward in history. It reports false at the end.
func (m *MemorySource) Forward() bool {
	if m.pos == len(m.history)-1 {
		return false
	}
	m.pos++
	m.emit()
	return true
}

// History returns a copy of the history entries and the current position.
func (m *MemorySource) History() ([]string, int) {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out, m.pos
}

func (m *MemorySource) emit() {
	frag := m.Fragment()
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			fn(frag)
		}
	}
}
