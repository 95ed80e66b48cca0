package reactive

// Owner represents a scope that owns state and cleanups. When an Owner is
// disposed, its child owners are disposed first (last created first), then
// its cleanups run in reverse registration order.
//
// Owners form a hierarchy that mirrors the component tree. Values set on an
// owner are visible to its descendants through Value, which is how a store
// provider makes itself reachable from the subtree it wraps.
type Owner struct {
	id       uint64
	parent   *Owner
	children []*Owner
	cleanups []func()
	values   map[any]any
	disposed bool
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     NextID(),
		parent: parent,
	}
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed
}

// OnCleanup registers fn to run when this Owner is disposed.
// On an already disposed Owner, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// SetValue stores a value on this Owner.
func (o *Owner) SetValue(key, value any) {
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// Value looks key up on this Owner, then on its ancestors.
// Returns nil if no owner in the chain holds the key.
func (o *Owner) Value(key any) any {
	for cur := o; cur != nil; cur = cur.parent {
		if val, ok := cur.values[key]; ok {
			return val
		}
	}
	return nil
}

// Dispose disposes this Owner and all its children and runs cleanups.
// Calling Dispose more than once is a no-op.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.values = nil
}

// removeChild removes a child Owner from this Owner's children.
func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}
