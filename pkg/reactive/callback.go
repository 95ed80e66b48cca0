package reactive

// Callback is a function with stable identity.
//
// Go func values cannot be compared, so props that carry plain funcs can
// never be proven unchanged. A *Callback created once by its owner and passed
// down on every render compares equal to itself, which lets memoized children
// skip re-computation.
type Callback struct {
	fn func()
}

// NewCallback wraps fn. Create it once per owner, not once per render.
func NewCallback(fn func()) *Callback {
	return &Callback{fn: fn}
}

// Call invokes the wrapped function. Calling a nil Callback is a no-op.
func (c *Callback) Call() {
	if c == nil || c.fn == nil {
		return
	}
	c.fn()
}

// Same reports whether a and b are the same callback.
func Same(a, b *Callback) bool {
	return a == b
}

// IsNil reports whether c has nothing to call. Element builders use it to
// leave an element non-interactive when an optional callback is absent.
func (c *Callback) IsNil() bool {
	return c == nil || c.fn == nil
}
