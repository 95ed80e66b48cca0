package component

import "github.com/vango-dev/rerender/pkg/reactive"

// Handle is a capability to invoke one instance's private increment without
// reading its state.
//
// A handle is created unbound by whoever hands it out, then bound by the
// target instance in its Setup. It is invalidated when that instance
// unmounts. Triggering an unbound or invalidated handle does nothing.
type Handle struct {
	inst     *Instance
	fn       func()
	callback *reactive.Callback
}

// NewHandle creates an unbound handle.
func NewHandle() *Handle {
	return &Handle{}
}

// Bind points the handle at inst. fn is what Trigger forwards to. Binding to
// an unmounted instance leaves the handle unbound.
func (h *Handle) Bind(inst *Instance, fn func()) {
	if inst == nil || fn == nil || inst.State() == Unmounted {
		return
	}
	h.inst = inst
	h.fn = fn
	inst.Owner().OnCleanup(func() {
		if h.inst == inst {
			h.inst = nil
			h.fn = nil
		}
	})
}

// Bound reports whether the handle currently targets a mounted instance.
func (h *Handle) Bound() bool {
	return h != nil && h.fn != nil
}

// Trigger invokes the bound increment, if any.
func (h *Handle) Trigger() {
	h.TryTrigger()
}

// TryTrigger invokes the bound increment and reports whether it ran.
func (h *Handle) TryTrigger() bool {
	if !h.Bound() {
		return false
	}
	h.fn()
	return true
}

// Callback returns a stable callback that triggers the handle. The same
// pointer is returned on every call.
func (h *Handle) Callback() *reactive.Callback {
	if h.callback == nil {
		h.callback = reactive.NewCallback(h.Trigger)
	}
	return h.callback
}
