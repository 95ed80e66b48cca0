package vdom

// Handler is an invocable event handler. *reactive.Callback satisfies it,
// which keeps callback identity intact from the owner down to the element.
type Handler interface {
	Call()
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func()

// Call implements Handler.
func (f HandlerFunc) Call() {
	if f != nil {
		f()
	}
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string  // "onclick", etc.
	Handler Handler // nil means no handler
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: toHandler(handler)}
}

// toHandler normalizes the accepted handler shapes.
func toHandler(handler any) Handler {
	switch h := handler.(type) {
	case nil:
		return nil
	case Handler:
		if isNilHandler(h) {
			return nil
		}
		return h
	case func():
		if h == nil {
			return nil
		}
		return HandlerFunc(h)
	default:
		return nil
	}
}

// isNilHandler catches typed nil pointers stored in the interface.
func isNilHandler(h Handler) bool {
	if f, ok := h.(HandlerFunc); ok {
		return f == nil
	}
	if n, ok := h.(interface{ IsNil() bool }); ok {
		return n.IsNil()
	}
	return false
}

// OnClick handles click events. handler may be a func(), a Handler, or nil;
// a nil handler leaves the element non-interactive.
func OnClick(handler any) EventHandler { return event("click", handler) }
