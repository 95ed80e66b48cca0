// Package vdom provides the in-memory view tree the demo components render.
//
// A VNode tree is built with variadic element functions:
//
//	Div(Class("box"), OnClick(handler),
//	    P(Textf("Render Count: %d", renders)),
//	    P(Textf("Click Count: %d", count)),
//	)
//
// Trees live on the server. Hosts turn them into HTML (package render) or
// terminal output (internal/tui); neither host needs diffs because every
// flush ships a full snapshot of a small tree.
//
// # Components
//
// A KindComponent node defers to its Component's Render method at output
// time. Memoized component instances return their cached tree from Render,
// so a parent that skipped re-rendering a child still emits the child's
// latest output.
//
// # Handlers
//
// Event props hold a Handler. AssignHIDs gives every interactive element a
// hydration ID so a host can route a click on "h4" back to the handler.
package vdom
