// Package router maps the address fragment to one of the demo views.
//
// The set of locations is fixed. Anything else, including near misses such as
// "/self-driven/" or "/SELF-DRIVEN", normalizes to Root:
//
//	router.Normalize("#/parent-driven") // "/parent-driven"
//	router.Normalize("/nope")           // "/"
//
// A Router reads and writes the fragment through a FragmentSource. The
// WebSocket session implements one for browsers; MemorySource backs the
// terminal host and the tests.
package router
