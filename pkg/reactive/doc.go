// Package reactive provides the state primitives the demo views are built on.
//
// The package is deliberately explicit: there is no ambient tracking context.
// A state owner (a component instance or a store) creates a Counter, and
// consumers register themselves on it with Subscribe. Every change notifies
// exactly the registered listeners.
//
// # Core Types
//
// Counter is a unit of mutable integer state:
//
//	count := reactive.NewCounter(sched)
//	count.Subscribe(listener)
//	count.Increment() // listener.MarkDirty() is delivered
//	count.Read()      // 1
//
// Probe counts how many times its owner re-computed its view:
//
//	var probe reactive.Probe
//	probe.Tick() // 1
//
// Callback is a function value with pointer identity. Two callbacks are the
// same only if they are the same pointer, which is what memoized children
// compare when deciding whether their inputs changed.
//
// # Scheduling
//
// A Scheduler batches notifications raised during one interaction:
//
//	sched.Run(func() {
//	    a.Increment()
//	    b.Increment()
//	}) // each affected listener is marked dirty once, then OnFlush runs
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A Scheduler and every
// primitive bound to it belong to a single goroutine (one session event loop).
package reactive
