// Package component mounts and re-renders component instances.
//
// An instance is created from a Setup function. Setup runs once per mount and
// returns the instance's RenderFunc, so state created in Setup (counters,
// callbacks, handles) lives exactly as long as the instance:
//
//	func Box(inst *component.Instance) component.RenderFunc {
//	    count := inst.NewCounter()
//	    return func(p component.Props) *vdom.VNode {
//	        return vdom.Div(vdom.OnClick(count.Increment), vdom.Textf("%d", count.Read()))
//	    }
//	}
//
// Every render ticks the instance's probe exactly once.
//
// # Re-computation
//
// State changes mark instances dirty through the session's Scheduler. When
// the scheduler flushes, the Runtime re-renders dirty instances from the top
// of the tree down. A parent re-rendering re-renders its plain children
// with it; memoized children (MemoChild) are skipped when their props are
// Equal to the previous ones and they are not dirty themselves.
//
// Props compare ints, strings and bools by value and *reactive.Callback and
// *Handle by identity. Plain func values never compare equal, so passing a
// fresh closure on every render defeats memoization.
package component
