package demo

import (
	"io/fs"

	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/store"
)

// Source is one code listing shown by an explainer. Files are read from FS,
// or from this package's own sources when FS is nil.
type Source struct {
	Title string
	File  string
	FS    fs.FS
}

// Pattern is the display content of one state-ownership pattern.
type Pattern struct {
	Key            string
	Title          string
	Demo           router.Location
	Code           router.Location
	Description    string
	RenderBehavior string
	Pros           []string
	Cons           []string
	WhenRenders    []string
	Structure      string
	Sources        []Source
}

// Patterns lists the demonstrated patterns in display order.
var Patterns = []Pattern{
	{
		Key:   "self-driven",
		Title: "Self-Driven Components",
		Demo:  router.SelfDriven,
		Code:  router.SelfDrivenCode,
		Description: "Best render performance. Each cell owns its counter and only re-renders " +
			"when that counter changes. Siblings and the page are never affected.",
		RenderBehavior: "Isolated re-renders. When a cell increments its count, only that cell " +
			"re-renders. The page and the sibling cell keep their render counts.",
		Pros: []string{
			"Minimal re-renders - only the affected cell updates",
			"MemoChild always skips: the props never change",
			"Siblings never re-render on state changes",
			"The page doesn't re-render when cells update",
			"Best scalability for many independent cells",
		},
		Cons: []string{
			"Trigger handles add complexity for cross-cell updates",
			"The page cannot read a cell's current count",
			"Harder to build features that need shared state",
			"State is scattered across cells",
		},
		WhenRenders: []string{
			"Page: only when the page's own count changes",
			"Box1: only when Box1's private count changes",
			"Box2: only when Box2's private count changes",
			"Cross-trigger through the handle: only the target box re-renders",
		},
		Structure: `SelfDrivenPage
├── NewCounter() ─────── page count only
├── box-main ─────────── displays page count
├── SelfCell (memo) ──── own NewCounter()
│   └── props: increase = handle.Callback()
└── SelfCell (memo) ──── own NewCounter()
    └── props: ref = handle, bound in Setup`,
		Sources: []Source{
			{Title: "Page Assembly", File: "self_driven.go"},
			{Title: "Cell", File: "cell_self.go"},
		},
	},
	{
		Key:   "parent-driven",
		Title: "Parent-Driven Components",
		Demo:  router.ParentDriven,
		Code:  router.ParentDrivenCode,
		Description: "Moderate render performance. The page re-renders on every change, but " +
			"memoized cells with stable callbacks skip when their props are unchanged.",
		RenderBehavior: "The page always re-renders on any state change. Cells mounted with " +
			"MemoChild skip the render if their own props are Equal. Callbacks must be created " +
			"once in Setup to keep their identity.",
		Pros: []string{
			"MemoChild prevents cell re-renders when props are unchanged",
			"Stable *reactive.Callback values keep props Equal",
			"Predictable render behavior - easy to optimize",
			"The page sees all state, which helps debugging",
		},
		Cons: []string{
			"The page ALWAYS re-renders on any state change",
			"Every callback prop must be created once, in Setup",
			"Forgetting MemoChild or stable callbacks cascades re-renders",
			"More state means more page re-renders",
			"Inline func props break memoization",
		},
		WhenRenders: []string{
			"Page: re-renders on ANY state change (page, box1 or box2)",
			"Box1: only when box1 changes (MemoChild + stable callbacks)",
			"Box2: only when box2 changes (MemoChild + stable callbacks)",
			"With inline funcs as props: every cell re-renders every time",
		},
		Structure: `ParentDrivenPage
├── NewCounter() page
├── NewCounter() box1
├── NewCounter() box2
├── handleBox1Increment ← NewCallback, once
├── handleBox2Increment ← NewCallback, once
├── box-main ─────────── displays page count
├── ParentCell (memo)
│   └── props: count, increaseSelf, increase
└── ParentCell (memo)
    └── props: count, increaseSelf`,
		Sources: []Source{
			{Title: "Page Assembly", File: "parent_driven.go"},
			{Title: "Cell", File: "cell_parent.go"},
		},
	},
	{
		Key:   "context-driven",
		Title: "Context-Driven Components",
		Demo:  router.ContextDriven,
		Code:  router.ContextDrivenCode,
		Description: "Worst render performance with a single store. EVERY consumer re-renders " +
			"when ANY field changes, regardless of which field it reads.",
		RenderBehavior: "Every store consumer re-renders on any store change. A cell that only " +
			"reads one field still re-renders when another field changes, because the whole " +
			"snapshot is replaced.",
		Pros: []string{
			"No prop drilling",
			"Clean cell interfaces",
			"Can be split into several stores for isolation",
			"Good for rarely changing data (themes, auth)",
		},
		Cons: []string{
			"ALL consumers re-render on ANY store change",
			"MemoChild doesn't help - the store bypasses it",
			"A single store gives the worst re-render performance",
			"Several stores are needed to isolate re-renders",
			"Not suited to frequently updating state",
		},
		WhenRenders: []string{
			"Page content: re-renders on ANY store change",
			"Box1: re-renders on ANY store change (not just box1)",
			"Box2: re-renders on ANY store change (not just box2)",
			"All consumers re-render together - no isolation",
		},
		Structure: `ContextDrivenPage
└── store.Provide ──────── owns all state
    ├── page, box1, box2
    ├── IncrementPage, IncrementBox1, IncrementBox2
    └── content (re-renders on any change)
        ├── UsePageCount() ─── still re-renders on box changes
        ├── SharedCell1 (memo, re-renders on any change)
        │   └── UseBox1(), UseBox2()
        └── SharedCell2 (memo, re-renders on any change)
            └── UseBox2()`,
		Sources: []Source{
			{Title: "Page Assembly", File: "context_driven.go"},
			{Title: "Cells", File: "cell_shared.go"},
			{Title: "Store", File: "store.go", FS: store.Files},
		},
	},
}

// ComparisonRow is one line of the overview table.
type ComparisonRow struct {
	Aspect                string
	Self, Parent, Context string
}

// Comparison is the overview's summary table.
var Comparison = []ComparisonRow{
	{"State Ownership", "Distributed", "Centralized (page)", "Centralized (store)"},
	{"Re-render Scope", "Only the affected cell", "Page + changed cells", "All store consumers"},
	{"Cell Coupling", "Low", "Medium", "High"},
	{"Cross-cell Sync", "Via trigger handles", "Page mediates", "Shared store"},
	{"Best Use Case", "Independent widgets", "Simple hierarchies", "Deep nesting, themes"},
	{"Performance Rating", "★★★ Best", "★★ Good", "★ Worst"},
	{"MemoChild Effectiveness", "Perfect", "With stable callbacks", "Doesn't help"},
}

// PatternFor returns the pattern whose demo or explainer renders at loc.
func PatternFor(loc router.Location) (Pattern, bool) {
	for _, p := range Patterns {
		if p.Demo == loc || p.Code == loc {
			return p, true
		}
	}
	return Pattern{}, false
}
