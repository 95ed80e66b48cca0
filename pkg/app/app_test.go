package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/vdom"
	"github.com/vango-dev/rerender/pkg/vtest"
)

func newApp(t *testing.T, fragment string, opts ...Option) (*App, *router.MemorySource) {
	t.Helper()
	src := router.NewMemorySource(fragment)
	a := New(src, opts...)
	t.Cleanup(a.Close)
	return a, src
}

func click(t *testing.T, a *App, node *vdom.VNode) {
	t.Helper()
	h := node.Handler("click")
	if h == nil {
		t.Fatalf("<%s> has no click handler", node.Tag)
	}
	a.Dispatch(h.Call)
}

func TestInitialFragmentSelectsView(t *testing.T) {
	tests := []struct {
		fragment string
		view     string
		location router.Location
	}{
		{"", "overview", router.Root},
		{"/self-driven", "self-driven", router.SelfDriven},
		{"#/parent-driven/code", "parent-driven-code", router.ParentDrivenCode},
		{"/nonexistent", "overview", router.Root},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			a, _ := newApp(t, tt.fragment)
			if a.ViewName() != tt.view {
				t.Errorf("ViewName() = %q, want %q", a.ViewName(), tt.view)
			}
			if a.Location() != tt.location {
				t.Errorf("Location() = %q, want %q", a.Location(), tt.location)
			}
			vtest.ExpectContains(t, a.Render(), `data-location="`+string(tt.location)+`"`)
		})
	}
}

func TestNavigateUnknownRendersOverview(t *testing.T) {
	a, src := newApp(t, "/self-driven")

	a.Navigate("/nonexistent")

	if a.Location() != router.Root {
		t.Errorf("Location() = %q, want /", a.Location())
	}
	if src.Fragment() != "/" {
		t.Errorf("Fragment() = %q, want /", src.Fragment())
	}
	vtest.ExpectContains(t, a.Render(), "Re-render Performance Summary")
}

func TestExplainerBackActionRestoresRoot(t *testing.T) {
	a, _ := newApp(t, "")

	a.Navigate("/self-driven/code")
	if a.ViewName() != "self-driven-code" {
		t.Fatalf("ViewName() = %q, want self-driven-code", a.ViewName())
	}
	vtest.ExpectContains(t, a.Render(), "Self-Driven Components - Code")

	click(t, a, vtest.FindByText(a.Render(), "← Back to Overview"))

	if a.Location() != router.Root {
		t.Errorf("Location() = %q, want /", a.Location())
	}
	if a.ViewName() != "overview" {
		t.Errorf("ViewName() = %q, want overview", a.ViewName())
	}
}

func TestOverviewLinksReachEveryPattern(t *testing.T) {
	a, src := newApp(t, "/")

	demos := vdom.FindAll(a.Render(), func(n *vdom.VNode) bool { return n.HasClass("navigate-btn") })
	if len(demos) != 3 {
		t.Fatalf("found %d demo buttons, want 3", len(demos))
	}
	click(t, a, demos[2])
	if a.Location() != router.ContextDriven {
		t.Errorf("Location() = %q, want %q", a.Location(), router.ContextDriven)
	}
	if src.Fragment() != string(router.ContextDriven) {
		t.Errorf("Fragment() = %q", src.Fragment())
	}

	click(t, a, vtest.FindByText(a.Render(), "← Overview"))
	if a.Location() != router.Root {
		t.Errorf("Location() = %q after back action, want /", a.Location())
	}
}

func TestRoundTripEveryLocation(t *testing.T) {
	a, _ := newApp(t, "")
	for _, loc := range router.Locations() {
		a.Navigate(string(loc))
		if a.Location() != loc {
			t.Errorf("Navigate(%q): Location() = %q", loc, a.Location())
		}
	}
}

func TestViewSwitchRecreatesProbes(t *testing.T) {
	a, src := newApp(t, "/self-driven")

	for i := 0; i < 3; i++ {
		click(t, a, vtest.Boxes(a.Render())[0])
	}
	if got := a.StatsMap()["self-driven"]; got != 4 {
		t.Fatalf("page renders = %d, want 4", got)
	}
	old := a.View()

	src.Edit("/")
	if old.State() != component.Unmounted {
		t.Errorf("old view State() = %v, want Unmounted", old.State())
	}
	src.Back()

	want := []Stat{
		{Path: "self-driven", Renders: 1},
		{Path: "self-driven/box1", Renders: 1},
		{Path: "self-driven/box2", Renders: 1},
	}
	if diff := cmp.Diff(want, a.Stats()); diff != "" {
		t.Errorf("stats after remount (-want +got):\n%s", diff)
	}
	vtest.ExpectContains(t, a.Render(), "Page Click Count: 0")
}

func TestHandleInvalidatedAfterViewSwitch(t *testing.T) {
	a, _ := newApp(t, "/self-driven")

	// Keep the page button's handler across the switch.
	stale := vtest.Button(vtest.Boxes(a.Render())[0]).Handler("click")
	a.Navigate("/")

	a.Dispatch(stale.Call) // must not panic or resurrect the cell

	if a.ViewName() != "overview" {
		t.Errorf("ViewName() = %q", a.ViewName())
	}
	if a.Runtime().Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", a.Runtime().Pending())
	}
}

func TestContextStoreDestroyedOnSwitch(t *testing.T) {
	a, _ := newApp(t, "/context-driven")

	click(t, a, vtest.Boxes(a.Render())[1])
	vtest.ExpectContains(t, a.Render(), "Click Count: 1")

	a.Navigate("/parent-driven")
	a.Navigate("/context-driven")

	for _, s := range a.Stats() {
		if s.Renders != 1 {
			t.Errorf("%s renders = %d, want 1", s.Path, s.Renders)
		}
	}
	vtest.ExpectNotContains(t, a.Render(), "Click Count: 1")
}

func TestHooks(t *testing.T) {
	renders := 0
	var switches [][2]router.Location

	a, _ := newApp(t, "/",
		WithRenderHook(func(*component.Instance) { renders++ }),
		WithViewHook(func(from, to router.Location) { switches = append(switches, [2]router.Location{from, to}) }),
	)
	a.Navigate("/parent-driven")

	if renders != 4 { // overview + page + two cells
		t.Errorf("renders = %d, want 4", renders)
	}
	want := [][2]router.Location{{"", router.Root}, {router.Root, router.ParentDriven}}
	if diff := cmp.Diff(want, switches); diff != "" {
		t.Errorf("switches (-want +got):\n%s", diff)
	}
}

func TestCloseStopsDispatch(t *testing.T) {
	a, src := newApp(t, "/self-driven")
	a.Close()

	a.Navigate("/parent-driven")
	src.Edit("/context-driven")

	if a.View() != nil {
		t.Error("View() != nil after Close")
	}
	if a.Location() != router.SelfDriven {
		t.Errorf("Location() = %q after Close", a.Location())
	}
	vtest.ExpectNotContains(t, a.Render(), "box")
}
