package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
	}{
		{"", Root},
		{"#", Root},
		{"/", Root},
		{"#/", Root},
		{"/self-driven", SelfDriven},
		{"#/self-driven/code", SelfDrivenCode},
		{"/parent-driven", ParentDriven},
		{"/parent-driven/code", ParentDrivenCode},
		{"/context-driven", ContextDriven},
		{"#/context-driven/code", ContextDrivenCode},
		{"/nonexistent", Root},
		{"/self-driven/", Root},
		{"/SELF-DRIVEN", Root},
		{"self-driven", Root},
		{"/self-driven?x=1", Root},
		{"##/self-driven", Root},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestViewTable(t *testing.T) {
	got := map[Location]View{}
	for _, loc := range Locations() {
		got[loc] = ViewFor(loc)
	}
	got["/elsewhere"] = ViewFor("/elsewhere")

	want := map[Location]View{
		Root:              ViewOverview,
		SelfDriven:        ViewSelfDrivenDemo,
		SelfDrivenCode:    ViewSelfDrivenCode,
		ParentDriven:      ViewParentDrivenDemo,
		ParentDrivenCode:  ViewParentDrivenCode,
		ContextDriven:     ViewContextDrivenDemo,
		ContextDrivenCode: ViewContextDrivenCode,
		"/elsewhere":      ViewOverview,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("view table mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigateRoundTrip(t *testing.T) {
	src := NewMemorySource("")
	r := New(src)

	for _, loc := range Locations() {
		r.Navigate(string(loc))
		if r.Current() != loc {
			t.Errorf("Navigate(%q): Current() = %q", loc, r.Current())
		}
		if src.Fragment() != string(loc) {
			t.Errorf("Navigate(%q): Fragment() = %q", loc, src.Fragment())
		}
	}
}

func TestNavigateUnknownGoesHome(t *testing.T) {
	src := NewMemorySource("/self-driven")
	r := New(src)

	r.Navigate("/nonexistent")

	if r.Current() != Root {
		t.Errorf("Current() = %q, want %q", r.Current(), Root)
	}
	if src.Fragment() != "/" {
		t.Errorf("Fragment() = %q, want /", src.Fragment())
	}
}

func TestNewNormalizesInitialFragment(t *testing.T) {
	src := NewMemorySource("/garbage")
	r := New(src)

	if r.Current() != Root {
		t.Errorf("Current() = %q, want /", r.Current())
	}
	history, _ := src.History()
	if diff := cmp.Diff([]string{"/"}, history); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestExternalChangesReselect(t *testing.T) {
	src := NewMemorySource("/")
	r := New(src)

	var seen []Location
	r.Subscribe(func(l Location) { seen = append(seen, l) })

	src.Edit("/parent-driven")
	r.Navigate("/parent-driven/code")
	src.Back()
	src.Forward()
	src.Edit("/bogus")

	want := []Location{ParentDriven, ParentDrivenCode, ParentDriven, ParentDrivenCode, Root}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("selections (-want +got):\n%s", diff)
	}
	if src.Fragment() != "/" {
		t.Errorf("Fragment() = %q, want /", src.Fragment())
	}
}

func TestNavigateSameLocationDoesNotNotify(t *testing.T) {
	r := New(NewMemorySource("/context-driven"))
	calls := 0
	r.Subscribe(func(Location) { calls++ })

	r.Navigate("/context-driven")
	r.Navigate("#/context-driven")

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestNavigateWithReplace(t *testing.T) {
	src := NewMemorySource("/")
	r := New(src)

	r.Navigate("/self-driven")
	r.Navigate("/self-driven/code", WithReplace())

	history, pos := src.History()
	if diff := cmp.Diff([]string{"/", "/self-driven/code"}, history); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
	if pos != 1 {
		t.Errorf("pos = %d, want 1", pos)
	}

	src.Back()
	if r.Current() != Root {
		t.Errorf("Current() after Back = %q, want /", r.Current())
	}
}

func TestCloseDetaches(t *testing.T) {
	src := NewMemorySource("/")
	r := New(src)
	calls := 0
	r.Subscribe(func(Location) { calls++ })

	r.Close()
	src.Edit("/self-driven")

	if r.Current() != Root {
		t.Errorf("Current() = %q after Close, want /", r.Current())
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestMemorySourceHistoryBounds(t *testing.T) {
	src := NewMemorySource("/")
	if src.Back() {
		t.Error("Back() at start = true")
	}
	if src.Forward() {
		t.Error("Forward() at end = true")
	}
}

func TestRecognized(t *testing.T) {
	for raw, want := range map[string]bool{
		"":                true,
		"#/self-driven":   true,
		"/self-driven/":   false,
		"/nowhere":        false,
		"/context-driven": true,
	} {
		if got := Recognized(raw); got != want {
			t.Errorf("Recognized(%q) = %v, want %v", raw, got, want)
		}
	}
}
