package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/vdom"
)

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

// focusOn moves focus to the first target matching match.
func focusOn(t *testing.T, m *Model, match func(*vdom.VNode) bool) {
	t.Helper()
	targets := vdom.FindAll(m.tree, func(n *vdom.VNode) bool { return n.IsInteractive() })
	for i, n := range targets {
		if match(n) {
			m.focus = i
			if n.HID != m.focusedHID() {
				t.Fatalf("target %d has HID %q, focus is on %q", i, n.HID, m.focusedHID())
			}
			return
		}
	}
	t.Fatal("no matching target")
}

func TestViewShowsLocationAndBoxes(t *testing.T) {
	m := New("/self-driven")
	defer m.App().Close()

	out := m.View()
	for _, want := range []string{
		"#/self-driven",
		"Self-Driven Components",
		"Page Render Count: 1",
		"[Increase]",
		"[← Overview]",
		"renders: self-driven=1 self-driven/box1=1 self-driven/box2=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q in:\n%s", want, out)
		}
	}
}

func TestTabCyclesTargets(t *testing.T) {
	m := New("/self-driven")
	defer m.App().Close()

	n := m.targets
	if n == 0 {
		t.Fatal("no interactive targets")
	}
	press(m, "tab", "tab")
	if m.focus != 2 {
		t.Errorf("focus = %d, want 2", m.focus)
	}
	press(m, "shift+tab", "shift+tab", "shift+tab")
	if m.focus != n-1 {
		t.Errorf("focus = %d, want %d (wrapped)", m.focus, n-1)
	}
}

func TestEnterClicksFocusedBox(t *testing.T) {
	m := New("/self-driven")
	defer m.App().Close()

	focusOn(t, m, func(n *vdom.VNode) bool { return n.HasClass("box-main") })
	press(m, "enter")

	out := m.View()
	for _, want := range []string{"Page Render Count: 2", "Page Click Count: 1", "self-driven/box1=1", "clicked box-main"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestNavigationAndHistory(t *testing.T) {
	m := New("")
	defer m.App().Close()

	if m.App().Location() != router.Root {
		t.Fatalf("Location() = %q, want /", m.App().Location())
	}

	press(m, "4") // /parent-driven
	if m.App().Location() != router.ParentDriven {
		t.Fatalf("Location() = %q after jump", m.App().Location())
	}
	if m.focus != 0 {
		t.Errorf("focus = %d after navigation, want 0", m.focus)
	}

	press(m, "b")
	if m.App().Location() != router.Root {
		t.Errorf("Location() = %q after back, want /", m.App().Location())
	}
	press(m, "f")
	if m.App().Location() != router.ParentDriven {
		t.Errorf("Location() = %q after forward", m.App().Location())
	}
	press(m, "f")
	if !strings.Contains(m.View(), "no later location") {
		t.Error("missing status for exhausted history")
	}
}

func TestClickNavigates(t *testing.T) {
	m := New("/context-driven")
	defer m.App().Close()

	focusOn(t, m, func(n *vdom.VNode) bool {
		return n.Tag == "button" && strings.TrimSpace(vdom.TextContent(n)) == "View Code →"
	})
	press(m, "enter")

	if m.App().Location() != router.ContextDrivenCode {
		t.Errorf("Location() = %q, want %q", m.App().Location(), router.ContextDrivenCode)
	}
	if !strings.Contains(m.View(), "Context-Driven Components - Code") {
		t.Error("explainer not shown")
	}
}

func TestQuit(t *testing.T) {
	m := New("/")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}
