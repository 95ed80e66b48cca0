package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/rerender/pkg/render"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// RenderToString renders a VNode to HTML. Returns "" on error.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains fails the test if the rendered output lacks expected.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains fails the test if the rendered output contains unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output NOT to contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectText fails the test unless the text content of node equals want.
func ExpectText(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := vdom.TextContent(node); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

// Boxes returns the counter boxes below node in document order: the page's
// box-main first, then every cell box.
func Boxes(node *vdom.VNode) []*vdom.VNode {
	return vdom.FindAll(node, func(n *vdom.VNode) bool {
		return n.HasClass("box") || n.HasClass("box-main")
	})
}

// Button returns the first button inside node, or nil.
func Button(node *vdom.VNode) *vdom.VNode {
	buttons := vdom.FindAll(node, func(n *vdom.VNode) bool { return n.Tag == "button" })
	if len(buttons) == 0 {
		return nil
	}
	return buttons[0]
}

// FindByText returns the first interactive element whose text content is
// label and which holds no other such element, or nil.
func FindByText(node *vdom.VNode, label string) *vdom.VNode {
	match := func(n *vdom.VNode) bool {
		return n.IsInteractive() && strings.TrimSpace(vdom.TextContent(n)) == label
	}
	for _, candidate := range vdom.FindAll(node, match) {
		inner := 0
		for _, c := range candidate.Children {
			inner += len(vdom.FindAll(c, match))
		}
		if inner == 0 {
			return candidate
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
