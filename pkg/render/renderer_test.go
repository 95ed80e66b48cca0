package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/rerender/pkg/vdom"
)

func renderString(t *testing.T, r *Renderer, node *vdom.VNode) string {
	t.Helper()
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	return html
}

func TestRenderElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"empty div", vdom.Div(), "<div></div>"},
		{"class", vdom.Div(vdom.Class("box")), `<div class="box"></div>`},
		{"text escaped", vdom.P("<b>&</b>"), "<p>&lt;b&gt;&amp;&lt;/b&gt;</p>"},
		{"attr escaped", vdom.Div(vdom.Data("x", `a"b`)), `<div data-x="a&quot;b"></div>`},
		{"sorted attrs", vdom.Div(vdom.ID("i"), vdom.Class("c")), `<div class="c" id="i"></div>`},
		{"void", vdom.Meta(vdom.Charset("utf-8")), `<meta charset="utf-8">`},
		{"bool attr", vdom.Script(vdom.Src("/x.js"), vdom.Defer()), `<script defer src="/x.js"></script>`},
		{"raw", vdom.Raw("<i>ok</i>"), "<i>ok</i>"},
		{"nil child skipped", vdom.Div(nil, vdom.If(false, vdom.P())), "<div></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, NewRenderer(RendererConfig{}), tt.node)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAssignsHIDsToHandlersOnly(t *testing.T) {
	clicks := 0
	tree := vdom.Div(
		vdom.Class("box"),
		vdom.OnClick(func() { clicks++ }),
		vdom.Button(vdom.OnClick(func() { clicks += 10 }), "Increase"),
		vdom.P("Render Count: 1"),
	)

	r := NewRenderer(RendererConfig{})
	html := renderString(t, r, tree)

	want := `<div class="box" data-on-click="true" data-hid="h1">` +
		`<button data-on-click="true" data-hid="h2">Increase</button>` +
		`<p>Render Count: 1</p></div>`
	if html != want {
		t.Errorf("html =\n%s\nwant\n%s", html, want)
	}

	handlers := r.Handlers()
	if len(handlers) != 2 {
		t.Fatalf("len(Handlers) = %d, want 2", len(handlers))
	}
	handlers["h2_onclick"].Call()
	if clicks != 10 {
		t.Errorf("clicks = %d, want 10", clicks)
	}
}

func TestRenderResetsBetweenPasses(t *testing.T) {
	tree := vdom.Button(vdom.OnClick(func() {}))
	r := NewRenderer(RendererConfig{})

	first := renderString(t, r, tree)
	second := renderString(t, r, tree)
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
	if len(r.Handlers()) != 1 {
		t.Errorf("len(Handlers) = %d, want 1", len(r.Handlers()))
	}
}

// staticComponent renders a fixed tree.
type staticComponent struct{ tree *vdom.VNode }

func (c staticComponent) Render() *vdom.VNode { return c.tree }

func TestRenderComponent(t *testing.T) {
	comp := staticComponent{vdom.Span("inside")}
	got := renderString(t, NewRenderer(RendererConfig{}), vdom.Div(comp))
	if got != "<div><span>inside</span></div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderPrettyKeepsPreformatted(t *testing.T) {
	tree := vdom.Div(vdom.Pre(vdom.Code("a\n  b")), vdom.P("x"))
	got := renderString(t, NewRenderer(RendererConfig{Pretty: true}), tree)

	if !strings.Contains(got, "<pre><code>a\n  b</code></pre>") {
		t.Errorf("pre content reformatted:\n%s", got)
	}
	if !strings.Contains(got, "\n  <p>x</p>\n") {
		t.Errorf("missing indentation:\n%s", got)
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(RendererConfig{})
	err := r.RenderPage(&buf, PageData{
		Title:  "Re-render <Lab>",
		Body:   vdom.Div(vdom.Data("location", "/")),
		Styles: []string{".box{}"},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Re-render &lt;Lab&gt;</title>",
		"<style>.box{}</style>",
		`<div id="rerender-root"><div data-location="/"></div></div>`,
		`<script defer src="/_rerender/client.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestEscape(t *testing.T) {
	if got := escapeHTML(`<a href="x">'&'</a>`); got != "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;/a&gt;" {
		t.Errorf("escapeHTML = %q", got)
	}
	if got := escapeAttr("a\nb\tc"); got != "a&#10;b&#9;c" {
		t.Errorf("escapeAttr = %q", got)
	}
}

func TestShellOmitsEmptyTitle(t *testing.T) {
	shell := Shell(PageData{Lang: "de", ClientScript: "/c.js"})

	if shell.Tag != "html" || shell.Props["lang"] != "de" {
		t.Fatalf("root = <%s lang=%v>", shell.Tag, shell.Props["lang"])
	}
	if titles := vdom.FindAll(shell, func(n *vdom.VNode) bool { return n.Tag == "title" }); len(titles) != 0 {
		t.Errorf("found %d <title> elements, want 0", len(titles))
	}
	root := vdom.FindAll(shell, func(n *vdom.VNode) bool { return n.Props["id"] == RootID })
	if len(root) != 1 || len(root[0].Children) != 0 {
		t.Errorf("root container = %v", root)
	}

	html := renderString(t, NewRenderer(RendererConfig{}), shell)
	for _, want := range []string{
		`<meta charset="utf-8">`,
		`<meta content="width=device-width, initial-scale=1" name="viewport">`,
		`<script defer src="/c.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("shell missing %q\n%s", want, html)
		}
	}
}
