package render

import (
	"io"

	"github.com/vango-dev/rerender/pkg/vdom"
)

// DefaultClientScript is where the thin client is served.
const DefaultClientScript = "/_rerender/client.js"

// RootID is the id of the element the client swaps snapshots into.
const RootID = "rerender-root"

// PageData contains all data needed to render the HTML shell.
type PageData struct {
	// Body is the server-side render of the current view.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Styles contains inline CSS.
	Styles []string

	// ClientScript is the path to the thin client JavaScript.
	// Defaults to DefaultClientScript if not specified.
	ClientScript string

	// Lang defaults to "en".
	Lang string
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, Shell(page)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Shell builds the document tree around page.Body. Styles are trusted CSS
// and are emitted unescaped.
func Shell(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	script := page.ClientScript
	if script == "" {
		script = DefaultClientScript
	}

	return vdom.Html(
		vdom.Lang(lang),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.If(page.Title != "", vdom.Title(page.Title)),
			vdom.Range(page.Styles, func(_ int, css string) *vdom.VNode {
				return vdom.Style(vdom.Raw(css))
			}),
		),
		vdom.Body(
			vdom.Div(vdom.ID(RootID), page.Body),
			vdom.Script(vdom.Src(script), vdom.Defer()),
		),
	)
}
