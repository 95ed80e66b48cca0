// Package render turns view trees into HTML.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//	handlers := renderer.Handlers() // "h3_onclick" → vdom.Handler
//
// Elements with event handlers receive a data-hid attribute and a
// data-on-<event> marker. The thin client reports clicks by HID and the
// session looks the handler up in the map collected during the last render.
//
// # Full Page Rendering
//
// RenderPage writes the HTML shell: doctype, head with the demo stylesheet,
// the server-side render of the current view and the client script tag.
//
// # Security
//
// All text content and attribute values are escaped. KindRaw nodes are
// written verbatim and are only used for static, trusted content.
package render
