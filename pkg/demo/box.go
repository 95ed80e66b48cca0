package demo

import "github.com/vango-dev/rerender/pkg/vdom"

// Prop keys shared by the cells.
const (
	PropCount        = "count"
	PropIncrease     = "increase"
	PropIncreaseSelf = "increaseSelf"
	PropRef          = "ref"
)

// Navigate moves the router to path.
type Navigate func(path string)

// box renders the common cell markup. onBody and onButton accept anything
// vdom.OnClick accepts; a nil onButton omits the button.
func box(class, label string, renders, clicks int, onBody, onButton any) *vdom.VNode {
	button := vdom.OnClick(onButton)
	return vdom.Div(
		vdom.Class(class),
		vdom.OnClick(onBody),
		vdom.If(button.Handler != nil,
			vdom.Button(vdom.Class("increase"), button, "Increase"),
		),
		vdom.P(vdom.Class("render-count"), vdom.Textf("%sRender Count: %d", label, renders)),
		vdom.P(vdom.Class("click-count"), vdom.Textf("%sClick Count: %d", label, clicks)),
	)
}

// cellBox is a cell's box.
func cellBox(renders, clicks int, onBody, onButton any) *vdom.VNode {
	return box("box", "", renders, clicks, onBody, onButton)
}

// mainBox is the page's own box.
func mainBox(renders, clicks int, onBody, onButton any) *vdom.VNode {
	return box("box-main", "Page ", renders, clicks, onBody, onButton)
}

// pageLayout wraps a demo page with its navigation.
func pageLayout(p Pattern, nav Navigate, boxes ...*vdom.VNode) *vdom.VNode {
	return vdom.Section(
		vdom.Class("demo"),
		vdom.Data("pattern", p.Key),
		vdom.Nav(
			vdom.Class("demo-nav"),
			vdom.Button(vdom.Class("back-btn"), vdom.OnClick(navTo(nav, "/")), "← Overview"),
			vdom.Button(vdom.Class("code-btn"), vdom.OnClick(navTo(nav, string(p.Code))), "View Code →"),
		),
		vdom.H1(p.Title),
		vdom.Div(vdom.Class("wrapper"), boxes),
	)
}

// navTo returns a click handler navigating to path.
func navTo(nav Navigate, path string) func() {
	if nav == nil {
		return nil
	}
	return func() { nav(path) }
}
