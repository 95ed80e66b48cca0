package demo

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/vdom"
)

//go:embed cell_self.go cell_parent.go cell_shared.go self_driven.go parent_driven.go context_driven.go
var sources embed.FS

// Listing returns the text of src.
func Listing(src Source) (string, error) {
	fsys := src.FS
	if fsys == nil {
		fsys = sources
	}
	b, err := fs.ReadFile(fsys, src.File)
	if err != nil {
		return "", fmt.Errorf("demo: listing %s: %w", src.File, err)
	}
	return string(b), nil
}

// Explainer renders the code view of p: when each part re-renders, the
// component structure and the source listings.
func Explainer(p Pattern, nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		listings := make([]*vdom.VNode, 0, len(p.Sources))
		for _, src := range p.Sources {
			listings = append(listings, codeSection(src))
		}

		return func(component.Props) *vdom.VNode {
			return vdom.Div(
				vdom.Class("code-view"),
				vdom.Data("pattern", p.Key),
				vdom.Header(
					vdom.Class("code-view-header"),
					vdom.Button(vdom.Class("back-btn"), vdom.OnClick(navTo(nav, "/")), "← Back to Overview"),
					vdom.Button(vdom.Class("navigate-btn"), vdom.OnClick(navTo(nav, string(p.Demo))), "View Demo →"),
					vdom.H1(p.Title+" - Code"),
				),
				vdom.Div(
					vdom.Class("code-info-section"),
					vdom.Div(vdom.Class("info-card"),
						vdom.H3("When Components Re-render"),
						vdom.Ul(vdom.Class("render-list"), vdom.Range(p.WhenRenders, func(_ int, s string) *vdom.VNode {
							return vdom.Li(s)
						})),
					),
					vdom.Div(vdom.Class("info-card"),
						vdom.H3("Component Structure"),
						vdom.Pre(vdom.Class("structure"), p.Structure),
					),
				),
				vdom.Div(vdom.Class("code-sections"), listings),
			)
		}
	}
}

func codeSection(src Source) *vdom.VNode {
	code, err := Listing(src)
	if err != nil {
		code = err.Error()
	}
	return vdom.Div(
		vdom.Class("code-section-card"),
		vdom.Div(
			vdom.Class("code-section-header"),
			vdom.H2(src.Title),
			vdom.Span(vdom.Class("file-name"), src.File),
		),
		vdom.Pre(vdom.Class("code-snippet"), vdom.Code(code)),
	)
}
