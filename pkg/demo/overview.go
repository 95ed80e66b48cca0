package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// Overview renders the comparison table and one card per pattern. Its only
// actions are navigations.
func Overview(nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		return func(component.Props) *vdom.VNode {
			return vdom.Div(
				vdom.Class("overview"),
				vdom.Header(
					vdom.Class("overview-header"),
					vdom.H1("Re-render Performance Comparison"),
					vdom.P("Compare how the place that owns state changes which components re-render. "+
						`Watch the "Render Count" in each demo to see the difference.`),
				),
				comparisonTable(),
				vdom.Div(
					vdom.Class("patterns-grid"),
					vdom.Range(Patterns, func(_ int, p Pattern) *vdom.VNode {
						return patternCard(p, nav)
					}),
				),
				vdom.Footer(
					vdom.Class("overview-footer"),
					vdom.P(vdom.Strong("Tip: "), `watch the "Render Count" of every box while you click.`),
				),
			)
		}
	}
}

func comparisonTable() *vdom.VNode {
	return vdom.Div(
		vdom.Class("comparison-table"),
		vdom.H2("Re-render Performance Summary"),
		vdom.Table(
			vdom.Thead(vdom.Tr(
				vdom.Th("Aspect"),
				vdom.Th("Self-Driven"),
				vdom.Th("Parent-Driven"),
				vdom.Th("Context-Driven"),
			)),
			vdom.Tbody(vdom.Range(Comparison, func(_ int, row ComparisonRow) *vdom.VNode {
				return vdom.Tr(
					vdom.Td(row.Aspect),
					vdom.Td(row.Self),
					vdom.Td(row.Parent),
					vdom.Td(row.Context),
				)
			})),
		),
	)
}

func patternCard(p Pattern, nav Navigate) *vdom.VNode {
	return vdom.Article(
		vdom.Class("pattern-card"),
		vdom.Key(p.Key),
		vdom.Data("pattern", p.Key),
		vdom.H2(p.Title),
		vdom.P(vdom.Class("description"), p.Description),
		vdom.Div(
			vdom.Class("section"),
			vdom.H3("Re-render Behavior"),
			vdom.P(p.RenderBehavior),
		),
		vdom.Div(
			vdom.Class("pros-cons"),
			vdom.Div(vdom.Class("pros"), vdom.H3("Performance Pros"), bulletList(p.Pros)),
			vdom.Div(vdom.Class("cons"), vdom.H3("Performance Cons"), bulletList(p.Cons)),
		),
		vdom.Div(
			vdom.Class("card-buttons"),
			vdom.Button(vdom.Class("navigate-btn"), vdom.OnClick(navTo(nav, string(p.Demo))), "View Demo →"),
			vdom.Button(vdom.Class("code-btn"), vdom.OnClick(navTo(nav, string(p.Code))), "View Code →"),
		),
	)
}

func bulletList(items []string) *vdom.VNode {
	return vdom.Ul(vdom.Range(items, func(_ int, item string) *vdom.VNode {
		return vdom.Li(item)
	}))
}
