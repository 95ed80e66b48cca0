package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/router"
)

// ViewSetup returns the root name and Setup of the assembly rendered for v.
func ViewSetup(v router.View, nav Navigate) (string, component.Setup) {
	switch v {
	case router.ViewSelfDrivenDemo:
		return "self-driven", SelfDrivenPage(nav)
	case router.ViewParentDrivenDemo:
		return "parent-driven", ParentDrivenPage(nav)
	case router.ViewContextDrivenDemo:
		return "context-driven", ContextDrivenPage(nav)
	case router.ViewSelfDrivenCode:
		return "self-driven-code", Explainer(Patterns[0], nav)
	case router.ViewParentDrivenCode:
		return "parent-driven-code", Explainer(Patterns[1], nav)
	case router.ViewContextDrivenCode:
		return "context-driven-code", Explainer(Patterns[2], nav)
	default:
		return "overview", Overview(nav)
	}
}
