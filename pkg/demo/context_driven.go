package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/store"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// ContextDrivenPage provides a BoxStore for its subtree and renders the
// content below it. The store is destroyed when the page unmounts.
func ContextDrivenPage(nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		store.Provide(inst.Owner(), inst.Scheduler())
		content := contextContent(nav)

		return func(component.Props) *vdom.VNode {
			return inst.Child("content", nil, content)
		}
	}
}

// contextContent consumes the store for the page counter and the page's
// button, next to two memoized SharedCells.
func contextContent(nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		s := store.MustConsume(inst)

		return func(component.Props) *vdom.VNode {
			page, _ := store.UsePageCount(s)
			box2, _ := store.UseBox2(s)
			return pageLayout(Patterns[2], nav,
				mainBox(inst.RenderCount(), page.Value, page.Increment, box2.Increment),
				inst.MemoChild("box1", nil, SharedCell1),
				inst.MemoChild("box2", nil, SharedCell2),
			)
		}
	}
}
