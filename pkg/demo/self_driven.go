package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// SelfDrivenPage renders the page counter and two SelfCells. The page's
// button and the first cell's button both trigger the second cell through
// its handle.
func SelfDrivenPage(nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		count := inst.NewCounter()
		increasePage := reactive.NewCallback(count.Increment)

		ref := component.NewHandle()
		trigger := ref.Callback()

		return func(component.Props) *vdom.VNode {
			return pageLayout(Patterns[0], nav,
				mainBox(inst.RenderCount(), count.Read(), increasePage, trigger),
				inst.MemoChild("box1", component.Props{PropIncrease: trigger}, SelfCell),
				inst.MemoChild("box2", component.Props{PropRef: ref}, SelfCell),
			)
		}
	}
}
