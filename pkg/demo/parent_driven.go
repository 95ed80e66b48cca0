package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// ParentDrivenPage owns the page, box1 and box2 counters and feeds two
// memoized ParentCells.
func ParentDrivenPage(nav Navigate) component.Setup {
	return func(inst *component.Instance) component.RenderFunc {
		countPage := inst.NewCounter()
		countBox1 := inst.NewCounter()
		countBox2 := inst.NewCounter()

		increasePage := reactive.NewCallback(countPage.Increment)
		// Created once so the cells' props stay Equal across page renders.
		handleBox1Increment := reactive.NewCallback(countBox1.Increment)
		handleBox2Increment := reactive.NewCallback(countBox2.Increment)

		return func(component.Props) *vdom.VNode {
			return pageLayout(Patterns[1], nav,
				mainBox(inst.RenderCount(), countPage.Read(), increasePage, handleBox2Increment),
				inst.MemoChild("box1", component.Props{
					PropCount:        countBox1.Read(),
					PropIncreaseSelf: handleBox1Increment,
					PropIncrease:     handleBox2Increment,
				}, ParentCell),
				inst.MemoChild("box2", component.Props{
					PropCount:        countBox2.Read(),
					PropIncreaseSelf: handleBox2Increment,
				}, ParentCell),
			)
		}
	}
}
