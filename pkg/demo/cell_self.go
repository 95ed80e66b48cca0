package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// SelfCell owns its count. Clicking the body increments it.
//
// Props:
//   - PropIncrease (*reactive.Callback, optional): shows the button.
//   - PropRef (*component.Handle, optional): bound to the private increment,
//     so the owner of the handle can trigger it without reading the count.
func SelfCell(inst *component.Instance) component.RenderFunc {
	count := inst.NewCounter()
	increaseSelf := reactive.NewCallback(count.Increment)

	if ref := inst.Props().Handle(PropRef); ref != nil {
		ref.Bind(inst, count.Increment)
	}

	return func(p component.Props) *vdom.VNode {
		return cellBox(inst.RenderCount(), count.Read(), increaseSelf, p.Callback(PropIncrease))
	}
}
