package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// ParentCell owns no state. It shows PropCount, calls PropIncreaseSelf on a
// body click and PropIncrease, if set, on a button click. Mount it with
// MemoChild and stable callbacks to skip renders with unchanged props.
func ParentCell(inst *component.Instance) component.RenderFunc {
	return func(p component.Props) *vdom.VNode {
		return cellBox(inst.RenderCount(), p.Int(PropCount), p.Callback(PropIncreaseSelf), p.Callback(PropIncrease))
	}
}
