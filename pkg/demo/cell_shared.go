package demo

import (
	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/store"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// SharedCell1 reads box1 from the store. A body click increments box1, the
// button increments box2. It re-renders on every store change even when
// mounted with MemoChild.
func SharedCell1(inst *component.Instance) component.RenderFunc {
	s := store.MustConsume(inst)

	return func(component.Props) *vdom.VNode {
		box1, _ := store.UseBox1(s)
		box2, _ := store.UseBox2(s)
		return cellBox(inst.RenderCount(), box1.Value, box1.Increment, box2.Increment)
	}
}

// SharedCell2 reads box2 from the store. A body click increments box2.
func SharedCell2(inst *component.Instance) component.RenderFunc {
	s := store.MustConsume(inst)

	return func(component.Props) *vdom.VNode {
		box2, _ := store.UseBox2(s)
		return cellBox(inst.RenderCount(), box2.Value, box2.Increment, nil)
	}
}
