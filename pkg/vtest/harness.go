package vtest

import (
	"testing"

	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// Harness runs components the way one session does.
type Harness struct {
	Scheduler *reactive.Scheduler
	Runtime   *component.Runtime
	Owner     *reactive.Owner

	renders map[string]int
}

// New creates a harness with a fresh scheduler, runtime and root owner.
// Every render is recorded by instance path.
func New() *Harness {
	sched := reactive.NewScheduler()
	h := &Harness{
		Scheduler: sched,
		Runtime:   component.NewRuntime(sched),
		Owner:     reactive.NewOwner(nil),
		renders:   make(map[string]int),
	}
	h.Runtime.OnRender(func(inst *component.Instance) {
		h.renders[inst.Path()]++
	})
	return h
}

// Mount mounts setup as a root instance named name.
func (h *Harness) Mount(name string, setup component.Setup) *component.Instance {
	return h.Runtime.Mount(h.Owner, name, setup)
}

// Renders returns how many times the instance at path rendered, across
// remounts.
func (h *Harness) Renders(path string) int {
	return h.renders[path]
}

// ResetRenders clears the recorded render counts.
func (h *Harness) ResetRenders() {
	h.renders = make(map[string]int)
}

// Click runs node's click handler as one interaction.
func (h *Harness) Click(t testing.TB, node *vdom.VNode) {
	t.Helper()
	handler := node.Handler("click")
	if handler == nil {
		t.Fatalf("element <%s> has no click handler", node.Tag)
	}
	h.Scheduler.Run(handler.Call)
}

// ClickButton clicks the first button inside node.
func (h *Harness) ClickButton(t testing.TB, node *vdom.VNode) {
	t.Helper()
	button := Button(node)
	if button == nil {
		t.Fatalf("no button inside <%s>", node.Tag)
	}
	h.Click(t, button)
}

// ClickByText clicks the innermost interactive element labelled label.
func (h *Harness) ClickByText(t testing.TB, root *vdom.VNode, label string) {
	t.Helper()
	node := FindByText(root, label)
	if node == nil {
		t.Fatalf("no interactive element labelled %q", label)
	}
	h.Click(t, node)
}

// Close disposes everything mounted through the harness.
func (h *Harness) Close() {
	h.Owner.Dispose()
}
