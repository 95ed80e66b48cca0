package component

import (
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// Setup runs once when an instance mounts and returns its render function.
type Setup func(inst *Instance) RenderFunc

// RenderFunc computes an instance's view from its current props.
type RenderFunc func(props Props) *vdom.VNode

// Instance is a mounted component with its state.
// It implements reactive.Listener so counters and stores can mark it dirty,
// and vdom.Component so the parent's tree embeds its latest output.
type Instance struct {
	name   string
	rt     *Runtime
	owner  *reactive.Owner
	parent *Instance
	depth  int

	render RenderFunc
	props  Props
	memo   bool
	probe  reactive.Probe

	children map[string]*Instance
	order    []string
	touched  map[string]bool

	dirty      bool
	cause      State
	state      State
	lastUpdate State
	tree       *vdom.VNode
}

var (
	_ reactive.Listener = (*Instance)(nil)
	_ vdom.Component    = (*Instance)(nil)
)

func newInstance(rt *Runtime, parent *Instance, owner *reactive.Owner, name string, props Props, setup Setup) *Instance {
	inst := &Instance{
		name:   name,
		rt:     rt,
		owner:  reactive.NewOwner(owner),
		parent: parent,
		props:  props,
	}
	if parent != nil {
		inst.depth = parent.depth + 1
	}
	inst.owner.OnCleanup(inst.unmount)

	inst.render = setup(inst)
	inst.renderNow(Mounted)
	rt.mounted(inst)
	return inst
}

// Name returns the instance's key within its parent (or its root name).
func (c *Instance) Name() string {
	return c.name
}

// Path returns the slash-separated keys from the root to this instance.
func (c *Instance) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + "/" + c.name
}

// ID implements reactive.Listener.
func (c *Instance) ID() uint64 {
	return c.owner.ID()
}

// Owner returns the disposal scope of this instance.
func (c *Instance) Owner() *reactive.Owner {
	return c.owner
}

// Runtime returns the runtime the instance is mounted in.
func (c *Instance) Runtime() *Runtime {
	return c.rt
}

// Scheduler returns the session scheduler.
func (c *Instance) Scheduler() *reactive.Scheduler {
	return c.rt.sched
}

// RenderCount returns the instance's probe value.
func (c *Instance) RenderCount() int {
	return c.probe.Value()
}

// State returns the current lifecycle state.
func (c *Instance) State() State {
	return c.state
}

// LastUpdate returns the updating state of the most recent re-render, or
// Mounted if the instance has only rendered once.
func (c *Instance) LastUpdate() State {
	return c.lastUpdate
}

// IsDirty returns whether the instance waits for re-rendering.
func (c *Instance) IsDirty() bool {
	return c.dirty
}

// Props returns the props of the last render.
func (c *Instance) Props() Props {
	return c.props
}

// Children returns the live child instances in mount order.
func (c *Instance) Children() []*Instance {
	out := make([]*Instance, 0, len(c.order))
	for _, key := range c.order {
		if child, ok := c.children[key]; ok {
			out = append(out, child)
		}
	}
	return out
}

// Render implements vdom.Component. It returns the cached tree of the last
// render; it never re-renders.
func (c *Instance) Render() *vdom.VNode {
	return c.tree
}

// MarkDirty implements reactive.Listener. The re-render is attributed to a
// change outside the instance.
func (c *Instance) MarkDirty() {
	c.markDirty(UpdatingExternal)
}

func (c *Instance) markDirty(cause State) {
	if c.state == Unmounted || c.dirty {
		return
	}
	c.dirty = true
	c.cause = cause
	c.rt.schedule(c)
}

// NewCounter creates a counter owned by this instance. The instance
// re-renders, attributed to itself, whenever the counter changes.
func (c *Instance) NewCounter() *reactive.Counter {
	counter := reactive.NewCounter(c.rt.sched)
	c.owner.OnCleanup(counter.Subscribe(selfListener{c}))
	return counter
}

// Watch subscribes the instance to changes reported through subscribe,
// which must return an unsubscribe function. The subscription ends when
// the instance unmounts.
func (c *Instance) Watch(subscribe func(reactive.Listener) func()) {
	c.owner.OnCleanup(subscribe(c))
}

// Child renders a plain child under key. A plain child re-renders every time
// its parent does.
func (c *Instance) Child(key string, props Props, setup Setup) *vdom.VNode {
	return c.child(key, props, setup, false)
}

// MemoChild renders a memoized child under key. The child's previous output
// is reused when props are Equal to the previous props and the child is not
// dirty.
func (c *Instance) MemoChild(key string, props Props, setup Setup) *vdom.VNode {
	return c.child(key, props, setup, true)
}

func (c *Instance) child(key string, props Props, setup Setup, memo bool) *vdom.VNode {
	if c.touched != nil {
		c.touched[key] = true
	}

	existing, ok := c.children[key]
	if !ok || existing.state == Unmounted {
		child := newInstance(c.rt, c, c.owner, key, props, setup)
		child.memo = memo
		if c.children == nil {
			c.children = make(map[string]*Instance)
		}
		if !ok {
			c.order = append(c.order, key)
		}
		c.children[key] = child
		return vdom.Embed(child)
	}

	existing.memo = memo
	if memo && !existing.dirty && existing.props.Equal(props) {
		return vdom.Embed(existing)
	}

	cause := UpdatingExternal
	if existing.dirty {
		cause = existing.cause
	}
	existing.props = props
	existing.renderNow(cause)
	return vdom.Embed(existing)
}

// renderNow runs the render function once, ticking the probe, and unmounts
// children that were not rendered this time.
func (c *Instance) renderNow(cause State) {
	if c.state == Unmounted {
		return
	}
	if cause != Mounted {
		c.state = cause
		c.lastUpdate = cause
	}

	c.probe.Tick()
	c.dirty = false
	c.touched = make(map[string]bool, len(c.children))

	c.tree = c.render(c.props)

	touched := c.touched
	c.touched = nil
	c.prune(touched)

	if c.state != Unmounted {
		c.state = Mounted
	}
	c.rt.rendered(c)
}

// prune disposes children not rendered in the last pass.
func (c *Instance) prune(touched map[string]bool) {
	kept := c.order[:0]
	for _, key := range c.order {
		if touched[key] {
			kept = append(kept, key)
			continue
		}
		if child, ok := c.children[key]; ok {
			delete(c.children, key)
			child.Dispose()
		}
	}
	c.order = kept
}

// Dispose unmounts the instance and its subtree.
func (c *Instance) Dispose() {
	c.owner.Dispose()
}

// unmount runs as the owner's first registered cleanup, so it runs last.
func (c *Instance) unmount() {
	c.state = Unmounted
	c.dirty = false
	c.children = nil
	c.order = nil
	c.rt.unmounted(c)
}

// selfListener attributes notifications to the instance's own state.
// It shares the instance's ID, so a batch that reaches the instance through
// both paths still marks it once.
type selfListener struct {
	inst *Instance
}

func (l selfListener) MarkDirty() { l.inst.markDirty(UpdatingSelf) }
func (l selfListener) ID() uint64 { return l.inst.ID() }

// Memoized reports whether the instance was last rendered through MemoChild.
func (c *Instance) Memoized() bool {
	return c.memo
}
