package component

import (
	"log/slog"
	"sort"

	"github.com/vango-dev/rerender/pkg/reactive"
)

// Runtime re-renders the dirty instances of one session. It is bound to the
// session's Scheduler and runs on every flush.
type Runtime struct {
	sched    *reactive.Scheduler
	dirty    []*Instance
	live     int
	renders  uint64
	onRender []func(*Instance)
	logger   *slog.Logger
}

// NewRuntime creates a runtime bound to sched.
func NewRuntime(sched *reactive.Scheduler) *Runtime {
	rt := &Runtime{
		sched:  sched,
		logger: slog.Default().With("component", "runtime"),
	}
	sched.OnFlush(rt.flush)
	return rt
}

// Scheduler returns the scheduler the runtime is bound to.
func (rt *Runtime) Scheduler() *reactive.Scheduler {
	return rt.sched
}

// SetLogger replaces the runtime logger.
func (rt *Runtime) SetLogger(logger *slog.Logger) {
	if logger != nil {
		rt.logger = logger.With("component", "runtime")
	}
}

// OnRender registers fn to run after every render of every instance.
func (rt *Runtime) OnRender(fn func(*Instance)) {
	rt.onRender = append(rt.onRender, fn)
}

// Mount creates a root instance under owner and renders it once.
func (rt *Runtime) Mount(owner *reactive.Owner, name string, setup Setup) *Instance {
	return newInstance(rt, nil, owner, name, nil, setup)
}

// Renders returns the total number of instance renders so far.
func (rt *Runtime) Renders() uint64 {
	return rt.renders
}

// Live returns the number of mounted instances.
func (rt *Runtime) Live() int {
	return rt.live
}

// Pending returns the number of instances waiting for a flush.
func (rt *Runtime) Pending() int {
	return len(rt.dirty)
}

func (rt *Runtime) schedule(inst *Instance) {
	rt.dirty = append(rt.dirty, inst)
}

// flush re-renders dirty instances parents first. An instance re-rendered by
// its parent during this flush is no longer dirty and is skipped.
func (rt *Runtime) flush() {
	if len(rt.dirty) == 0 {
		return
	}
	batch := rt.dirty
	rt.dirty = nil

	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].depth < batch[j].depth
	})

	i := 0
	defer func() {
		if i < len(batch) {
			rt.requeue(batch[i+1:])
		}
	}()

	for ; i < len(batch); i++ {
		inst := batch[i]
		if !inst.dirty || inst.state == Unmounted {
			continue
		}
		inst.renderNow(inst.cause)
	}
}

// requeue schedules the instances a panicking render left dirty, so the next
// flush picks them up.
func (rt *Runtime) requeue(rest []*Instance) {
	for _, inst := range rest {
		if inst.dirty && inst.state != Unmounted {
			rt.dirty = append(rt.dirty, inst)
		}
	}
}

func (rt *Runtime) mounted(inst *Instance) {
	rt.live++
	rt.logger.Debug("mount", "path", inst.Path())
}

func (rt *Runtime) rendered(inst *Instance) {
	rt.renders++
	for _, fn := range rt.onRender {
		fn(inst)
	}
}

func (rt *Runtime) unmounted(inst *Instance) {
	rt.live--
	rt.logger.Debug("unmount", "path", inst.Path(), "renders", inst.RenderCount())
}
