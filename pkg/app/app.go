// Package app binds the router to the demo views for one session.
//
// An App owns the session's scheduler, component runtime and router. When
// the router selects a new location the mounted view is disposed, which
// invalidates its handles and destroys its store, and the new view is
// mounted with fresh probes.
//
//	a := app.New(router.NewMemorySource(""))
//	defer a.Close()
//	a.Navigate("/self-driven")
//	tree := a.Render()
package app

import (
	"log/slog"

	"github.com/vango-dev/rerender/pkg/component"
	"github.com/vango-dev/rerender/pkg/demo"
	"github.com/vango-dev/rerender/pkg/reactive"
	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for the app, its scheduler, runtime and router.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRenderHook registers fn to run after every instance render.
func WithRenderHook(fn func(*component.Instance)) Option {
	return func(a *App) {
		a.renderHooks = append(a.renderHooks, fn)
	}
}

// WithViewHook registers fn to run after every view switch.
func WithViewHook(fn func(from, to router.Location)) Option {
	return func(a *App) {
		a.viewHooks = append(a.viewHooks, fn)
	}
}

// App is the root of one session's component tree.
// It is not safe for concurrent use; one event loop owns it.
type App struct {
	sched  *reactive.Scheduler
	rt     *component.Runtime
	router *router.Router
	owner  *reactive.Owner
	logger *slog.Logger

	view     *component.Instance
	viewName string
	location router.Location

	unsubscribe func()
	renderHooks []func(*component.Instance)
	viewHooks   []func(from, to router.Location)
	closed      bool
}

// New creates an App reading src and mounts the view for its current
// fragment.
func New(src router.FragmentSource, opts ...Option) *App {
	a := &App{
		sched:  reactive.NewScheduler(),
		owner:  reactive.NewOwner(nil),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "app")

	a.rt = component.NewRuntime(a.sched)
	a.sched.SetLogger(a.logger)
	a.rt.SetLogger(a.logger)
	for _, fn := range a.renderHooks {
		a.rt.OnRender(fn)
	}

	a.router = router.New(src, router.WithLogger(a.logger))
	a.unsubscribe = a.router.Subscribe(a.show)
	a.show(a.router.Current())
	return a
}

// Render returns the current tree: the view wrapped in an element carrying
// the location.
func (a *App) Render() *vdom.VNode {
	var view *vdom.VNode
	if a.view != nil {
		view = vdom.Embed(a.view)
	}
	return vdom.Div(
		vdom.Class("app"),
		vdom.Data("location", string(a.location)),
		vdom.Data("view", a.viewName),
		view,
	)
}

// Dispatch runs fn as one interaction.
func (a *App) Dispatch(fn func()) {
	if a.closed {
		return
	}
	a.sched.Run(fn)
}

// Navigate moves the router to path as one interaction.
func (a *App) Navigate(path string) {
	a.Dispatch(func() { a.router.Navigate(path) })
}

// Location returns the selected location.
func (a *App) Location() router.Location {
	return a.location
}

// View returns the mounted view's root instance.
func (a *App) View() *component.Instance {
	return a.view
}

// ViewName returns the name of the mounted view.
func (a *App) ViewName() string {
	return a.viewName
}

// Router returns the app's router.
func (a *App) Router() *router.Router {
	return a.router
}

// Runtime returns the app's component runtime.
func (a *App) Runtime() *component.Runtime {
	return a.rt
}

// Scheduler returns the app's scheduler.
func (a *App) Scheduler() *reactive.Scheduler {
	return a.sched
}

// Stat is the render count of one mounted instance.
type Stat struct {
	Path    string
	Renders int
}

// Stats returns the render counts of the mounted view's instances in tree
// order.
func (a *App) Stats() []Stat {
	var out []Stat
	var walk func(*component.Instance)
	walk = func(inst *component.Instance) {
		out = append(out, Stat{Path: inst.Path(), Renders: inst.RenderCount()})
		for _, child := range inst.Children() {
			walk(child)
		}
	}
	if a.view != nil {
		walk(a.view)
	}
	return out
}

// StatsMap returns Stats keyed by path.
func (a *App) StatsMap() map[string]int {
	m := make(map[string]int)
	for _, s := range a.Stats() {
		m[s.Path] = s.Renders
	}
	return m
}

// Close disposes the mounted view and detaches from the router.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.router.Close()
	a.owner.Dispose()
	a.view = nil
}

// show swaps the mounted view for the one at loc.
func (a *App) show(loc router.Location) {
	prev := a.location
	if a.view != nil {
		a.view.Dispose()
		a.view = nil
	}

	name, setup := demo.ViewSetup(router.ViewFor(loc), a.navigate)
	a.location = loc
	a.viewName = name
	a.view = a.rt.Mount(a.owner, name, setup)

	a.logger.Debug("view mounted", "location", loc, "view", name)
	for _, fn := range a.viewHooks {
		fn(prev, loc)
	}
}

// navigate is handed to the views; it runs inside the click's interaction.
func (a *App) navigate(path string) {
	a.router.Navigate(path)
}
