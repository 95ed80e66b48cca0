package router

import "log/slog"

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger.With("component", "router")
		}
	}
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	replace bool
}

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) {
		o.replace = true
	}
}

// Router owns the current Location. It re-derives the location from its
// FragmentSource on every external change and on every Navigate.
type Router struct {
	src     FragmentSource
	current Location
	nextID  int
	subs    map[int]func(Location)
	cancel  func()
	logger  *slog.Logger
}

// New creates a router reading src. The initial fragment is normalized, and
// the source is rewritten when normalization changed it.
func New(src FragmentSource, opts ...Option) *Router {
	r := &Router{
		src:    src,
		subs:   make(map[int]func(Location)),
		logger: slog.Default().With("component", "router"),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.current = r.derive(src.Fragment(), true)
	r.cancel = src.OnFragmentChange(func(frag string) {
		r.selectLocation(r.derive(frag, true))
	})
	return r
}

// Current returns the selected location.
func (r *Router) Current() Location {
	return r.current
}

// View returns the view for the selected location.
func (r *Router) View() View {
	return ViewFor(r.current)
}

// Navigate normalizes path, writes it to the fragment and reselects.
func (r *Router) Navigate(path string, opts ...NavigateOption) {
	var o navigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	loc := r.derive(path, false)
	if string(loc) != r.src.Fragment() {
		if rep, ok := r.src.(Replacer); ok && o.replace {
			rep.ReplaceFragment(string(loc))
		} else {
			r.src.SetFragment(string(loc))
		}
	}
	r.selectLocation(loc)
}

// Subscribe registers fn for location changes and returns a function that
// removes it again. fn is not called for reselecting the current location.
func (r *Router) Subscribe(fn func(Location)) (unsubscribe func()) {
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Close detaches the router from its source.
func (r *Router) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.subs = make(map[int]func(Location))
}

// derive normalizes raw. When rewrite is set and raw was not already the
// normalized value, the source is corrected in place.
func (r *Router) derive(raw string, rewrite bool) Location {
	loc := Normalize(raw)
	if !Recognized(raw) {
		r.logger.Debug("unknown location normalized", "raw", raw, "location", loc)
	}
	if rewrite && raw != string(loc) {
		if rep, ok := r.src.(Replacer); ok {
			rep.ReplaceFragment(string(loc))
		} else {
			r.src.SetFragment(string(loc))
		}
	}
	return loc
}

func (r *Router) selectLocation(loc Location) {
	if loc == r.current {
		return
	}
	prev := r.current
	r.current = loc
	r.logger.Debug("location selected", "from", prev, "to", loc)

	for id := 0; id < r.nextID; id++ {
		if fn, ok := r.subs[id]; ok {
			fn(loc)
		}
	}
}
