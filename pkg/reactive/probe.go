package reactive

// Probe is a render-count probe: it is ticked exactly once per
// re-computation of the component instance that owns it.
//
// A probe lives and dies with its instance. A re-created instance gets a
// fresh probe, so its first render reports 1 again.
type Probe struct {
	n int
}

// Tick records one re-computation and returns the new count.
func (p *Probe) Tick() int {
	p.n++
	return p.n
}

// Value returns the number of recorded re-computations.
func (p *Probe) Value() int {
	return p.n
}
