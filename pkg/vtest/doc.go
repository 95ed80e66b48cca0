// Package vtest provides testing helpers for components.
//
// # Quick Start
//
//	func TestCell(t *testing.T) {
//	    h := vtest.New()
//	    inst := h.Mount("cell", demo.SelfCell)
//	    h.Click(t, vtest.Boxes(inst.Render())[0])
//	    vtest.ExpectContains(t, inst.Render(), "Click Count: 1")
//	}
//
// A Harness owns a scheduler, a component runtime and a root owner, so every
// Click runs as one interaction: one flush, at most one render per instance.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, "Render Count: 2")
//	vtest.ExpectNotContains(t, node, "Increase")
package vtest
