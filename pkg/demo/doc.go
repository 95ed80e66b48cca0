// Package demo contains the cells, page assemblies and content views of the
// re-render lab.
//
// Three page assemblies show the same screen built three ways:
//
//   - SelfDrivenPage: every cell owns its counter; the page reaches a cell
//     through a component.Handle.
//   - ParentDrivenPage: the page owns every counter and passes counts and
//     stable callbacks down to memoized cells.
//   - ContextDrivenPage: a store.BoxStore owns every counter; the content and
//     both cells consume the whole store.
//
// Every cell shows its render count next to its click count, so the cost of
// each pattern is visible while clicking.
package demo
