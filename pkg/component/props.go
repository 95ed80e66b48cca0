package component

import "github.com/vango-dev/rerender/pkg/reactive"

// Props are the inputs a parent passes to a child on every render.
type Props map[string]any

// Equal reports whether p and q hold the same keys with equal values.
func (p Props) Equal(q Props) bool {
	if len(p) != len(q) {
		return false
	}
	for k, a := range p {
		b, ok := q[k]
		if !ok || !valueEqual(a, b) {
			return false
		}
	}
	return true
}

// valueEqual compares prop values without risking a panic on
// uncomparable dynamic types.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *reactive.Callback:
		bv, ok := b.(*reactive.Callback)
		return ok && av == bv
	case *Handle:
		bv, ok := b.(*Handle)
		return ok && av == bv
	default:
		// func values and anything else: treated as changed.
		return false
	}
}

// Int returns the int stored at key, or 0.
func (p Props) Int(key string) int {
	v, _ := p[key].(int)
	return v
}

// String returns the string stored at key, or "".
func (p Props) String(key string) string {
	v, _ := p[key].(string)
	return v
}

// Callback returns the callback stored at key, or nil.
func (p Props) Callback(key string) *reactive.Callback {
	v, _ := p[key].(*reactive.Callback)
	return v
}

// Handle returns the trigger handle stored at key, or nil.
func (p Props) Handle(key string) *Handle {
	v, _ := p[key].(*Handle)
	return v
}
