package vdom

import "strings"

// Walk visits node and its descendants in document order. Component nodes
// are resolved through Render and their output is walked in their place.
// Returning false from fn skips the children of the visited node.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), fn)
		}
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// TextContent returns the concatenated text of node, like the DOM property
// of the same name.
func TextContent(node *VNode) string {
	var sb strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			sb.WriteString(n.Text)
		}
		return true
	})
	return sb.String()
}

// FindAll returns every element in the resolved tree for which match
// returns true.
func FindAll(node *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// HasClass reports whether the element's class attribute contains class.
func (v *VNode) HasClass(class string) bool {
	if v == nil || v.Props == nil {
		return false
	}
	s, _ := v.Props["class"].(string)
	for _, c := range strings.Fields(s) {
		if c == class {
			return true
		}
	}
	return false
}
