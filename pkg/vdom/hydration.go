package vdom

import "fmt"

// HIDGenerator generates hydration IDs for interactive elements.
// A generator belongs to one render pass of one session.
type HIDGenerator struct {
	counter uint32
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	return g.counter
}

// AssignHIDs walks the resolved tree in document order and assigns HIDs to
// interactive elements. Non-interactive elements get their HID cleared, so
// a cached subtree reused across renders never keeps a stale ID.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.Kind != KindElement {
			return true
		}
		if n.IsInteractive() {
			n.HID = gen.Next()
		} else {
			n.HID = ""
		}
		return true
	})
}

// CollectHandlers returns the handlers of every element with a HID, keyed
// "hid_event" (e.g., "h1_onclick").
func CollectHandlers(node *VNode) map[string]Handler {
	result := make(map[string]Handler)
	Walk(node, func(n *VNode) bool {
		if n.HID == "" {
			return true
		}
		for key, value := range n.Props {
			if h, ok := value.(Handler); ok {
				result[n.HID+"_"+key] = h
			}
		}
		return true
	})
	return result
}

// FindByHID finds a node by its HID in the resolved tree.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive(node *VNode) int {
	count := 0
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			count++
		}
		return true
	})
	return count
}
