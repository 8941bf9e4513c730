package vdom

import (
	"fmt"
	"strings"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// An element is interactive if it has event handlers (props starting with "on").
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			n.HID = gen.Next()
		}
		return true
	})
}

// AssignStableHIDs assigns HIDs that survive re-renders of a changed tree.
// An interactive element with an id uses the id. Otherwise the HID is the
// nearest ancestor id joined with the element's key, or with its tag and
// position among the unkeyed interactive elements of that ancestor.
func AssignStableHIDs(node *VNode) {
	seen := make(map[string]int)
	assignStable(node, "", make(map[string]int), seen)
}

func assignStable(n *VNode, scope string, counts, seen map[string]int) {
	if n == nil {
		return
	}
	id, _ := n.Props["id"].(string)
	if n.IsInteractive() {
		var hid string
		switch {
		case id != "":
			hid = id
		case n.Key != "":
			hid = scope + ":" + n.Key
		default:
			slot := scope + ":" + n.Tag
			counts[slot]++
			hid = fmt.Sprintf("%s%d", slot, counts[slot])
		}
		if seen[hid]++; seen[hid] > 1 {
			hid = fmt.Sprintf("%s~%d", hid, seen[hid])
		}
		n.HID = hid
	}
	if id != "" && n.Kind == KindElement {
		scope = id
	}
	for _, child := range n.Children {
		assignStable(child, scope, counts, seen)
	}
}

// HandlerTable maps "hid/event" to the handler declared on that element.
type HandlerTable map[string]any

// Lookup returns the handler for an element id and event name ("input", "click").
func (t HandlerTable) Lookup(hid, event string) (any, bool) {
	h, ok := t[hid+"/"+strings.TrimPrefix(event, "on")]
	return h, ok
}

// CollectHandlers returns the handlers of every element that carries a HID.
func CollectHandlers(node *VNode) HandlerTable {
	table := make(HandlerTable)
	Walk(node, func(n *VNode) bool {
		if n.HID == "" {
			return true
		}
		for key, value := range n.Props {
			if strings.HasPrefix(key, "on") && IsHandler(value) {
				table[n.HID+"/"+key[2:]] = value
			}
		}
		return true
	})
	return table
}

// FindByHID finds a node by its HID in the tree.
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

// ClearHIDs removes all HIDs from the tree.
func ClearHIDs(node *VNode) {
	Walk(node, func(n *VNode) bool {
		n.HID = ""
		return true
	})
}
