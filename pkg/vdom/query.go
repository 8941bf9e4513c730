package vdom

// Walk visits the node and its descendants depth-first, in document order.
// Returning false from visit skips the node's children.
func Walk(node *VNode, visit func(*VNode) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, visit)
	}
}

// Find returns every element below the roots that satisfies match.
func Find(roots []*VNode, match func(*VNode) bool) []*VNode {
	var found []*VNode
	for _, root := range roots {
		Walk(root, func(n *VNode) bool {
			if n.Kind == KindElement && match(n) {
				found = append(found, n)
			}
			return true
		})
	}
	return found
}

// FindByID returns the first element with the given id attribute.
func FindByID(roots []*VNode, id string) *VNode {
	matches := Find(roots, func(n *VNode) bool { return n.Attr("id") == id })
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindByTag returns every element with the tag name.
func FindByTag(roots []*VNode, tag string) []*VNode {
	return Find(roots, func(n *VNode) bool { return n.Tag == tag })
}

// FindByClass returns every element carrying the class name.
func FindByClass(roots []*VNode, class string) []*VNode {
	return Find(roots, func(n *VNode) bool { return HasClass(n, class) })
}
