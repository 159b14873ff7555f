package dawg

// Rewrite moves each node's end-of-word flag onto its incoming edges: for
// every edge root->child, edgeTerminal is set to child's nodeTerminal as
// observed at this moment. nodeTerminal is unused after this call.
//
// The trie is still a tree at this point (minimization has not run), so
// every node is reachable by exactly one path and a single recursive
// descent visits each node exactly once; no visited-tracking is needed
// here the way it is for Compress.
//
// This must run before Compress, never after: moving terminality onto
// edges is what lets two leaves that differ only in terminality collapse
// into one canonical sink (see DESIGN.md).
func Rewrite(root *node) {
	for i, child := range root.children {
		if child == nil {
			continue
		}
		root.edgeTerminal[i] = child.nodeTerminal
		Rewrite(child)
	}
}
