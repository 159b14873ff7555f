package dawg

import (
	"strconv"
	"strings"

	"github.com/milden6/dawgc/internal/collections"
)

// Compress canonicalizes every reachable non-root node of the tree rooted
// at root, replacing equivalent subtrees with a single shared node, and
// returns the number of distinct canonical nodes reached from root (not
// counting the root itself).
//
// The root is never submitted to the equivalence table and is never
// replaced: it is always a distinct node, even if some other reachable
// node happens to have an identical child vector. This is what keeps the
// packed image's index 0 meaningful as "the root's child block" (see
// Flatten).
func Compress(root *node) int {
	canon := make(map[string]*node)
	resolved := make(map[*node]*node)

	for i, child := range root.children {
		if child == nil {
			continue
		}
		root.children[i] = canonicalize(child, canon, resolved)
	}

	return len(canon)
}

// canonicalize performs an iterative, explicit-worklist post-order
// traversal of n's subtree, canonicalizing every node bottom-up and
// returning n's own canonical replacement (itself, if n is the first node
// encountered with its signature).
//
// resolved doubles as the "already canonicalized" seen-set described in
// the minimizer's design: once a node has been resolved once, any later
// encounter (possible once sharing exists elsewhere in the same pass)
// returns the cached replacement instead of redescending into it.
func canonicalize(n *node, canon map[string]*node, resolved map[*node]*node) *node {
	if r, ok := resolved[n]; ok {
		return r
	}

	work := collections.NewStack[*node]()
	work.Push(n)

	for !work.IsEmpty() {
		cur, _ := work.Peek()

		if _, ok := resolved[cur]; ok {
			work.Pop()
			continue
		}

		ready := true
		for _, child := range cur.children {
			if child == nil {
				continue
			}
			if _, ok := resolved[child]; ok {
				continue
			}
			work.Push(child)
			ready = false
			break
		}
		if !ready {
			continue
		}

		work.Pop()
		for i, child := range cur.children {
			if child == nil {
				continue
			}
			cur.children[i] = resolved[child]
		}

		sig := signature(cur)
		if existing, ok := canon[sig]; ok {
			resolved[cur] = existing
		} else {
			canon[sig] = cur
			resolved[cur] = cur
		}
	}

	return resolved[n]
}

// signature builds the structural fingerprint described in spec §4.3: the
// tuple of already-canonicalized child references (by stable node id) and
// the 26 edge-terminal bits. Two nodes with identical signatures are, by
// definition, equivalent and may share a single representative.
func signature(n *node) string {
	var b strings.Builder
	for i, child := range n.children {
		if child == nil {
			continue
		}
		b.WriteByte(indexLetter(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(child.id))
		if n.edgeTerminal[i] {
			b.WriteByte('!')
		}
		b.WriteByte(',')
	}
	return b.String()
}
