package dawg

import (
	"fmt"
	"io"

	"github.com/milden6/dawgc/internal/collections"
)

// WriteDot renders the DAWG rooted at root as a Graphviz digraph (spec
// §4.8 / §6), labeling the root as a double circle and numbering every
// reachable node in BFS assignment order starting at 0 for the root, and
// drawing terminal (end-of-word) edges in green with extra pen width.
// Callers are expected to only do this for small DAWGs; there is no
// node-count guard here, that decision belongs to the caller (see
// cmd/dawgbuild).
func WriteDot(w io.Writer, root *node) error {
	fmt.Fprintln(w, "digraph DAWG {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=circle width=0.3 fontsize=10];")
	fmt.Fprintln(w, "  edge [fontsize=12];")

	ids := map[*node]int{root: 0}
	nextID := 1

	visited := collections.NewSet[*node]()
	visited.Insert(root)
	queue := collections.NewQueue[*node]()
	queue.Enqueue(root)

	var order []*node
	for !queue.IsEmpty() {
		n, _ := queue.Dequeue()
		order = append(order, n)
		for _, child := range n.children {
			if child == nil || visited.Contain(child) {
				continue
			}
			visited.Insert(child)
			queue.Enqueue(child)
			ids[child] = nextID
			nextID++
		}
	}

	fmt.Fprintf(w, "  n%d [label=\"\" shape=doublecircle];\n", ids[root])
	for _, n := range order {
		if n == root {
			continue
		}
		fmt.Fprintf(w, "  n%d [label=\"%d\"];\n", ids[n], ids[n])
	}

	for _, n := range order {
		for i, child := range n.children {
			if child == nil {
				continue
			}
			letter := string(indexLetter(i))
			if n.edgeTerminal[i] {
				fmt.Fprintf(w, "  n%d -> n%d [label=\"%s\" color=green fontcolor=green penwidth=2.0];\n", ids[n], ids[child], letter)
			} else {
				fmt.Fprintf(w, "  n%d -> n%d [label=\"%s\"];\n", ids[n], ids[child], letter)
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
