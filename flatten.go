package dawg

import (
	"fmt"

	"github.com/milden6/dawgc/internal/collections"
)

// maxPackedEntries is the largest packed image the 25-bit next field can
// address (spec §3, §9): entries are numbered 0..2^25-1, and 0 is reserved
// as the "no children" sentinel, so an index of exactly maxPackedEntries
// would overflow next.
const maxPackedEntries = 1 << nextBits

// CapacityError is returned by Flatten when the packed image would need
// more entries than the 25-bit next field can address.
type CapacityError struct {
	Entries int
	Limit   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dawg: packed image needs %d entries, exceeding the %d-entry limit of the 25-bit next field", e.Entries, e.Limit)
}

// Flatten assigns every reachable node with at least one outgoing edge a
// contiguous child block, then emits one packed entry per edge into a
// single dense array (spec §4.4).
//
// It runs two breadth-first passes over the same reachable-node order:
// pass one assigns each node's block offset, pass two emits entries now
// that every child's offset is already known. Index 0 is always root's own
// child block, matching the Packed Walker's convention of starting
// enumeration at offset 0.
func Flatten(root *node) (PackedImage, error) {
	offsets := make(map[*node]int)
	size := childCount(root)
	offsets[root] = 0

	bfsOrder := []*node{root}
	queue := collections.NewQueue[*node]()
	queue.Enqueue(root)

	for !queue.IsEmpty() {
		n, _ := queue.Dequeue()
		for _, child := range n.children {
			if child == nil {
				continue
			}
			if _, seen := offsets[child]; seen {
				continue
			}
			cc := childCount(child)
			if cc == 0 {
				offsets[child] = 0
				continue
			}
			offsets[child] = size
			size += cc
			bfsOrder = append(bfsOrder, child)
			queue.Enqueue(child)
		}
	}

	if size > maxPackedEntries {
		return nil, &CapacityError{Entries: size, Limit: maxPackedEntries}
	}

	image := make(PackedImage, size)
	for _, n := range bfsOrder {
		base := offsets[n]
		last := lastChildIndex(n)
		slot := 0
		for i, child := range n.children {
			if child == nil {
				continue
			}
			image[base+slot] = packEntry(i+1, n.edgeTerminal[i], i == last, offsets[child])
			slot++
		}
	}

	return image, nil
}

// lastChildIndex returns the highest letter index with an existing edge, or
// -1 if n has no children. It tells the emission pass which entry of a
// child block is the end-of-node entry.
func lastChildIndex(n *node) int {
	last := -1
	for i, c := range n.children {
		if c != nil {
			last = i
		}
	}
	return last
}
