package dawg_test

import (
	"strings"
	"testing"

	"github.com/milden6/dawgc"
)

func TestCapacityErrorMessage(t *testing.T) {
	err := &dawg.CapacityError{Entries: 1 << 25, Limit: 1 << 25}
	if !strings.Contains(err.Error(), "33554432") {
		t.Errorf("CapacityError.Error() = %q, want it to mention the entry count", err.Error())
	}
}

func TestFlattenOffsetZeroIsRoot(t *testing.T) {
	tr := dawg.NewTrie()
	tr.Insert("a")
	tr.Insert("b")
	dawg.Rewrite(tr.Root())
	dawg.Compress(tr.Root())

	img, err := dawg.Flatten(tr.Root())
	if err != nil {
		t.Fatal(err)
	}

	// Root has two children ('a', 'b'), so its block occupies entries 0-1.
	if len(img) < 2 {
		t.Fatalf("image has %d entries, want at least 2", len(img))
	}
	// Entry 0: letter 'a' (1) with end-of-word; entry 1: letter 'b' (2) with
	// end-of-word and end-of-node. Both point at the childless leaf (next 0).
	if got, want := img[0], uint32(1|1<<5); got != want {
		t.Errorf("img[0] = %#x, want %#x (root's 'a' edge)", got, want)
	}
	if got, want := img[1], uint32(2|1<<5|1<<6); got != want {
		t.Errorf("img[1] = %#x, want %#x (root's 'b' edge, end of block)", got, want)
	}
}

func TestFlattenEmptyDictionary(t *testing.T) {
	tr := dawg.NewTrie()
	dawg.Rewrite(tr.Root())
	dawg.Compress(tr.Root())

	img, err := dawg.Flatten(tr.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(img) != 0 {
		t.Errorf("Flatten on an empty trie produced %d entries, want 0", len(img))
	}
}
