package dawg

// Result collects the packed image produced by Build along with the
// statistics a caller (notably cmd/dawgbuild) needs to report on the run.
type Result struct {
	Image PackedImage

	TrieNodes       int
	CompressedNodes int
	Entries         int
}

// CompressionRatio returns the fraction of trie nodes eliminated by
// minimization, in [0, 1). A dictionary with no shared suffixes compresses
// to roughly 0; one with heavy sharing approaches 1.
func (r *Result) CompressionRatio() float64 {
	if r.TrieNodes == 0 {
		return 0
	}
	return 1 - float64(r.CompressedNodes)/float64(r.TrieNodes)
}

// Build runs the full pipeline over words: trie construction, edge-terminal
// rewriting, minimization, and flattening (spec §2). Duplicate words and
// insertion order do not affect the result.
func Build(words []string) (*Result, error) {
	t := NewTrie()
	for _, w := range words {
		t.Insert(w)
	}

	trieNodes := t.CountNodes()

	Rewrite(t.Root())
	compressed := Compress(t.Root())

	image, err := Flatten(t.Root())
	if err != nil {
		return nil, err
	}

	return &Result{
		Image:           image,
		TrieNodes:       trieNodes,
		CompressedNodes: compressed + 1, // + the root, never itself canonicalized
		Entries:         len(image),
	}, nil
}
