/*
Package dawg builds a Directed Acyclic Word Graph (DAWG) from a list of
lowercase words and packs it into a compact, fixed-width binary image
suitable for memory-mapped membership queries and prefix enumeration.

The input alphabet is exactly the 26 lowercase letters 'a'..'z'; building
is a one-shot, single-threaded pipeline with no support for incremental
updates after the image is produced:

	Trie -> edge-terminal rewrite -> minimization -> flattening -> persistence

Construction first builds a full trie from the word list (insertion order
does not matter), then moves each node's end-of-word flag onto its incoming
edges, then canonicalizes the tree bottom-up into a minimal DAG by merging
nodes with identical outgoing-edge signatures, and finally flattens the DAG
into a dense array of 32-bit packed entries addressed by integer offset.

	result, err := dawg.Build(words)
	if err != nil {
	    log.Fatal(err)
	}
	_, err = result.Image.WriteFile("dawg.bin")

The packed image can later be reopened with Open (memory-mapped) or
ReadFile (loaded fully into memory) and walked with Enumerate without
reconstructing any in-memory graph.
*/
package dawg
