// Command dawgbuild builds a DAWG from a word list and writes it to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milden6/dawgc"
	"github.com/milden6/dawgc/internal/wordfile"
)

func main() {
	log.SetFlags(0)

	outFile := flag.String("out", "dawg.bin", "packed DAWG output path")
	dotFile := flag.String("dot", "dawg.dot", "Graphviz export path (skipped for DAWGs over 100 nodes)")
	flag.Parse()

	input := "words.txt"
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	if err := run(input, *outFile, *dotFile); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(input, outFile, dotFile string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", input, err)
	}
	fmt.Printf("Loading words from: %s\n", input)

	words, skipped := wordfile.Load(f)
	f.Close()

	fmt.Printf("Words loaded: %d\n", len(words))
	if skipped > 0 {
		fmt.Printf("Words skipped (non-alpha): %d\n", skipped)
	}
	fmt.Println()

	result, err := dawg.Build(words)
	if err != nil {
		return err
	}

	fmt.Println("--- Before compression ---")
	fmt.Printf("Trie nodes: %d\n\n", result.TrieNodes)

	fmt.Println("--- After compression ---")
	fmt.Printf("DAWG nodes: %d\n", result.CompressedNodes)
	fmt.Printf("Compression: %d -> %d nodes (%.1f%% reduction)\n\n",
		result.TrieNodes, result.CompressedNodes, 100*result.CompressionRatio())

	fmt.Println("--- Flattening DAWG ---")
	fmt.Printf("Packed DAWG: %d entries (%d bytes)\n\n", result.Entries, 4*result.Entries)

	if result.CompressedNodes <= 100 {
		if err := writeDot(dotFile, words); err != nil {
			return err
		}
		fmt.Printf("DOT file written to: %s\n", dotFile)
	}

	if _, err := result.Image.WriteFile(outFile); err != nil {
		return fmt.Errorf("could not write %s: %w", outFile, err)
	}
	fmt.Printf("Binary file written to: %s\n", outFile)

	verified, err := verify(outFile)
	if err != nil {
		return err
	}
	fmt.Printf("Verification: %d words read back from %s\n", verified, outFile)

	return nil
}

// writeDot rebuilds the pre-flattening tree a second time so it can export
// the DOT file from node pointers rather than packed entries; this is only
// ever reached for small dictionaries (<=100 nodes) per the guard in run.
func writeDot(dotFile string, words []string) error {
	t := dawg.NewTrie()
	for _, w := range words {
		t.Insert(w)
	}
	dawg.Rewrite(t.Root())
	dawg.Compress(t.Root())

	f, err := os.Create(dotFile)
	if err != nil {
		return fmt.Errorf("could not open DOT file: %w", err)
	}
	defer f.Close()
	return dawg.WriteDot(f, t.Root())
}

// verify re-reads the just-written binary file and counts the words it
// enumerates, as an end-to-end sanity check on the whole pipeline.
func verify(outFile string) (int, error) {
	img, err := dawg.ReadFile(outFile)
	if err != nil {
		return 0, fmt.Errorf("could not verify %s: %w", outFile, err)
	}
	count := 0
	img.Enumerate(func(string) dawg.EnumerationResult {
		count++
		return dawg.Continue
	})
	return count, nil
}
