// Package wordfile loads candidate dictionary words from a plain text
// file, one per line.
package wordfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/milden6/dawgc/internal/collections"
)

// maxLineLen mirrors the reference loader's fixed 256-byte line buffer: a
// line longer than this is truncated before validation rather than
// rejected outright.
const maxLineLen = 255

// Load reads one candidate word per line from r and reports how many
// non-empty lines were rejected.
//
// A line is accepted if, after trailing-whitespace trimming and
// lowercasing, every remaining byte is 'a'..'z' and at least one byte is
// left; anything else (digits, punctuation, accented letters) is counted
// in skipped rather than aborting the read. Blank lines are silently
// ignored and counted in neither total.
func Load(r io.Reader) (words []string, skipped int) {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')

		if n := collections.Min(len(line), maxLineLen); n < len(line) {
			line = line[:n]
		}
		line = strings.TrimRight(line, " \t\r\n")

		if line != "" {
			if clean, ok := cleanWord(line); ok {
				words = append(words, clean)
			} else {
				skipped++
			}
		}

		if err != nil {
			break
		}
	}

	return words, skipped
}

// cleanWord lowercases word in place and reports whether every byte is an
// ASCII letter; any other byte rejects the whole word.
func cleanWord(word string) (string, bool) {
	b := []byte(word)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c - 'A' + 'a'
		case c < 'a' || c > 'z':
			return "", false
		}
	}
	return string(b), true
}
