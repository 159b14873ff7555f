package dawg_test

import (
	"os"
	"testing"

	"github.com/milden6/dawgc"
)

func TestReadFileRejectsCorruptLength(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/corrupt.bin"

	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := dawg.ReadFile(path); err == nil {
		t.Error("ReadFile on a 3-byte file should report an error, got nil")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := dawg.ReadFile("/nonexistent/path/to/dawg.bin"); err == nil {
		t.Error("ReadFile on a missing file should report an error, got nil")
	}
}
