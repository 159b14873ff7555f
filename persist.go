package dawg

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Persistence format: a flat sequence of little-endian uint32 words, one
// per packed entry, with no header. The number of words is the file size
// divided by 4; there is nothing else to parse (spec §6).

// Write serializes img as raw little-endian uint32 words to w and returns
// the number of bytes written.
func (img PackedImage) Write(w io.Writer) (int64, error) {
	buf := make([]byte, 4*len(img))
	for i, v := range img {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// WriteFile creates (or truncates) filename and writes img to it.
func (img PackedImage) WriteFile(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return img.Write(f)
}

// ReadFile loads an entire packed image from filename into memory.
func ReadFile(filename string) (PackedImage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) (PackedImage, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("dawg: corrupt image: %d bytes is not a multiple of 4", len(data))
	}
	img := make(PackedImage, len(data)/4)
	for i := range img {
		img[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return img, nil
}

// MappedImage is a PackedImage backed by a memory-mapped file rather than a
// heap-allocated slice: entries are decoded from the mapping on demand, so
// opening even a very large image costs no more than a handful of page
// faults (spec §6, "large dictionaries").
type MappedImage struct {
	r *mmap.ReaderAt
}

// Open memory-maps filename for reading. The caller must Close the result
// when finished with it.
func Open(filename string) (*MappedImage, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	return &MappedImage{r: r}, nil
}

// Close releases the underlying mapping.
func (m *MappedImage) Close() error {
	return m.r.Close()
}

// Len returns the number of packed entries in the mapped image.
func (m *MappedImage) Len() int {
	return m.r.Len() / 4
}

// At decodes the entry at index i directly from the mapping.
func (m *MappedImage) At(i int) uint32 {
	var buf [4]byte
	if _, err := m.r.ReadAt(buf[:], int64(i*4)); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Enumerate walks the mapped image exactly as PackedImage.Enumerate does,
// without first copying it into a slice.
func (m *MappedImage) Enumerate(fn EnumFn) {
	if m.Len() == 0 {
		return
	}
	m.walk(0, nil, fn)
}

func (m *MappedImage) walk(index int, prefix []byte, fn EnumFn) EnumerationResult {
	for {
		v := m.At(index)
		letter := unpackLetter(v)
		word := append(prefix, 'a'+byte(letter)-1)

		result := Continue
		if unpackEndOfWord(v) {
			result = fn(string(word))
		}
		if result == Stop {
			return Stop
		}
		if result != Skip {
			if next := unpackNext(v); next != 0 {
				if m.walk(next, word, fn) == Stop {
					return Stop
				}
			}
		}
		if unpackEndOfNode(v) {
			return Continue
		}
		index++
	}
}
