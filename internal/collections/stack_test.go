package collections_test

import (
	"testing"

	"github.com/milden6/dawgc/internal/collections"
)

func TestStackLIFOOrder(t *testing.T) {
	s := collections.NewStack[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}

	want := []int{3, 2, 1}
	for _, w := range want {
		got, ok := s.Pop()
		if !ok || got != w {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, w)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty stack reported ok")
	}
}

func TestStackPeekDoesNotRemove(t *testing.T) {
	s := collections.NewStack[string]()
	s.Push("a")

	if v, ok := s.Peek(); !ok || v != "a" {
		t.Fatalf("Peek() = (%q, %v), want (a, true)", v, ok)
	}
	if got, want := s.Size(), 1; got != want {
		t.Errorf("Size() after Peek = %d, want %d", got, want)
	}
}

func TestStackIsEmpty(t *testing.T) {
	s := collections.NewStack[int]()
	if !s.IsEmpty() {
		t.Error("new stack should be empty")
	}
	s.Push(1)
	if s.IsEmpty() {
		t.Error("stack with one element should not be empty")
	}
}
