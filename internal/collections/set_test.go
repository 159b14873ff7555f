package collections_test

import (
	"testing"

	"github.com/milden6/dawgc/internal/collections"
)

func TestSetInsertContain(t *testing.T) {
	s := collections.NewSet[string]()
	if s.Contain("a") {
		t.Fatal("empty set should not contain anything")
	}

	s.Insert("a")
	if !s.Contain("a") {
		t.Error("set should contain inserted member")
	}
	if s.Contain("b") {
		t.Error("set should not contain un-inserted member")
	}
}

func TestSetInsertIsIdempotent(t *testing.T) {
	s := collections.NewSet[int]()
	s.Insert(1)
	s.Insert(1)
	if got, want := s.Size(), 1; got != want {
		t.Errorf("Size() after duplicate inserts = %d, want %d", got, want)
	}
}

func TestSetRemove(t *testing.T) {
	s := collections.NewSet[int]()
	s.Insert(1)
	s.Remove(1)
	if s.Contain(1) {
		t.Error("set should not contain removed member")
	}
	if got, want := s.Size(), 0; got != want {
		t.Errorf("Size() after Remove = %d, want %d", got, want)
	}
}
