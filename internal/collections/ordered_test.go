package collections_test

import (
	"testing"

	"github.com/milden6/dawgc/internal/collections"
)

func TestMin(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{1, 2, 1},
		{2, 1, 1},
		{3, 3, 3},
		{-1, 0, -1},
	}

	for _, c := range cases {
		if got := collections.Min(c.a, c.b); got != c.want {
			t.Errorf("Min(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
