package tensor

import (
	"reflect"
	"testing"
)

func TestGenerator_AtForwardsCoordinates(t *testing.T) {
	var seen []int
	g := NewGenerator(Shape{3, 4}, func(ix []int) int {
		seen = append(seen[:0], ix...)
		return ix[0]*10 + ix[1]
	})

	if got := g.At(2, 3); got != 23 {
		t.Errorf("At(2,3) = %d, want 23", got)
	}
	if !reflect.DeepEqual(seen, []int{2, 3}) {
		t.Errorf("element func received %v, want [2 3]", seen)
	}
	if got := g.Element([]int{1, 2}); got != 12 {
		t.Errorf("Element([1 2]) = %d, want 12", got)
	}
}

func TestGenerator_MaterializeRowMajor(t *testing.T) {
	var visited [][]int
	g := NewGenerator(Shape{2, 3}, func(ix []int) int {
		visited = append(visited, append([]int(nil), ix...))
		return ix[0]*3 + ix[1]
	})

	got := g.Materialize()
	want := []int{0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Materialize() = %v, want %v", got, want)
	}

	wantOrder := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if !reflect.DeepEqual(visited, wantOrder) {
		t.Errorf("visit order %v, want %v", visited, wantOrder)
	}
}

func TestGenerator_ZeroExtentNeverInvoked(t *testing.T) {
	calls := 0
	g := NewGenerator(Shape{2, 0, 3}, func(ix []int) float64 {
		calls++
		return 0
	})

	if got := g.Materialize(); len(got) != 0 {
		t.Errorf("Materialize() returned %d elements, want 0", len(got))
	}
	if calls != 0 {
		t.Errorf("element func invoked %d times for a zero-size shape", calls)
	}
}

func TestGenerator_RankZero(t *testing.T) {
	g := NewGenerator(Shape{}, func(ix []int) string {
		if len(ix) != 0 {
			t.Fatalf("rank-0 access received index %v", ix)
		}
		return "scalar"
	})

	if g.Size() != 1 || g.Rank() != 0 {
		t.Fatalf("rank-0 generator: Size()=%d Rank()=%d", g.Size(), g.Rank())
	}
	if got := g.At(); got != "scalar" {
		t.Errorf("At() = %q, want %q", got, "scalar")
	}
	if got := g.Materialize(); len(got) != 1 || got[0] != "scalar" {
		t.Errorf("Materialize() = %v", got)
	}
}

func TestGenerator_ShapeIsCopied(t *testing.T) {
	shape := Shape{2, 2}
	g := NewGenerator(shape, func(ix []int) int { return 0 })
	shape[0] = 99
	if g.Shape()[0] != 2 {
		t.Errorf("generator shape aliases the caller's slice")
	}
}
