package sim

import (
	"reflect"
	"testing"
)

func TestToIndex(t *testing.T) {
	r := NewTileResolver(NewMatrix(), 16)

	tests := []struct {
		pos      float64
		expected int
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{255, 15},
		{-1, -1},
		{-16, -1},
		{-16.1, -2},
	}

	for _, tc := range tests {
		if got := r.ToIndex(tc.pos); got != tc.expected {
			t.Errorf("ToIndex(%v) = %d, expected %d", tc.pos, got, tc.expected)
		}
	}
}

func TestToIndexRange(t *testing.T) {
	r := NewTileResolver(NewMatrix(), 16)

	tests := []struct {
		name     string
		p1, p2   float64
		expected []int
	}{
		{"degenerate range yields one index", 14, 14, []int{0}},
		{"entity spanning a cell boundary", 14, 18, []int{0, 1}},
		{"exactly one cell", 0, 16, []int{0}},
		{"three cells", 0, 40, []int{0, 1, 2}},
		{"inside a single cell", 20, 28, []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ToIndexRange(tc.p1, tc.p2)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ToIndexRange(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.expected)
			}
		})
	}
}

func TestSearchByRangeSkipsAbsentCells(t *testing.T) {
	m := NewMatrix()
	m.Set(0, 0, Tile{Style: "ground", Behavior: "ground"})
	m.Set(2, 0, Tile{Style: "ground", Behavior: "ground"})
	r := NewTileResolver(m, 16)

	// The query spans cells 0..2 on X but cell 1 is absent and must be
	// skipped, not synthesized.
	matches := r.SearchByRange(0, 48, 0, 16)
	if len(matches) != 2 {
		t.Fatalf("SearchByRange returned %d matches, expected 2", len(matches))
	}
	for _, match := range matches {
		if match.Index.X == 1 {
			t.Errorf("SearchByRange synthesized a tile at absent cell 1")
		}
	}
}

func TestSearchByPosition(t *testing.T) {
	m := NewMatrix()
	m.Set(3, 2, Tile{Style: "brick", Behavior: "brick"})
	r := NewTileResolver(m, 16)

	match, ok := r.SearchByPosition(50, 40)
	if !ok {
		t.Fatal("SearchByPosition missed an occupied cell")
	}
	if match.X1 != 48 || match.X2 != 64 || match.Y1 != 32 || match.Y2 != 48 {
		t.Errorf("match edges = (%v, %v, %v, %v)", match.X1, match.X2, match.Y1, match.Y2)
	}

	if _, ok := r.SearchByPosition(500, 500); ok {
		t.Error("SearchByPosition found a tile in an empty cell")
	}
}

func TestNewTileResolverPanicsOnBadTileSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTileResolver with zero tile size did not panic")
		}
	}()
	NewTileResolver(NewMatrix(), 0)
}
