package core

import (
	"math"
	"testing"
)

func box(x, y, w, h float64) *Bounds {
	pos := V(x, y)
	return NewBounds(&pos, V(w, h), Vec{})
}

func TestBoundsOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Bounds
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        box(0, 0, 10, 10),
			b:        box(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        box(0, 0, 10, 10),
			b:        box(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        box(0, 0, 10, 10),
			b:        box(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge (no overlap)",
			a:        box(0, 0, 10, 10),
			b:        box(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge (no overlap)",
			a:        box(0, 0, 10, 10),
			b:        box(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0, 20, 20),
			b:        box(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "corner sliver overlap",
			a:        box(0, 0, 10, 10),
			b:        box(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Overlap must be symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsEdges(t *testing.T) {
	pos := V(5, 10)
	b := NewBounds(&pos, V(20, 15), V(1, 2))

	if b.Left() != 6 {
		t.Errorf("Left() = %v, expected 6", b.Left())
	}
	if b.Right() != 26 {
		t.Errorf("Right() = %v, expected 26", b.Right())
	}
	if b.Top() != 12 {
		t.Errorf("Top() = %v, expected 12", b.Top())
	}
	if b.Bottom() != 27 {
		t.Errorf("Bottom() = %v, expected 27", b.Bottom())
	}
	if b.CenterX() != 16 || b.CenterY() != 19.5 {
		t.Errorf("Center = (%v, %v), expected (16, 19.5)", b.CenterX(), b.CenterY())
	}
}

func TestBoundsEdgeRoundTrip(t *testing.T) {
	pos := V(3, 4)
	b := NewBounds(&pos, V(16, 16), V(1, 1))

	topBefore := b.Top()
	_ = topBefore

	b.SetBottom(100)
	if math.Abs(b.Bottom()-100) > 1e-9 {
		t.Errorf("Bottom() after SetBottom(100) = %v", b.Bottom())
	}
	// Top follows because size is fixed
	if math.Abs(b.Top()-84) > 1e-9 {
		t.Errorf("Top() after SetBottom(100) = %v, expected 84", b.Top())
	}

	b.SetRight(50)
	if math.Abs(b.Right()-50) > 1e-9 {
		t.Errorf("Right() after SetRight(50) = %v", b.Right())
	}

	// Edge setters must write through to the owning position
	if math.Abs(pos.X-(50-16-1)) > 1e-9 {
		t.Errorf("pos.X = %v after SetRight(50), expected 33", pos.X)
	}

	b.SetCenterX(0)
	if math.Abs(b.CenterX()) > 1e-9 {
		t.Errorf("CenterX() after SetCenterX(0) = %v", b.CenterX())
	}
}

func TestBoundsContains(t *testing.T) {
	outer := box(0, 0, 20, 20)

	tests := []struct {
		name     string
		inner    *Bounds
		expected bool
	}{
		{"fully inside", box(5, 5, 5, 5), true},
		{"equal bounds", box(0, 0, 20, 20), true},
		{"sticking out right", box(15, 5, 10, 5), false},
		{"fully outside", box(30, 30, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Contains(tc.inner); got != tc.expected {
				t.Errorf("Contains() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsClone(t *testing.T) {
	pos := V(1, 2)
	b := NewBounds(&pos, V(4, 4), Vec{})
	c := b.Clone()

	c.SetLeft(100)
	if b.Left() != 1 {
		t.Errorf("mutating clone moved the original: Left() = %v", b.Left())
	}
	if c.Left() != 100 {
		t.Errorf("clone Left() = %v, expected 100", c.Left())
	}
}

func TestNewBoundsNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBounds with negative size did not panic")
		}
	}()
	pos := Vec{}
	NewBounds(&pos, V(-1, 5), Vec{})
}
