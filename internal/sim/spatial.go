package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// SpatialGrid is the uniform spatial hash used as the entity broad phase.
// An entity appears in every cell its bounding box spans; the grid is
// rebuilt per refresh cycle, not maintained incrementally as entities move.
// Cell size must exceed the largest expected entity extent so one entity
// spans a bounded number of cells.
type SpatialGrid struct {
	cellSize float64
	cells    map[Index][]*Entity
}

// NewSpatialGrid creates an empty grid with the given cell edge length.
// Panics on a non-positive cell size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		panic("sim: spatial grid with non-positive cell size")
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[Index][]*Entity),
	}
}

// Clear removes all entities, keeping allocated cell capacity.
func (g *SpatialGrid) Clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
}

func (g *SpatialGrid) cellRange(b *core.Bounds, margin float64) (x1, x2, y1, y2 int) {
	x1 = int(math.Floor((b.Left() - margin) / g.cellSize))
	x2 = int(math.Floor((b.Right() + margin) / g.cellSize))
	y1 = int(math.Floor((b.Top() - margin) / g.cellSize))
	y2 = int(math.Floor((b.Bottom() + margin) / g.cellSize))
	return x1, x2, y1, y2
}

// Add inserts the entity into every cell its bounding box spans
// (inclusive on all four edges).
func (g *SpatialGrid) Add(e *Entity) {
	x1, x2, y1, y2 := g.cellRange(e.Bounds, 0)
	for cx := x1; cx <= x2; cx++ {
		for cy := y1; cy <= y2; cy++ {
			idx := Index{X: cx, Y: cy}
			g.cells[idx] = append(g.cells[idx], e)
		}
	}
}

// Query returns the entities registered in every cell the given bounds,
// grown by margin, span — excluding the querying entity itself. The margin
// absorbs movement between grid rebuilds. Cells are visited in row-major
// index order and duplicates dropped, so the result order is deterministic
// for a deterministically built grid.
func (g *SpatialGrid) Query(b *core.Bounds, margin float64, exclude *Entity) []*Entity {
	x1, x2, y1, y2 := g.cellRange(b, margin)

	var result []*Entity
	seen := make(map[*Entity]struct{})
	for cy := y1; cy <= y2; cy++ {
		for cx := x1; cx <= x2; cx++ {
			for _, e := range g.cells[Index{X: cx, Y: cy}] {
				if e == exclude {
					continue
				}
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				result = append(result, e)
			}
		}
	}
	return result
}
