package sim

import "math"

// TileMatch describes a tile found by a resolver query: the tile itself,
// its grid index, and its cell edges in world coordinates.
type TileMatch struct {
	Tile   Tile
	Index  Index
	X1, X2 float64 // left and right cell edges
	Y1, Y2 float64 // top and bottom cell edges
}

// TileResolver maps continuous world coordinates onto a sparse tile grid.
// It is a pure, stateless query surface over the matrix it wraps.
type TileResolver struct {
	matrix   *Matrix
	tileSize float64
}

// NewTileResolver wraps the given matrix with a cell edge length.
// Panics on a non-positive tile size: that is a construction bug.
func NewTileResolver(matrix *Matrix, tileSize float64) *TileResolver {
	if tileSize <= 0 {
		panic("sim: tile resolver with non-positive tile size")
	}
	return &TileResolver{matrix: matrix, tileSize: tileSize}
}

// Matrix returns the underlying sparse grid.
func (r *TileResolver) Matrix() *Matrix {
	return r.matrix
}

// TileSize returns the cell edge length in world units.
func (r *TileResolver) TileSize() float64 {
	return r.tileSize
}

// ToIndex converts a world coordinate to a tile index.
func (r *TileResolver) ToIndex(pos float64) int {
	return int(math.Floor(pos / r.tileSize))
}

// ToIndexRange returns every tile index whose cell intersects [p1, p2).
// A degenerate range (p1 == p2) still yields exactly one index.
func (r *TileResolver) ToIndexRange(p1, p2 float64) []int {
	pMax := math.Ceil(p2/r.tileSize) * r.tileSize
	indices := make([]int, 0, int((pMax-p1)/r.tileSize)+1)
	pos := p1
	for {
		indices = append(indices, r.ToIndex(pos))
		pos += r.tileSize
		if pos >= pMax {
			break
		}
	}
	return indices
}

// GetByIndex looks up a single cell and, if occupied, fills in its world
// edges.
func (r *TileResolver) GetByIndex(ix, iy int) (TileMatch, bool) {
	tile, ok := r.matrix.Get(ix, iy)
	if !ok {
		return TileMatch{}, false
	}
	x1 := float64(ix) * r.tileSize
	y1 := float64(iy) * r.tileSize
	return TileMatch{
		Tile:  tile,
		Index: Index{X: ix, Y: iy},
		X1:    x1,
		X2:    x1 + r.tileSize,
		Y1:    y1,
		Y2:    y1 + r.tileSize,
	}, true
}

// SearchByPosition returns the tile containing the world point, if any.
func (r *TileResolver) SearchByPosition(x, y float64) (TileMatch, bool) {
	return r.GetByIndex(r.ToIndex(x), r.ToIndex(y))
}

// SearchByRange returns every occupied tile intersecting the world
// rectangle [x1, x2) x [y1, y2). Callers must bound the rectangle to the
// querying entity's extent plus a small movement margin to keep this cheap.
func (r *TileResolver) SearchByRange(x1, x2, y1, y2 float64) []TileMatch {
	var matches []TileMatch
	for _, ix := range r.ToIndexRange(x1, x2) {
		for _, iy := range r.ToIndexRange(y1, y2) {
			if match, ok := r.GetByIndex(ix, iy); ok {
				matches = append(matches, match)
			}
		}
	}
	return matches
}
