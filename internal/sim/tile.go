package sim

// Tile is an immutable per-cell descriptor.
type Tile struct {
	Style    string // visual style key, drives rendering
	Type     string // optional semantic type (e.g. "solid")
	Behavior string // optional key selecting a collision-response handler pair
}

// Index addresses a cell in a sparse tile grid.
type Index struct {
	X, Y int
}

// Matrix is a sparse 2D tile grid. Absent cells mean "no tile there", not
// "empty tile": lookups report absence via ok, never synthesize cells.
type Matrix struct {
	cells map[Index]Tile
}

// NewMatrix creates an empty sparse grid.
func NewMatrix() *Matrix {
	return &Matrix{cells: make(map[Index]Tile)}
}

// Get returns the tile at (x, y), if present.
func (m *Matrix) Get(x, y int) (Tile, bool) {
	t, ok := m.cells[Index{X: x, Y: y}]
	return t, ok
}

// Set places a tile at (x, y), replacing any existing tile.
func (m *Matrix) Set(x, y int, t Tile) {
	m.cells[Index{X: x, Y: y}] = t
}

// Delete removes the tile at (x, y). Deleting an absent cell is a no-op.
func (m *Matrix) Delete(x, y int) {
	delete(m.cells, Index{X: x, Y: y})
}

// Len returns the number of occupied cells.
func (m *Matrix) Len() int {
	return len(m.cells)
}

// ForEach visits every occupied cell. Iteration order is unspecified;
// callers needing determinism must iterate index ranges and use Get.
func (m *Matrix) ForEach(fn func(x, y int, t Tile)) {
	for idx, t := range m.cells {
		fn(idx.X, idx.Y, t)
	}
}

// Extent returns the exclusive column/row bounds of the occupied cells.
// An empty matrix has zero extent.
func (m *Matrix) Extent() (maxX, maxY int) {
	for idx := range m.cells {
		if idx.X+1 > maxX {
			maxX = idx.X + 1
		}
		if idx.Y+1 > maxY {
			maxY = idx.Y + 1
		}
	}
	return maxX, maxY
}
