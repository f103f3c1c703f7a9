package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera is the viewport over the level, in world units.
type Camera struct {
	Pos  core.Vec
	Size core.Vec
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(w, h float64) *Camera {
	return &Camera{Size: core.V(w, h)}
}

// Contains reports whether the given bounds intersect the camera rectangle
// grown by margin on every side.
func (c *Camera) Contains(b *core.Bounds, margin float64) bool {
	return b.Right() > c.Pos.X-margin &&
		b.Left() < c.Pos.X+c.Size.X+margin &&
		b.Bottom() > c.Pos.Y-margin &&
		b.Top() < c.Pos.Y+c.Size.Y+margin
}

// View is the world-to-screen transform handed to entity draw callbacks.
// One tile maps to one terminal cell.
type View struct {
	Cam      *Camera
	TileSize float64
}

// ToScreen converts world coordinates to screen cell coordinates.
func (v View) ToScreen(x, y float64) (int, int) {
	return int((x - v.Cam.Pos.X) / v.TileSize), int((y - v.Cam.Pos.Y) / v.TileSize)
}
