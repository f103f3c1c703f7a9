package core

// Bounds is an axis-aligned bounding box derived from an entity's position,
// size and offset. It keeps a pointer to the owning position vector, so edge
// and center setters move the entity. Size and offset are fixed at
// construction.
type Bounds struct {
	pos    *Vec
	size   Vec
	offset Vec
}

// NewBounds creates a bounding box over the given position.
// Panics if either size component is negative: that is a construction bug,
// not runtime data variance.
func NewBounds(pos *Vec, size, offset Vec) *Bounds {
	if size.X < 0 || size.Y < 0 {
		panic("core: bounds with negative size")
	}
	return &Bounds{pos: pos, size: size, offset: offset}
}

// Size returns the box dimensions.
func (b *Bounds) Size() Vec {
	return b.size
}

// Top returns the y-coordinate of the top edge.
func (b *Bounds) Top() float64 {
	return b.pos.Y + b.offset.Y
}

// SetTop moves the box so its top edge sits at y.
func (b *Bounds) SetTop(y float64) {
	b.pos.Y = y - b.offset.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Bounds) Bottom() float64 {
	return b.Top() + b.size.Y
}

// SetBottom moves the box so its bottom edge sits at y.
func (b *Bounds) SetBottom(y float64) {
	b.SetTop(y - b.size.Y)
}

// Left returns the x-coordinate of the left edge.
func (b *Bounds) Left() float64 {
	return b.pos.X + b.offset.X
}

// SetLeft moves the box so its left edge sits at x.
func (b *Bounds) SetLeft(x float64) {
	b.pos.X = x - b.offset.X
}

// Right returns the x-coordinate of the right edge.
func (b *Bounds) Right() float64 {
	return b.Left() + b.size.X
}

// SetRight moves the box so its right edge sits at x.
func (b *Bounds) SetRight(x float64) {
	b.SetLeft(x - b.size.X)
}

// CenterX returns the x-coordinate of the box center.
func (b *Bounds) CenterX() float64 {
	return b.Left() + b.size.X/2
}

// SetCenterX moves the box so its center sits at x.
func (b *Bounds) SetCenterX(x float64) {
	b.SetLeft(x - b.size.X/2)
}

// CenterY returns the y-coordinate of the box center.
func (b *Bounds) CenterY() float64 {
	return b.Top() + b.size.Y/2
}

// SetCenterY moves the box so its center sits at y.
func (b *Bounds) SetCenterY(y float64) {
	b.SetTop(y - b.size.Y/2)
}

// Overlaps reports whether the two boxes intersect on both axes.
// The test is open-interval: boxes that merely touch along an edge
// do not overlap.
func (b *Bounds) Overlaps(o *Bounds) bool {
	return b.Bottom() > o.Top() && b.Top() < o.Bottom() &&
		b.Left() < o.Right() && b.Right() > o.Left()
}

// Contains reports whether o lies fully inside b's closed bounds.
func (b *Bounds) Contains(o *Bounds) bool {
	return o.Top() >= b.Top() && o.Bottom() <= b.Bottom() &&
		o.Left() >= b.Left() && o.Right() <= b.Right()
}

// Clone returns an independent copy with its own position storage.
func (b *Bounds) Clone() *Bounds {
	pos := *b.pos
	return &Bounds{pos: &pos, size: b.size, offset: b.offset}
}
