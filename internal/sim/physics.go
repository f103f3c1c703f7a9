package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Physics integrates velocity against the tile grids, one axis at a time.
// X always resolves before Y: a purely horizontal obstruction must not
// block vertical movement in the same frame, and vice versa. Existing level
// content depends on this ordering.
type Physics struct {
	Base
}

// Kind implements Trait.
func (*Physics) Kind() Kind { return KindPhysics }

// Update moves the entity on X, sweeps tiles on X, then repeats for Y,
// then applies the level's gravity.
func (p *Physics) Update(e *Entity, step Step, lvl *Level) {
	dt := step.DeltaTime

	e.Pos.X += e.Vel.X * dt
	lvl.Collider.CheckX(e, dt, lvl)

	e.Pos.Y += e.Vel.Y * dt
	lvl.Collider.CheckY(e, dt, lvl)

	e.Vel.Y += lvl.Gravity * dt
}

// Gravity applies the level's gravity without tile collision. Used by
// entities integrated by the bare Velocity trait (debris, thrown objects).
type Gravity struct {
	Base
}

// Kind implements Trait.
func (*Gravity) Kind() Kind { return KindGravity }

// Update accelerates the entity downward.
func (*Gravity) Update(e *Entity, step Step, lvl *Level) {
	e.Vel.Y += lvl.Gravity * step.DeltaTime
}

// Velocity integrates position from velocity with no collision at all.
type Velocity struct {
	Base
}

// Kind implements Trait.
func (*Velocity) Kind() Kind { return KindVelocity }

// Update moves the entity by its velocity.
func (*Velocity) Update(e *Entity, step Step, _ *Level) {
	e.Pos = e.Pos.Add(e.Vel.Scale(step.DeltaTime))
}

// Solid reacts to tile obstructions by clamping the blocked edge to the
// tile boundary and zeroing the corresponding velocity component.
type Solid struct {
	Base

	// Obstructs can be disabled to let the entity pass through tiles
	// (e.g. a shell knocked loose sliding off the level).
	Obstructs bool
}

// NewSolid returns an obstructing solid trait.
func NewSolid() *Solid {
	return &Solid{Obstructs: true}
}

// Kind implements Trait.
func (*Solid) Kind() Kind { return KindSolid }

// Obstruct clamps the entity flush against the tile face it ran into.
func (s *Solid) Obstruct(e *Entity, side core.Side, match TileMatch) {
	if !s.Obstructs {
		return
	}
	switch side {
	case core.SideBottom:
		e.Bounds.SetBottom(match.Y1)
		e.Vel.Y = 0
	case core.SideTop:
		e.Bounds.SetTop(match.Y2)
		e.Vel.Y = 0
	case core.SideRight:
		e.Bounds.SetRight(match.X1)
		e.Vel.X = 0
	case core.SideLeft:
		e.Bounds.SetLeft(match.X2)
		e.Vel.X = 0
	}
}
