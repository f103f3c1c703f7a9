package entities

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

const (
	// cannonHoldRange suppresses firing while the focused entity is this
	// close horizontally, so a player standing on the cannon is safe.
	cannonHoldRange = 24.0

	bulletLifespan    = 6.0
	bulletRemoveAfter = 0
)

// NewCannon creates a stationary cannon that fires bullets toward the
// level's focused entity on a fixed interval.
func NewCannon() *sim.Entity {
	cfg := gameplay
	e := sim.NewEntity(core.V(16, 16), core.Vec{})
	e.ID = "cannon"

	em := sim.NewEmitter(cfg.Enemies.FireInterval)
	em.AddEmitter(fireBullet)
	e.Attach(em)

	e.Draw = drawCannon
	return e
}

// fireBullet spawns a bullet aimed at the focused entity, or skips the shot
// when it is too close or there is no focus.
func fireBullet(e *sim.Entity, lvl *sim.Level) {
	focus := lvl.Focus()
	if focus == nil {
		return
	}
	dx := focus.Pos.X - e.Pos.X
	if math.Abs(dx) < cannonHoldRange {
		return
	}

	b := NewBullet()
	b.Pos = e.Pos
	b.Vel.X = math.Copysign(gameplay.Enemies.BulletSpeed, dx)
	e.Play("cannon-fire")
	lvl.Schedule(sim.AddEntity{Entity: b})
}

// NewBullet creates a projectile that flies in a straight line, ignores
// tiles, and expires after a few seconds.
func NewBullet() *sim.Entity {
	e := sim.NewEntity(core.V(8, 8), core.Vec{})
	e.ID = "bullet"

	e.Attach(&sim.Velocity{})
	e.Attach(sim.NewKillable(bulletRemoveAfter))
	e.Attach(&sim.Lifespan{Limit: bulletLifespan})

	e.Draw = drawBullet
	return e
}

func drawCannon(e *sim.Entity, scr *core.Screen, view sim.View) {
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, '╥', core.ColorGray)
}

func drawBullet(e *sim.Entity, scr *core.Screen, view sim.View) {
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, '●', core.ColorBrightWhite)
}
