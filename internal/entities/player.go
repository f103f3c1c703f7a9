package entities

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

const (
	playerBounceSpeed = 300
	playerRemoveAfter = 2.0
)

// NewPlayer creates the player entity: walk and jump movement, tile
// physics, stomping, and the coin/score collector.
func NewPlayer() *sim.Entity {
	cfg := gameplay
	e := sim.NewEntity(core.V(cfg.Player.Width, cfg.Player.Height), core.Vec{})
	e.ID = "player"

	e.Attach(sim.NewSolid())
	e.Attach(sim.NewWalk(cfg.Walk.Acceleration, cfg.Walk.Deceleration, cfg.Walk.SlowDrag, cfg.Walk.FastDrag))
	e.Attach(sim.NewJump(cfg.Jump.Duration, cfg.Jump.Velocity, cfg.Jump.GracePeriod, cfg.Jump.SpeedBoost))
	e.Attach(sim.NewStomper(playerBounceSpeed))
	e.Attach(sim.NewKillable(playerRemoveAfter))
	e.Attach(sim.NewCollector("Player", cfg.Player.Lives))
	e.Attach(&sim.Physics{})

	e.Draw = drawPlayer
	return e
}

func drawPlayer(e *sim.Entity, scr *core.Screen, view sim.View) {
	glyph := '◄'
	if w := e.Walker(); w == nil || w.Heading >= 0 {
		glyph = '►'
	}
	if k := e.Killable(); k != nil && k.Dead {
		glyph = '×'
	}
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, glyph, core.ColorBrightYellow)
}
