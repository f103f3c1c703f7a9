package entities

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

const walkerRemoveAfter = 0.5

// NewWalker creates the patrolling enemy: it paces at a constant speed,
// turns around at walls, and dies to a stomp.
func NewWalker() *sim.Entity {
	cfg := gameplay
	e := sim.NewEntity(core.V(16, 16), core.Vec{})
	e.ID = "walker"

	e.Attach(sim.NewSolid())
	e.Attach(sim.NewPacer(-cfg.Enemies.PacerSpeed))
	e.Attach(sim.NewKillable(walkerRemoveAfter))
	e.Attach(&sim.Physics{})

	e.Draw = drawWalker
	return e
}

func drawWalker(e *sim.Entity, scr *core.Screen, view sim.View) {
	glyph := 'Ω'
	if k := e.Killable(); k != nil && k.Dead {
		glyph = '_'
	}
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, glyph, core.ColorBrightRed)
}
