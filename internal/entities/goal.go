package entities

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// NewGoal creates the level-end marker. Touching it with a collector
// entity marks the level complete.
func NewGoal() *sim.Entity {
	e := sim.NewEntity(core.V(16, 32), core.Vec{})
	e.ID = "goal"

	tr := &sim.Trigger{}
	tr.OnTouch(reachGoal)
	e.Attach(tr)

	e.Draw = drawGoal
	return e
}

func reachGoal(e *sim.Entity, touched []*sim.Entity, lvl *sim.Level) {
	for _, t := range touched {
		if t.Collector() != nil {
			if !lvl.Complete {
				e.Play("goal")
			}
			lvl.Complete = true
			return
		}
	}
}

func drawGoal(e *sim.Entity, scr *core.Screen, view sim.View) {
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, '⚑', core.ColorBrightGreen)
	scr.SetColor(x, y+1, '│', core.ColorWhite)
}
