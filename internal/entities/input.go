package entities

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Router translates per-tick input frames into trait state on a controlled
// entity. It tracks the previous jump state so press and release edges map
// to jump start and cancel.
type Router struct {
	jumpHeld bool
}

// Route applies the input frame to the entity's movement traits. Entities
// missing a trait ignore the corresponding actions.
func (r *Router) Route(frame core.InputFrame, e *sim.Entity) {
	if w := e.Walker(); w != nil {
		dir := 0
		if frame.Has(core.ActionLeft) {
			dir--
		}
		if frame.Has(core.ActionRight) {
			dir++
		}
		w.Dir = dir
		w.SetTurbo(frame.Has(core.ActionRun))
	}

	if j := e.Jumper(); j != nil {
		held := frame.Has(core.ActionJump)
		if held != r.jumpHeld {
			if held {
				j.Start()
			} else {
				j.Cancel()
			}
			r.jumpHeld = held
		}
	}
}
