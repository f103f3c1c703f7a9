package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Debris tuning for brick breaks: four short-lived fragments in two pairs
// symmetric about vertical.
const (
	debrisLifespan   = 1.5
	debrisInnerSpeed = 60
	debrisOuterSpeed = 120
	debrisInnerLift  = 320
	debrisOuterLift  = 260
	debrisSize       = 4
)

var debrisVelocities = []core.Vec{
	{X: -debrisOuterSpeed, Y: -debrisOuterLift},
	{X: -debrisInnerSpeed, Y: -debrisInnerLift},
	{X: debrisInnerSpeed, Y: -debrisInnerLift},
	{X: debrisOuterSpeed, Y: -debrisOuterLift},
}

// groundBehavior is a pure static blocker: it emits obstructions on the
// face the entity is moving into and mutates nothing.
func groundBehavior() TileBehavior {
	return TileBehavior{X: obstructX, Y: obstructY}
}

func obstructX(hit TileHit) {
	e := hit.Entity
	if e.Vel.X > 0 {
		if e.Bounds.Right() > hit.Match.X1 {
			e.Obstruct(core.SideRight, hit.Match)
		}
	} else if e.Vel.X < 0 {
		if e.Bounds.Left() < hit.Match.X2 {
			e.Obstruct(core.SideLeft, hit.Match)
		}
	}
}

func obstructY(hit TileHit) {
	e := hit.Entity
	if e.Vel.Y > 0 {
		if e.Bounds.Bottom() > hit.Match.Y1 {
			e.Obstruct(core.SideBottom, hit.Match)
		}
	} else if e.Vel.Y < 0 {
		if e.Bounds.Top() < hit.Match.Y2 {
			e.Obstruct(core.SideTop, hit.Match)
		}
	}
}

// coinBehavior is a one-shot pickup: a collector entity touching the tile
// gains a coin and the tile leaves the grid. Coins are not solid, so no
// obstruction is emitted. Both phases behave identically; whichever axis
// touches first consumes the coin, and the second entity to arrive finds
// the cell already absent.
func coinBehavior() TileBehavior {
	return TileBehavior{X: collectCoin, Y: collectCoin}
}

func collectCoin(hit TileHit) {
	col := hit.Entity.Collector()
	if col == nil {
		return
	}
	col.AddCoin(hit.Entity, 1)
	hit.Resolver.Matrix().Delete(hit.Match.Index.X, hit.Match.Index.Y)
}

// brickBehavior blocks like ground on both axes. Additionally, a collector
// hitting the tile from below breaks it: the standard top obstruction still
// fires, then the tile leaves the grid immediately (nothing iterates the
// grid mid-handler, so this is safe) and four debris fragments spawn
// through the level command buffer.
func brickBehavior() TileBehavior {
	return TileBehavior{
		X: obstructX,
		Y: func(hit TileHit) {
			e := hit.Entity
			breaking := e.Vel.Y < 0 && e.Collector() != nil && e.Bounds.Top() < hit.Match.Y2
			obstructY(hit)
			if breaking {
				breakBrick(hit)
			}
		},
	}
}

func breakBrick(hit TileHit) {
	hit.Resolver.Matrix().Delete(hit.Match.Index.X, hit.Match.Index.Y)
	hit.Entity.Play("brick-break")

	cx := (hit.Match.X1 + hit.Match.X2) / 2
	cy := (hit.Match.Y1 + hit.Match.Y2) / 2
	for _, vel := range debrisVelocities {
		d := newDebris(core.V(cx, cy), vel)
		hit.Level.Schedule(AddEntity{Entity: d})
	}
}

// newDebris builds a brick fragment: integrated by plain velocity and
// gravity, no tile collision, removed after a fixed lifespan.
func newDebris(pos, vel core.Vec) *Entity {
	e := NewEntity(core.V(debrisSize, debrisSize), core.Vec{})
	e.Pos = pos
	e.Vel = vel
	e.Attach(&Velocity{})
	e.Attach(&Gravity{})
	e.Attach(&Lifespan{Limit: debrisLifespan})
	e.Draw = drawDebris
	return e
}

func drawDebris(e *Entity, scr *core.Screen, view View) {
	x, y := view.ToScreen(e.Pos.X, e.Pos.Y)
	scr.SetColor(x, y, '▖', core.ColorRed)
}
