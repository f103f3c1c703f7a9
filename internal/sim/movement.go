package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Walk drives horizontal movement from a directional input: acceleration
// while a direction is held, deceleration when released, and a quadratic
// drag that caps top speed. The drag factor is lowered while running.
type Walk struct {
	Base

	// Dir is the input direction: -1 left, 0 idle, 1 right.
	Dir int

	// Heading is the last non-zero direction, for rendering.
	Heading int

	Acceleration float64
	Deceleration float64
	SlowDrag     float64
	FastDrag     float64

	dragFactor float64
	distance   float64
}

// NewWalk creates a walk trait with the given tuning; drag starts slow.
func NewWalk(accel, decel, slowDrag, fastDrag float64) *Walk {
	return &Walk{
		Heading:      1,
		Acceleration: accel,
		Deceleration: decel,
		SlowDrag:     slowDrag,
		FastDrag:     fastDrag,
		dragFactor:   slowDrag,
	}
}

// Kind implements Trait.
func (*Walk) Kind() Kind { return KindWalk }

// SetTurbo toggles between run and walk drag.
func (w *Walk) SetTurbo(on bool) {
	if on {
		w.dragFactor = w.FastDrag
	} else {
		w.dragFactor = w.SlowDrag
	}
}

// Distance returns the ground distance covered while moving, for
// animation.
func (w *Walk) Distance() float64 {
	return w.distance
}

// Update applies acceleration, deceleration and drag to the horizontal
// velocity.
func (w *Walk) Update(e *Entity, step Step, _ *Level) {
	dt := step.DeltaTime
	absX := math.Abs(e.Vel.X)

	if w.Dir != 0 {
		e.Vel.X += w.Acceleration * float64(w.Dir) * dt
		// Heading only flips on the ground, so a jumping entity keeps
		// facing its takeoff direction.
		if j := e.Jumper(); j == nil || !j.Falling() {
			w.Heading = w.Dir
		}
	} else if e.Vel.X != 0 {
		decel := math.Min(absX, w.Deceleration*dt)
		if e.Vel.X > 0 {
			e.Vel.X -= decel
		} else {
			e.Vel.X += decel
		}
	} else {
		w.distance = 0
	}

	e.Vel.X -= w.dragFactor * e.Vel.X * absX
	w.distance += absX * dt
}

// Jump turns a jump request into upward velocity while the press is held,
// with a short grace window so a request just before landing still
// triggers. Obstruction from below arms the jump; obstruction from above
// cancels it.
type Jump struct {
	Base

	Duration    float64 // max boost time per jump
	Velocity    float64 // base upward speed
	GracePeriod float64 // how long a request stays valid before landing
	SpeedBoost  float64 // extra upward speed per unit of horizontal speed

	ready       int
	requestTime float64
	engageTime  float64
}

// NewJump creates a jump trait with the given tuning.
func NewJump(duration, velocity, grace, speedBoost float64) *Jump {
	return &Jump{
		Duration:    duration,
		Velocity:    velocity,
		GracePeriod: grace,
		SpeedBoost:  speedBoost,
	}
}

// Kind implements Trait.
func (*Jump) Kind() Kind { return KindJump }

// Start requests a jump; it engages on the next update while grounded, or
// within the grace period after this call.
func (j *Jump) Start() {
	j.requestTime = j.GracePeriod
}

// Cancel ends the boost phase early, shortening the jump.
func (j *Jump) Cancel() {
	j.engageTime = 0
	j.requestTime = 0
}

// Falling reports whether the entity has left the ground.
func (j *Jump) Falling() bool {
	return j.ready < 0
}

// Update engages a pending request when grounded and applies the boost
// velocity while engaged.
func (j *Jump) Update(e *Entity, step Step, _ *Level) {
	if j.requestTime > 0 {
		if j.ready > 0 {
			e.Play("jump")
			j.engageTime = j.Duration
			j.requestTime = 0
		}
		j.requestTime -= step.DeltaTime
	}

	if j.engageTime > 0 {
		e.Vel.Y = -(j.Velocity + math.Abs(e.Vel.X)*j.SpeedBoost)
		j.engageTime -= step.DeltaTime
	}

	j.ready--
}

// Obstruct arms the jump on ground contact and cancels it on a head bonk.
func (j *Jump) Obstruct(_ *Entity, side core.Side, _ TileMatch) {
	switch side {
	case core.SideBottom:
		j.ready = 1
	case core.SideTop:
		j.Cancel()
	}
}

// Pacer walks at a constant speed and turns around when obstructed
// sideways. The classic patrolling enemy gait.
type Pacer struct {
	Base

	Speed   float64
	Enabled bool
}

// NewPacer creates an enabled pacer moving at the given speed.
func NewPacer(speed float64) *Pacer {
	return &Pacer{Speed: speed, Enabled: true}
}

// Kind implements Trait.
func (*Pacer) Kind() Kind { return KindPacer }

// Update drives the horizontal velocity while enabled.
func (p *Pacer) Update(e *Entity, _ Step, _ *Level) {
	if p.Enabled {
		e.Vel.X = p.Speed
	}
}

// Obstruct reverses direction on a sideways block.
func (p *Pacer) Obstruct(_ *Entity, side core.Side, _ TileMatch) {
	if side == core.SideLeft || side == core.SideRight {
		p.Speed = -p.Speed
	}
}
