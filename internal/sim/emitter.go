package sim

// EmitFunc produces something from an emitting entity: typically it
// schedules a projectile spawn on the level.
type EmitFunc func(e *Entity, lvl *Level)

// Emitter fires its registered emit functions on a fixed interval.
type Emitter struct {
	Base

	Interval float64

	coolDown float64
	emitters []EmitFunc
}

// NewEmitter creates an emitter with the given firing interval.
func NewEmitter(interval float64) *Emitter {
	return &Emitter{Interval: interval, coolDown: interval}
}

// Kind implements Trait.
func (*Emitter) Kind() Kind { return KindEmitter }

// AddEmitter registers an emit function.
func (em *Emitter) AddEmitter(fn EmitFunc) {
	em.emitters = append(em.emitters, fn)
}

// Update counts down and fires every registered emit function when the
// interval elapses.
func (em *Emitter) Update(e *Entity, step Step, lvl *Level) {
	em.coolDown -= step.DeltaTime
	if em.coolDown > 0 {
		return
	}
	for _, fn := range em.emitters {
		fn(e, lvl)
	}
	em.coolDown = em.Interval
}

// TouchFunc handles entities that touched a trigger during a frame.
type TouchFunc func(e *Entity, touched []*Entity, lvl *Level)

// Trigger collects entities that touched the owner during the collision
// pass and hands them to its handlers on the next update. Used for
// checkpoints and level exits.
type Trigger struct {
	Base

	handlers []TouchFunc
	touched  []*Entity
}

// Kind implements Trait.
func (*Trigger) Kind() Kind { return KindTrigger }

// OnTouch registers a handler.
func (t *Trigger) OnTouch(fn TouchFunc) {
	t.handlers = append(t.handlers, fn)
}

// Collides records the touching entity for the next update.
func (t *Trigger) Collides(_, them *Entity) {
	t.touched = append(t.touched, them)
}

// Update dispatches collected touches to every handler, then clears them.
func (t *Trigger) Update(e *Entity, _ Step, lvl *Level) {
	if len(t.touched) == 0 {
		return
	}
	for _, fn := range t.handlers {
		fn(e, t.touched, lvl)
	}
	t.touched = t.touched[:0]
}
