package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Kind identifies a trait type. An entity carries at most one trait per kind.
type Kind string

// Trait kinds for all built-in traits.
const (
	KindPhysics   Kind = "physics"
	KindSolid     Kind = "solid"
	KindGravity   Kind = "gravity"
	KindVelocity  Kind = "velocity"
	KindWalk      Kind = "walk"
	KindJump      Kind = "jump"
	KindPacer     Kind = "pacer"
	KindKillable  Kind = "killable"
	KindLifespan  Kind = "lifespan"
	KindStomper   Kind = "stomper"
	KindCollector Kind = "collector"
	KindEmitter   Kind = "emitter"
	KindTrigger   Kind = "trigger"
)

// Trait is an attachable unit of per-frame entity logic. Concrete traits
// embed Base and override the dispatch points they care about.
type Trait interface {
	// Kind returns the trait's type key, unique per entity.
	Kind() Kind

	// Update advances the trait by one tick.
	Update(e *Entity, step Step, lvl *Level)

	// Collides is invoked when the owning entity's bounds overlap another
	// entity's bounds. Every attached trait receives the call.
	Collides(us, them *Entity)

	// Obstruct is invoked when a tile blocked one of the entity's faces.
	Obstruct(e *Entity, side core.Side, match TileMatch)

	// Finalize runs after all updates and collision checks for the frame.
	Finalize(e *Entity)
}

// listener is a deferred callback bound to a named event.
// A count of one is a one-shot task; a negative count never expires.
type listener struct {
	name  EventName
	cb    func(args ...any)
	count int
}

// Listeners is the per-trait deferred callback queue. It is drained against
// the owning entity's event buffer during finalize.
type Listeners struct {
	list []listener
}

// Listen registers a callback for the named event. The callback fires during
// finalize for each buffered occurrence, at most count times in total;
// pass a negative count to keep the listener across frames indefinitely.
func (l *Listeners) Listen(name EventName, cb func(args ...any), count int) {
	l.list = append(l.list, listener{name: name, cb: cb, count: count})
}

// Queue schedules a task to run exactly once, during the owning entity's
// next finalize.
func (l *Listeners) Queue(task func()) {
	l.Listen(EventTask, func(...any) { task() }, 1)
}

// drain processes the entity's buffered events against the registered
// listeners, dropping listeners whose count reaches zero. It iterates a
// snapshot so that a callback registering new listeners cannot corrupt the
// walk; listeners added mid-drain first fire next frame.
func (l *Listeners) drain(e *Entity) {
	snapshot := l.list
	l.list = nil

	var kept []listener
	for i := range snapshot {
		ls := snapshot[i]
		e.Events.Process(ls.name, func(args ...any) {
			if ls.count == 0 {
				return
			}
			ls.cb(args...)
			if ls.count > 0 {
				ls.count--
			}
		})
		if ls.count != 0 {
			kept = append(kept, ls)
		}
	}
	l.list = append(kept, l.list...)
}

// Base provides no-op implementations of every Trait dispatch point except
// Kind, plus the deferred listener queue. Finalize drains the queue.
type Base struct {
	Listeners
}

// Update is a no-op.
func (*Base) Update(*Entity, Step, *Level) {}

// Collides is a no-op.
func (*Base) Collides(*Entity, *Entity) {}

// Obstruct is a no-op.
func (*Base) Obstruct(*Entity, core.Side, TileMatch) {}

// Finalize drains the deferred listener queue against the entity's events.
func (b *Base) Finalize(e *Entity) {
	b.drain(e)
}
