package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// DrawFunc renders an entity into the screen buffer using the given view
// transform. Draw callbacks are invoked by the platform renderer, never by
// the simulation itself.
type DrawFunc func(e *Entity, scr *core.Screen, view View)

// Entity is a movable actor in the level: physical state plus a collection
// of attached traits that give it behavior.
type Entity struct {
	ID       string
	Pos      core.Vec
	Vel      core.Vec
	Bounds   *core.Bounds
	Lifetime float64

	// Events is the entity-level deferred channel traits queue tasks onto.
	Events EventBuffer

	// Draw is the optional render callback supplied by the entity factory.
	Draw DrawFunc

	sounds map[string]struct{}
	traits []Trait
	byKind map[Kind]Trait
}

// NewEntity creates an entity with the given bounding-box size and offset.
// The bounding box aliases the entity's position vector, so moving one
// moves the other.
func NewEntity(size, offset core.Vec) *Entity {
	e := &Entity{
		sounds: make(map[string]struct{}),
		byKind: make(map[Kind]Trait),
	}
	e.Bounds = core.NewBounds(&e.Pos, size, offset)
	return e
}

// Attach adds a trait to the entity. Traits are unique per kind: attaching
// a second trait of the same kind replaces the first in place, preserving
// the original attachment position.
func (e *Entity) Attach(t Trait) {
	kind := t.Kind()
	if _, ok := e.byKind[kind]; ok {
		for i, existing := range e.traits {
			if existing.Kind() == kind {
				e.traits[i] = t
				break
			}
		}
	} else {
		e.traits = append(e.traits, t)
	}
	e.byKind[kind] = t
}

// Detach removes the trait with the given kind, if present.
func (e *Entity) Detach(kind Kind) {
	if _, ok := e.byKind[kind]; !ok {
		return
	}
	delete(e.byKind, kind)
	for i, t := range e.traits {
		if t.Kind() == kind {
			e.traits = append(e.traits[:i], e.traits[i+1:]...)
			break
		}
	}
}

// TraitByKind looks up an attached trait. Absence is the expected common
// case and is reported via ok, not an error.
func (e *Entity) TraitByKind(kind Kind) (Trait, bool) {
	t, ok := e.byKind[kind]
	return t, ok
}

// Has reports whether a trait of the given kind is attached.
func (e *Entity) Has(kind Kind) bool {
	_, ok := e.byKind[kind]
	return ok
}

// Collector returns the attached Collector trait, or nil.
func (e *Entity) Collector() *Collector {
	t, _ := e.byKind[KindCollector].(*Collector)
	return t
}

// Killable returns the attached Killable trait, or nil.
func (e *Entity) Killable() *Killable {
	t, _ := e.byKind[KindKillable].(*Killable)
	return t
}

// Jumper returns the attached Jump trait, or nil.
func (e *Entity) Jumper() *Jump {
	t, _ := e.byKind[KindJump].(*Jump)
	return t
}

// Walker returns the attached Walk trait, or nil.
func (e *Entity) Walker() *Walk {
	t, _ := e.byKind[KindWalk].(*Walk)
	return t
}

// Solidness returns the attached Solid trait, or nil.
func (e *Entity) Solidness() *Solid {
	t, _ := e.byKind[KindSolid].(*Solid)
	return t
}

// Update dispatches the tick to every attached trait in attachment order,
// then accumulates lifetime. Traits that read state written by earlier
// traits in the same frame rely on this ordering.
func (e *Entity) Update(step Step, lvl *Level) {
	for _, t := range e.traits {
		t.Update(e, step, lvl)
	}
	e.Lifetime += step.DeltaTime
}

// Collides fans the collision out to every attached trait.
func (e *Entity) Collides(other *Entity) {
	for _, t := range e.traits {
		t.Collides(e, other)
	}
}

// Obstruct fans the tile obstruction out to every attached trait.
func (e *Entity) Obstruct(side core.Side, match TileMatch) {
	for _, t := range e.traits {
		t.Obstruct(e, side, match)
	}
}

// Finalize emits the frame's task event, lets every trait drain its
// deferred queue, then clears the event buffer.
func (e *Entity) Finalize() {
	e.Events.Emit(EventTask)
	for _, t := range e.traits {
		t.Finalize(e)
	}
	e.Events.Clear()
}

// Play adds a sound name to the entity's pending set. External audio code
// drains and plays it; the simulation never touches audio itself.
func (e *Entity) Play(sound string) {
	e.sounds[sound] = struct{}{}
}

// TakeSounds returns and clears the pending sound-name set.
func (e *Entity) TakeSounds() []string {
	if len(e.sounds) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.sounds))
	for s := range e.sounds {
		out = append(out, s)
	}
	for s := range e.sounds {
		delete(e.sounds, s)
	}
	return out
}
