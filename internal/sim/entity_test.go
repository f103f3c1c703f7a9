package sim

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// orderTrait records the order its dispatch points run in.
type orderTrait struct {
	Base
	kind Kind
	log  *[]Kind
}

func (o *orderTrait) Kind() Kind { return o.kind }

func (o *orderTrait) Update(*Entity, Step, *Level) {
	*o.log = append(*o.log, o.kind)
}

func (o *orderTrait) Collides(*Entity, *Entity) {
	*o.log = append(*o.log, o.kind)
}

func TestEntityUpdateDispatchOrder(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})

	var log []Kind
	e.Attach(&orderTrait{kind: "first", log: &log})
	e.Attach(&orderTrait{kind: "second", log: &log})
	e.Attach(&orderTrait{kind: "third", log: &log})

	e.Update(Step{DeltaTime: 1.0 / 60}, nil)

	if len(log) != 3 || log[0] != "first" || log[1] != "second" || log[2] != "third" {
		t.Errorf("update order = %v, expected attachment order", log)
	}
}

func TestEntityCollidesFansOutToAllTraits(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})
	other := NewEntity(core.V(16, 16), core.Vec{})

	var log []Kind
	e.Attach(&orderTrait{kind: "a", log: &log})
	e.Attach(&orderTrait{kind: "b", log: &log})

	e.Collides(other)

	if len(log) != 2 {
		t.Errorf("collision reached %d traits, expected all 2", len(log))
	}
}

func TestEntityAttachReplacesSameKind(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})

	var log []Kind
	e.Attach(&orderTrait{kind: "a", log: &log})
	replacement := &orderTrait{kind: "a", log: &log}
	e.Attach(replacement)

	got, ok := e.TraitByKind("a")
	if !ok || got != Trait(replacement) {
		t.Error("second attach of the same kind did not replace the first")
	}

	e.Update(Step{DeltaTime: 0.016}, nil)
	if len(log) != 1 {
		t.Errorf("replaced trait still dispatched: %d updates", len(log))
	}
}

func TestEntityDetach(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})
	e.Attach(NewSolid())

	if !e.Has(KindSolid) {
		t.Fatal("attached trait not found")
	}

	e.Detach(KindSolid)
	if e.Has(KindSolid) {
		t.Error("detached trait still present")
	}
	if e.Solidness() != nil {
		t.Error("typed accessor returned a detached trait")
	}
}

func TestEntityTypedAccessorsAbsent(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})

	// Absence is not an error: accessors return nil and callers branch.
	if e.Collector() != nil || e.Killable() != nil || e.Jumper() != nil || e.Walker() != nil {
		t.Error("typed accessor returned non-nil for an absent trait")
	}
}

func TestEntityLifetimeAccumulates(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})
	step := Step{DeltaTime: 0.25}

	for i := 0; i < 4; i++ {
		e.Update(step, nil)
	}

	if e.Lifetime != 1.0 {
		t.Errorf("Lifetime = %v after four quarter-second steps, expected 1.0", e.Lifetime)
	}
}

func TestEntitySounds(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.Vec{})
	e.Play("jump")
	e.Play("jump")
	e.Play("coin")

	sounds := e.TakeSounds()
	if len(sounds) != 2 {
		t.Errorf("TakeSounds returned %d names, expected a set of 2", len(sounds))
	}

	if again := e.TakeSounds(); again != nil {
		t.Errorf("TakeSounds did not clear the set: %v", again)
	}
}

func TestEntityBoundsAliasPosition(t *testing.T) {
	e := NewEntity(core.V(16, 16), core.V(2, 0))
	e.Pos.Set(100, 50)

	if e.Bounds.Left() != 102 {
		t.Errorf("Bounds.Left() = %v, expected 102", e.Bounds.Left())
	}

	e.Bounds.SetLeft(10)
	if e.Pos.X != 8 {
		t.Errorf("SetLeft did not back-solve position: Pos.X = %v", e.Pos.X)
	}
}
