package sim

// Killable marks an entity that can die. Death does not remove the entity
// synchronously: after RemoveAfter seconds of being dead, removal is queued
// through the deferred task channel and applied during the finalize phase,
// so collections being iterated mid-frame stay intact.
type Killable struct {
	Base

	Dead        bool
	RemoveAfter float64

	deadTime float64
}

// NewKillable creates a killable trait that lingers for the given number
// of seconds after death before removal.
func NewKillable(removeAfter float64) *Killable {
	return &Killable{RemoveAfter: removeAfter}
}

// Kind implements Trait.
func (*Killable) Kind() Kind { return KindKillable }

// Kill marks the entity dead.
func (k *Killable) Kill() {
	k.Dead = true
}

// Revive clears the dead state.
func (k *Killable) Revive() {
	k.Dead = false
	k.deadTime = 0
}

// Update counts down the post-death linger and queues the removal.
// Queueing repeats until the removal lands; RemoveEntity tolerates that.
func (k *Killable) Update(e *Entity, step Step, lvl *Level) {
	if !k.Dead {
		return
	}
	k.deadTime += step.DeltaTime
	if k.deadTime > k.RemoveAfter {
		k.Queue(func() {
			lvl.Schedule(RemoveEntity{Entity: e})
		})
	}
}

// Lifespan removes the entity once its lifetime exceeds a fixed limit.
type Lifespan struct {
	Base

	Limit float64
}

// Kind implements Trait.
func (*Lifespan) Kind() Kind { return KindLifespan }

// Update schedules removal when the entity has outlived its limit.
func (l *Lifespan) Update(e *Entity, _ Step, lvl *Level) {
	if e.Lifetime > l.Limit {
		lvl.Schedule(RemoveEntity{Entity: e})
	}
}

// Stomper resolves contact with killable entities: landing on one kills it
// and bounces the stomper; touching one any other way kills the stomper
// instead, if it is itself killable.
type Stomper struct {
	Base

	// BounceSpeed is the upward speed after a successful stomp.
	BounceSpeed float64
}

// NewStomper creates a stomper with the given bounce speed.
func NewStomper(bounceSpeed float64) *Stomper {
	return &Stomper{BounceSpeed: bounceSpeed}
}

// Kind implements Trait.
func (*Stomper) Kind() Kind { return KindStomper }

// Collides classifies the contact by relative vertical velocity. A dead
// stomper is inert: its lingering corpse neither stomps nor takes hits.
func (s *Stomper) Collides(us, them *Entity) {
	if ours := us.Killable(); ours != nil && ours.Dead {
		return
	}
	k := them.Killable()
	if k == nil || k.Dead {
		return
	}

	if us.Vel.Y > them.Vel.Y {
		// Falling onto them: stomp.
		us.Bounds.SetBottom(them.Bounds.Top())
		us.Vel.Y = -s.BounceSpeed
		us.Play("stomp")
		k.Kill()
		if col := us.Collector(); col != nil {
			col.AddScore(100)
		}
		return
	}

	// Ran into them: we take the hit.
	if ours := us.Killable(); ours != nil && !ours.Dead {
		ours.Kill()
		us.Play("hurt")
	}
}
