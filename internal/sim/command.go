package sim

// Command is a structural world mutation queued by traits or collision
// handlers during a frame and applied by the level after the finalize
// phase, in the order queued. Deferring the mutation keeps the live-entity
// collection stable while the frame's loops are still iterating it.
type Command interface {
	Apply(lvl *Level)
}

// AddEntity inserts an entity into the level's live collection.
type AddEntity struct {
	Entity *Entity
}

// Apply implements Command.
func (c AddEntity) Apply(lvl *Level) {
	lvl.entities = append(lvl.entities, c.Entity)
}

// RemoveEntity removes an entity from the level's live collection.
// Removing an entity that is already gone is a no-op, so traits may queue
// the removal on consecutive frames without harm.
type RemoveEntity struct {
	Entity *Entity
}

// Apply implements Command.
func (c RemoveEntity) Apply(lvl *Level) {
	for i, e := range lvl.entities {
		if e == c.Entity {
			lvl.entities = append(lvl.entities[:i], lvl.entities[i+1:]...)
			break
		}
	}
	for i, e := range lvl.active {
		if e == c.Entity {
			lvl.active = append(lvl.active[:i], lvl.active[i+1:]...)
			break
		}
	}
}
