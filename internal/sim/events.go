package sim

// EventName identifies a buffered event raised on an entity during a frame.
type EventName string

// EventTask is the well-known event used for one-shot deferred tasks.
// Entity.Finalize emits it once per frame before draining trait listeners.
const EventTask EventName = "task"

type eventEntry struct {
	name EventName
	args []any
}

// EventBuffer accumulates events raised on an entity during a frame.
// Traits register listeners against named events; the buffer is drained and
// cleared during the entity's finalize phase.
type EventBuffer struct {
	entries []eventEntry
}

// Emit records an occurrence of the named event with its arguments.
func (b *EventBuffer) Emit(name EventName, args ...any) {
	b.entries = append(b.entries, eventEntry{name: name, args: args})
}

// Process invokes cb for every buffered occurrence of the named event.
func (b *EventBuffer) Process(name EventName, cb func(args ...any)) {
	for _, e := range b.entries {
		if e.name == name {
			cb(e.args...)
		}
	}
}

// Clear discards all buffered events.
func (b *EventBuffer) Clear() {
	b.entries = b.entries[:0]
}
