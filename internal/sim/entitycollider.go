package sim

// EntityCollider runs the entity-vs-entity overlap pass. A single Check
// call notifies only the subject side; both entities of a pair eventually
// receive the event because the level checks every active entity in turn.
// Handlers must not assume the reverse call has already happened.
type EntityCollider struct{}

// Check invokes subject.Collides for every candidate whose bounding box
// overlaps the subject's. The subject itself is skipped if present in the
// candidate set.
func (EntityCollider) Check(subject *Entity, candidates []*Entity) {
	for _, other := range candidates {
		if other == subject {
			continue
		}
		if subject.Bounds.Overlaps(other.Bounds) {
			subject.Collides(other)
		}
	}
}
