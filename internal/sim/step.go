// Package sim implements the platformer simulation core: entities with
// attachable traits, a deferred event/task queue for safe mid-frame mutation,
// tile-grid sweep collision with per-tile-type response handlers, a spatial
// hash broad phase for entity pairs, and the per-frame level orchestration
// loop. The package is deterministic: two levels stepped with identical
// seeds and inputs produce identical frame-by-frame state.
package sim

// Step carries the timing information for one fixed simulation tick.
type Step struct {
	DeltaTime float64 // Tick length in seconds
}
