package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Level tuning defaults.
const (
	DefaultGravity      = 1500.0 // world units per second squared
	DefaultFollowOffset = 100.0  // focused entity's distance from camera left edge
	DefaultCullInterval = 12     // ticks between active-set refreshes
	DefaultCullMargin   = 64.0   // world units beyond the viewport kept active
)

// Level sequences the per-frame simulation: update active entities, run
// collision passes, finalize every entity, drain queued commands, follow
// the camera, advance time. The order is fixed and must not change.
type Level struct {
	Name    string
	Gravity float64

	// FollowOffset keeps the focused entity this many world units from the
	// camera's left edge.
	FollowOffset float64

	// CullMargin extends the viewport rectangle when picking the active
	// entity subset. A negative margin disables culling entirely.
	CullMargin float64

	// CullInterval is the refresh cadence, in ticks, of the active subset
	// and the broad-phase spatial hash. Zero or negative refreshes every
	// tick.
	CullInterval int

	// KillPlane removes entities whose top edge falls below it.
	KillPlane float64

	// Complete is set when the level's goal is reached. The session layer
	// reads it; the simulation itself keeps running.
	Complete bool

	Collider *TileCollider
	Camera   *Camera

	entities       []*Entity
	active         []*Entity
	entityCollider EntityCollider
	focus          *Entity
	commands       []Command
	sounds         map[string]struct{}
	dirty          bool
	tick           uint64
	totalTime      float64
	width, height  float64
}

// NewLevel creates a level over the given tile collider. Culling stays
// disabled until a camera is attached.
func NewLevel(name string, collider *TileCollider) *Level {
	return &Level{
		Name:         name,
		Gravity:      DefaultGravity,
		FollowOffset: DefaultFollowOffset,
		CullMargin:   -1,
		CullInterval: DefaultCullInterval,
		KillPlane:    1e9,
		Collider:     collider,
		sounds:       make(map[string]struct{}),
	}
}

// SetExtent records the level's world dimensions, used for camera clamping
// and the default kill plane.
func (lvl *Level) SetExtent(w, h float64) {
	lvl.width = w
	lvl.height = h
	lvl.KillPlane = h + 100
}

// Extent returns the level's world dimensions.
func (lvl *Level) Extent() (w, h float64) {
	return lvl.width, lvl.height
}

// AttachCamera installs the viewport and enables culling with the default
// margin.
func (lvl *Level) AttachCamera(cam *Camera) {
	lvl.Camera = cam
	if lvl.CullMargin < 0 {
		lvl.CullMargin = DefaultCullMargin
	}
}

// Follow makes the camera track the given entity. The focused entity is
// always part of the active subset, even outside the viewport.
func (lvl *Level) Follow(e *Entity) {
	lvl.focus = e
}

// Focus returns the tracked entity, or nil.
func (lvl *Level) Focus() *Entity {
	return lvl.focus
}

// AddEntity inserts an entity directly. Intended for level setup; during a
// frame, use Schedule(AddEntity{...}) instead.
func (lvl *Level) AddEntity(e *Entity) {
	lvl.entities = append(lvl.entities, e)
}

// Entities returns the live entity collection. Callers must not mutate it
// mid-frame; structural changes go through Schedule.
func (lvl *Level) Entities() []*Entity {
	return lvl.entities
}

// Contains reports whether the entity is still part of the level.
func (lvl *Level) Contains(target *Entity) bool {
	for _, e := range lvl.entities {
		if e == target {
			return true
		}
	}
	return false
}

// Schedule queues a structural mutation to be applied after this frame's
// finalize phase. Commands apply in the order queued.
func (lvl *Level) Schedule(cmd Command) {
	lvl.commands = append(lvl.commands, cmd)
}

// TotalTime returns the accumulated simulation time in seconds.
func (lvl *Level) TotalTime() float64 {
	return lvl.totalTime
}

// Tick returns the number of completed simulation steps.
func (lvl *Level) Tick() uint64 {
	return lvl.tick
}

// Update advances the simulation by one fixed step.
func (lvl *Level) Update(step Step) {
	// 1. Refresh the active subset on cadence, or immediately after a
	// structural mutation. The broad-phase index rebuilds every tick:
	// fast movers can cross a whole cell between culling refreshes, and a
	// stale index would hide them from a static entity's query.
	if lvl.dirty || lvl.CullInterval <= 0 || lvl.tick%uint64(lvl.CullInterval) == 0 {
		lvl.refreshActive()
		lvl.dirty = false
	}
	lvl.Collider.RefreshSpatial(lvl.active)

	// 2. Update every active entity. Movement-integration traits call back
	// into the tile collider from here.
	for _, e := range lvl.active {
		e.Update(step, lvl)
	}

	// 3. Entity-vs-entity broad phase over the active subset.
	for _, e := range lvl.active {
		candidates := lvl.Collider.Spatial.Query(e.Bounds, lvl.Collider.margin, e)
		lvl.entityCollider.Check(e, candidates)
	}

	// Entities that fell out of the world are scheduled out, never removed
	// synchronously.
	for _, e := range lvl.active {
		if e.Bounds.Top() > lvl.KillPlane {
			lvl.Schedule(RemoveEntity{Entity: e})
		}
	}

	// 4. Finalize every entity in the world, not just the active subset:
	// entities that just left the viewport must still drain queued removals.
	for _, e := range lvl.entities {
		e.Finalize()
	}

	// 5. Apply structural mutations in the order they were queued.
	lvl.drainCommands()

	lvl.collectSounds()

	// 6. Camera follow, then advance time.
	lvl.followCamera()
	lvl.totalTime += step.DeltaTime
	lvl.tick++
}

func (lvl *Level) refreshActive() {
	lvl.active = lvl.active[:0]
	if lvl.CullMargin < 0 || lvl.Camera == nil {
		lvl.active = append(lvl.active, lvl.entities...)
		return
	}
	for _, e := range lvl.entities {
		if e == lvl.focus || lvl.Camera.Contains(e.Bounds, lvl.CullMargin) {
			lvl.active = append(lvl.active, e)
		}
	}
}

func (lvl *Level) drainCommands() {
	// Commands may schedule further commands (an added entity's setup);
	// those run next frame.
	pending := lvl.commands
	lvl.commands = nil
	for _, cmd := range pending {
		cmd.Apply(lvl)
	}
	if len(pending) > 0 {
		lvl.dirty = true
	}
}

func (lvl *Level) collectSounds() {
	for _, e := range lvl.entities {
		for _, s := range e.TakeSounds() {
			lvl.sounds[s] = struct{}{}
		}
	}
}

// TakeSounds returns and clears the set of sound names raised since the
// last call. The platform's audio layer drains this; the simulation never
// plays audio.
func (lvl *Level) TakeSounds() []string {
	if len(lvl.sounds) == 0 {
		return nil
	}
	out := make([]string, 0, len(lvl.sounds))
	for s := range lvl.sounds {
		out = append(out, s)
	}
	for s := range lvl.sounds {
		delete(lvl.sounds, s)
	}
	return out
}

func (lvl *Level) followCamera() {
	if lvl.focus == nil || lvl.Camera == nil {
		return
	}
	maxX := lvl.width - lvl.Camera.Size.X
	if maxX < 0 {
		maxX = 0
	}
	lvl.Camera.Pos.X = core.Clamp(lvl.focus.Pos.X-lvl.FollowOffset, 0, maxX)
}
