package sim

import "math"

// DefaultMargin is the lookahead margin in world units added to the
// per-axis sweep distance so fast entities cannot slip past thin tiles.
const DefaultMargin = 2.0

// TileHit is the context handed to a tile collision-response handler.
type TileHit struct {
	Entity   *Entity
	Match    TileMatch
	Resolver *TileResolver
	Level    *Level
}

// TileBehavior is an ordered pair of per-axis response handlers selected by
// a tile's behavior key. The X handler runs during the horizontal sweep,
// the Y handler during the vertical sweep.
type TileBehavior struct {
	X func(hit TileHit)
	Y func(hit TileHit)
}

// TileCollider sweeps moving entities against one or more tile grids,
// one axis at a time, and dispatches per-tile-type response handlers.
// It also owns the spatial hash used by the entity broad phase.
type TileCollider struct {
	resolvers []*TileResolver
	margin    float64
	behaviors map[string]TileBehavior

	// Spatial is the entity broad-phase index, rebuilt by the level on its
	// refresh cadence via RefreshSpatial.
	Spatial *SpatialGrid
}

// NewTileCollider creates a collider over the given grids with the built-in
// tile behaviors (ground, coin, brick) registered. The spatial hash cell
// size is derived from the largest grid cell so a tile-sized entity spans
// few cells.
func NewTileCollider(margin float64, resolvers ...*TileResolver) *TileCollider {
	if margin <= 0 {
		margin = DefaultMargin
	}
	cellSize := 64.0
	for _, r := range resolvers {
		if s := r.TileSize() * 4; s > cellSize {
			cellSize = s
		}
	}
	c := &TileCollider{
		resolvers: resolvers,
		margin:    margin,
		behaviors: make(map[string]TileBehavior),
		Spatial:   NewSpatialGrid(cellSize),
	}
	c.RegisterBehavior("ground", groundBehavior())
	c.RegisterBehavior("coin", coinBehavior())
	c.RegisterBehavior("brick", brickBehavior())
	return c
}

// Margin returns the sweep lookahead margin in world units.
func (c *TileCollider) Margin() float64 {
	return c.margin
}

// Grids returns the registered tile grids.
func (c *TileCollider) Grids() []*TileResolver {
	return c.resolvers
}

// AddGrid registers an additional tile grid to sweep against.
func (c *TileCollider) AddGrid(r *TileResolver) {
	c.resolvers = append(c.resolvers, r)
}

// RegisterBehavior binds a behavior key to its handler pair, replacing any
// existing binding.
func (c *TileCollider) RegisterBehavior(key string, b TileBehavior) {
	c.behaviors[key] = b
}

// CheckX sweeps the entity horizontally: from the leading edge in the
// direction of travel, over the movement distance for this tick plus the
// margin, dispatching the X-phase handler of every matched tile.
// An entity with no horizontal velocity is skipped entirely.
func (c *TileCollider) CheckX(e *Entity, dt float64, lvl *Level) {
	if e.Vel.X == 0 {
		return
	}

	lookahead := math.Abs(e.Vel.X)*dt + c.margin
	var x1, x2 float64
	if e.Vel.X > 0 {
		x1 = e.Bounds.Right()
		x2 = x1 + lookahead
	} else {
		x2 = e.Bounds.Left()
		x1 = x2 - lookahead
	}

	for _, r := range c.resolvers {
		for _, match := range r.SearchByRange(x1, x2, e.Bounds.Top(), e.Bounds.Bottom()) {
			c.dispatch(match, r, e, lvl, false)
		}
	}
}

// CheckY sweeps the entity vertically, symmetric to CheckX, dispatching
// Y-phase handlers.
func (c *TileCollider) CheckY(e *Entity, dt float64, lvl *Level) {
	if e.Vel.Y == 0 {
		return
	}

	lookahead := math.Abs(e.Vel.Y)*dt + c.margin
	var y1, y2 float64
	if e.Vel.Y > 0 {
		y1 = e.Bounds.Bottom()
		y2 = y1 + lookahead
	} else {
		y2 = e.Bounds.Top()
		y1 = y2 - lookahead
	}

	for _, r := range c.resolvers {
		for _, match := range r.SearchByRange(e.Bounds.Left(), e.Bounds.Right(), y1, y2) {
			c.dispatch(match, r, e, lvl, true)
		}
	}
}

func (c *TileCollider) dispatch(match TileMatch, r *TileResolver, e *Entity, lvl *Level, vertical bool) {
	behavior, ok := c.behaviors[match.Tile.Behavior]
	if !ok {
		return
	}
	hit := TileHit{Entity: e, Match: match, Resolver: r, Level: lvl}
	if vertical {
		if behavior.Y != nil {
			behavior.Y(hit)
		}
	} else {
		if behavior.X != nil {
			behavior.X(hit)
		}
	}
}

// RefreshSpatial rebuilds the broad-phase index from scratch over the given
// entities.
func (c *TileCollider) RefreshSpatial(entities []*Entity) {
	c.Spatial.Clear()
	for _, e := range entities {
		c.Spatial.Add(e)
	}
}
