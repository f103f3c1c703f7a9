package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// gameplay holds the tuning applied to newly built worlds: collision
// margin, camera follow and culling, and the gravity fallback for
// documents that do not set their own.
var gameplay = config.DefaultGameplayConfig()

// SetGameplay installs the tuning used by Build.
func SetGameplay(cfg config.GameplayConfig) {
	gameplay = cfg
}

// Build constructs a fresh simulation world from the document: one sparse
// grid per layer with patterns expanded, and every declared entity spawned
// through the registry. Each call produces an independent world, so
// restarting a level is just building it again.
func Build(doc Document) (*sim.Level, error) {
	var resolvers []*sim.TileResolver
	var maxX, maxY int
	for i, layer := range doc.Layers {
		m := sim.NewMatrix()
		if err := stampSpecs(m, doc.Patterns, layer.Tiles, 0, 0, nil); err != nil {
			return nil, fmt.Errorf("levels: %s: layer %d: %w", doc.ID, i, err)
		}
		if x, y := m.Extent(); i == 0 {
			// Only the first layer is collidable and defines the world
			// extent; later layers are decoration.
			maxX, maxY = x, y
		}
		resolvers = append(resolvers, sim.NewTileResolver(m, doc.TileSize))
	}
	if len(resolvers) == 0 {
		return nil, fmt.Errorf("levels: %s: document has no layers", doc.ID)
	}

	lvl := sim.NewLevel(doc.Name, sim.NewTileCollider(gameplay.Collision.Margin, resolvers...))
	lvl.SetExtent(float64(maxX)*doc.TileSize, float64(maxY)*doc.TileSize)
	lvl.FollowOffset = gameplay.Camera.FollowOffset
	lvl.CullMargin = gameplay.Camera.CullMargin
	lvl.CullInterval = gameplay.Camera.CullInterval
	if gameplay.Physics.Gravity > 0 {
		lvl.Gravity = gameplay.Physics.Gravity
	}
	// A document's own gravity wins over the configured default.
	if doc.Gravity > 0 {
		lvl.Gravity = doc.Gravity
	}

	for _, s := range doc.Entities {
		e, err := registry.Create(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", doc.ID, err)
		}
		if s.ID != "" {
			e.ID = s.ID
		}
		e.Pos.Set(s.Pos[0]*doc.TileSize, s.Pos[1]*doc.TileSize)
		lvl.AddEntity(e)
	}

	return lvl, nil
}

// stampSpecs writes tile specs into the matrix at the given tile offset,
// expanding pattern references recursively. The visiting set rejects
// pattern cycles.
func stampSpecs(m *sim.Matrix, patterns map[string]Pattern, specs []TileSpec, offX, offY int, visiting map[string]bool) error {
	for _, spec := range specs {
		for _, rng := range spec.Ranges {
			x, y, w, h := expandRange(rng)
			for dx := 0; dx < w; dx++ {
				for dy := 0; dy < h; dy++ {
					cx, cy := offX+x+dx, offY+y+dy
					if spec.Pattern == "" {
						m.Set(cx, cy, sim.Tile{
							Style:    spec.Style,
							Type:     spec.Type,
							Behavior: spec.Behavior,
						})
						continue
					}

					p, ok := patterns[spec.Pattern]
					if !ok {
						return fmt.Errorf("unknown pattern %q", spec.Pattern)
					}
					if visiting[spec.Pattern] {
						return fmt.Errorf("pattern cycle through %q", spec.Pattern)
					}
					if visiting == nil {
						visiting = make(map[string]bool)
					}
					visiting[spec.Pattern] = true
					if err := stampSpecs(m, patterns, p.Tiles, cx, cy, visiting); err != nil {
						return err
					}
					delete(visiting, spec.Pattern)
				}
			}
		}
	}
	return nil
}
