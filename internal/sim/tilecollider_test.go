package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// newTestWorld builds a level over a single grid with the given tile size
// and no gravity, so tests control velocities exactly.
func newTestWorld(tileSize float64, m *Matrix) *Level {
	resolver := NewTileResolver(m, tileSize)
	collider := NewTileCollider(DefaultMargin, resolver)
	lvl := NewLevel("test", collider)
	lvl.Gravity = 0
	return lvl
}

func newMover(x, y, w, h float64) *Entity {
	e := NewEntity(core.V(w, h), core.Vec{})
	e.Pos.Set(x, y)
	e.Attach(&Physics{})
	e.Attach(NewSolid())
	return e
}

func TestCheckXObstructsAgainstGround(t *testing.T) {
	// A 20-unit grid with a ground tile whose left edge sits at x=100.
	m := NewMatrix()
	m.Set(5, 0, Tile{Style: "ground", Behavior: "ground"})
	lvl := newTestWorld(20, m)

	// Entity positioned so bounds.right = 98, moving right at 50 units/s.
	e := newMover(82, 2, 16, 16)
	e.Vel.X = 50
	lvl.AddEntity(e)

	lvl.Update(Step{DeltaTime: 0.1})

	// The sweep lookahead (|vel|*dt + margin = 7) reaches the tile edge:
	// the entity ends flush against it with zeroed velocity.
	if e.Bounds.Right() != 100 {
		t.Errorf("Right() = %v after obstruction, expected 100", e.Bounds.Right())
	}
	if e.Vel.X != 0 {
		t.Errorf("Vel.X = %v after obstruction, expected 0", e.Vel.X)
	}
}

func TestCheckXSkipsStationaryEntity(t *testing.T) {
	m := NewMatrix()
	m.Set(0, 0, Tile{Style: "ground", Behavior: "ground"})
	lvl := newTestWorld(16, m)

	e := newMover(20, 0, 16, 16)
	before := e.Pos

	lvl.Collider.CheckX(e, 0.1, lvl)

	if e.Pos != before {
		t.Error("CheckX moved an entity with zero horizontal velocity")
	}
}

func TestCornerResolvesXBeforeY(t *testing.T) {
	// A wall on column 3 and a floor on row 2 form an inside corner at
	// (48, 32). The entity approaches diagonally with |vel|*dt < tileSize.
	m := NewMatrix()
	m.Set(3, 0, Tile{Style: "ground", Behavior: "ground"})
	m.Set(3, 1, Tile{Style: "ground", Behavior: "ground"})
	m.Set(3, 2, Tile{Style: "ground", Behavior: "ground"})
	m.Set(0, 2, Tile{Style: "ground", Behavior: "ground"})
	m.Set(1, 2, Tile{Style: "ground", Behavior: "ground"})
	m.Set(2, 2, Tile{Style: "ground", Behavior: "ground"})
	lvl := newTestWorld(16, m)

	e := newMover(30, 14, 16, 16)
	e.Vel.Set(100, 100)
	lvl.AddEntity(e)

	lvl.Update(Step{DeltaTime: 0.1})

	// X resolved first against the wall, then Y against the floor: the
	// entity ends the frame flush against both faces with no tunneling.
	if e.Bounds.Right() != 48 {
		t.Errorf("Right() = %v, expected flush against wall at 48", e.Bounds.Right())
	}
	if e.Bounds.Bottom() != 32 {
		t.Errorf("Bottom() = %v, expected flush against floor at 32", e.Bounds.Bottom())
	}
	if e.Vel.X != 0 || e.Vel.Y != 0 {
		t.Errorf("Vel = %v after corner, expected zero", e.Vel)
	}
}

func TestCoinPickupIsOneShot(t *testing.T) {
	m := NewMatrix()
	m.Set(2, 0, Tile{Style: "coin", Behavior: "coin"})
	lvl := newTestWorld(16, m)

	collectorEntity := newMover(14, 0, 16, 16)
	col := NewCollector("p1", 3)
	collectorEntity.Attach(col)
	collectorEntity.Vel.X = 10

	lvl.Collider.CheckX(collectorEntity, 1.0/60, lvl)

	if col.Coins != 1 {
		t.Fatalf("Coins = %d after pickup, expected 1", col.Coins)
	}
	if _, ok := m.Get(2, 0); ok {
		t.Fatal("coin tile still present after pickup")
	}

	// A second entity hitting the now-removed tile location gets nothing.
	other := newMover(14, 0, 16, 16)
	otherCol := NewCollector("p2", 3)
	other.Attach(otherCol)
	other.Vel.X = 10

	lvl.Collider.CheckX(other, 1.0/60, lvl)

	if otherCol.Coins != 0 {
		t.Errorf("second collector credited %d coins from a consumed tile", otherCol.Coins)
	}
}

func TestCoinIgnoresNonCollector(t *testing.T) {
	m := NewMatrix()
	m.Set(2, 0, Tile{Style: "coin", Behavior: "coin"})
	lvl := newTestWorld(16, m)

	e := newMover(14, 0, 16, 16)
	e.Vel.X = 10

	lvl.Collider.CheckX(e, 1.0/60, lvl)

	if _, ok := m.Get(2, 0); !ok {
		t.Error("non-collector entity consumed a coin tile")
	}
}

func TestBrickBreakFromBelow(t *testing.T) {
	m := NewMatrix()
	m.Set(0, 0, Tile{Style: "brick", Behavior: "brick"})
	lvl := newTestWorld(16, m)

	player := newMover(0, 18, 16, 16)
	player.Attach(NewCollector("p1", 3))
	player.Vel.Y = -100
	lvl.AddEntity(player)

	for i := 0; i < 5; i++ {
		lvl.Update(Step{DeltaTime: 1.0 / 60})
		if _, ok := m.Get(0, 0); !ok {
			break
		}
	}

	if _, ok := m.Get(0, 0); ok {
		t.Fatal("brick tile still present after an upward collector hit")
	}

	// Head bonk still obstructs: the player is clamped below the tile row.
	if player.Bounds.Top() < 16 {
		t.Errorf("Top() = %v, expected clamped at or below 16", player.Bounds.Top())
	}

	// Four debris fragments joined the world through the command buffer.
	if got := len(lvl.Entities()); got != 5 {
		t.Errorf("lvl has %d entities after break, expected player + 4 debris", got)
	}
}

func TestBrickBlocksLikeGroundForNonCollector(t *testing.T) {
	m := NewMatrix()
	m.Set(0, 0, Tile{Style: "brick", Behavior: "brick"})
	lvl := newTestWorld(16, m)

	e := newMover(0, 18, 16, 16)
	e.Vel.Y = -100
	lvl.AddEntity(e)

	for i := 0; i < 5; i++ {
		lvl.Update(Step{DeltaTime: 1.0 / 60})
	}

	if _, ok := m.Get(0, 0); !ok {
		t.Error("non-collector entity broke a brick")
	}
	if math.Abs(e.Bounds.Top()-16) > 1e-9 {
		t.Errorf("Top() = %v, expected clamped at 16", e.Bounds.Top())
	}
}

func TestTileBehaviorRegistration(t *testing.T) {
	m := NewMatrix()
	m.Set(1, 0, Tile{Style: "ground", Behavior: "lava"})
	lvl := newTestWorld(16, m)

	burned := false
	lvl.Collider.RegisterBehavior("lava", TileBehavior{
		X: func(TileHit) { burned = true },
		Y: func(TileHit) { burned = true },
	})

	e := newMover(0, 0, 16, 16)
	e.Vel.X = 10
	lvl.Collider.CheckX(e, 1.0/60, lvl)

	if !burned {
		t.Error("custom tile behavior was not dispatched")
	}
}
