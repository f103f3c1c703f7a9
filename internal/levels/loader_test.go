package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	_ "github.com/vovakirdan/tui-platformer/internal/entities"
)

const sampleDoc = `
id: "test-1"
name: "Test Level"
tile_size: 16
spawn: [2, 8]
patterns:
  block:
    tiles:
      - style: brick
        behavior: brick
        ranges:
          - [0, 0, 2]
layers:
  - tiles:
      - style: ground
        behavior: ground
        ranges:
          - [0, 10, 20, 2]
      - pattern: block
        ranges:
          - [5, 6]
entities:
  - kind: walker
    pos: [10, 9]
`

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if doc.ID != "test-1" || doc.Name != "Test Level" {
		t.Errorf("parsed header = %q/%q", doc.ID, doc.Name)
	}
	if doc.TileSize != 16 {
		t.Errorf("TileSize = %v", doc.TileSize)
	}
	if len(doc.Layers) != 1 || len(doc.Entities) != 1 {
		t.Errorf("parsed %d layers and %d entities", len(doc.Layers), len(doc.Entities))
	}
}

func TestParseYAMLDefaultsTileSize(t *testing.T) {
	doc, err := ParseYAML([]byte("id: \"x\"\nlayers:\n  - tiles: []\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if doc.TileSize != 16 {
		t.Errorf("TileSize = %v, expected default 16", doc.TileSize)
	}
}

func TestParseYAMLRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no id", "name: \"x\"\n"},
		{"bad range", "id: \"x\"\nlayers:\n  - tiles:\n      - style: ground\n        ranges:\n          - [1]\n"},
		{"style and pattern", "id: \"x\"\nlayers:\n  - tiles:\n      - style: ground\n        pattern: p\n        ranges:\n          - [0, 0]\n"},
		{"entity without kind", "id: \"x\"\nentities:\n  - pos: [1, 1]\n"},
		{"entity bad pos", "id: \"x\"\nentities:\n  - kind: walker\n    pos: [1]\n"},
	}

	for _, tt := range tests {
		if _, err := ParseYAML([]byte(tt.doc)); err == nil {
			t.Errorf("%s: ParseYAML accepted an invalid document", tt.name)
		}
	}
}

func TestBuildStampsTilesAndPatterns(t *testing.T) {
	doc, err := ParseYAML([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	lvl, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	grid := lvl.Collider.Grids()[0]
	if m, ok := grid.GetByIndex(0, 10); !ok || m.Tile.Style != "ground" {
		t.Error("ground range was not stamped at (0,10)")
	}
	if m, ok := grid.GetByIndex(19, 11); !ok || m.Tile.Style != "ground" {
		t.Error("ground range does not extend to (19,11)")
	}
	if _, ok := grid.GetByIndex(20, 10); ok {
		t.Error("ground range overflows its declared width")
	}

	// Pattern "block" stamps two bricks at its placement offset.
	for _, x := range []int{5, 6} {
		if m, ok := grid.GetByIndex(x, 6); !ok || m.Tile.Behavior != "brick" {
			t.Errorf("pattern tile missing at (%d,6)", x)
		}
	}

	if got := len(lvl.Entities()); got != 1 {
		t.Fatalf("Build spawned %d entities, expected 1", got)
	}
	walker := lvl.Entities()[0]
	if walker.ID != "walker" {
		t.Errorf("spawned entity ID = %q", walker.ID)
	}
	if walker.Pos.X != 160 || walker.Pos.Y != 144 {
		t.Errorf("walker at %v, expected tile (10,9) scaled to (160,144)", walker.Pos)
	}
}

func TestBuildRejectsUnknownPattern(t *testing.T) {
	doc, _ := ParseYAML([]byte("id: \"x\"\nlayers:\n  - tiles:\n      - pattern: nope\n        ranges:\n          - [0, 0]\n"))
	if _, err := Build(doc); err == nil {
		t.Error("Build accepted an unknown pattern reference")
	}
}

func TestBuildRejectsPatternCycle(t *testing.T) {
	cyclic := `
id: "x"
patterns:
  a:
    tiles:
      - pattern: b
        ranges:
          - [0, 0]
  b:
    tiles:
      - pattern: a
        ranges:
          - [0, 0]
layers:
  - tiles:
      - pattern: a
        ranges:
          - [0, 0]
`
	doc, err := ParseYAML([]byte(cyclic))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if _, err := Build(doc); err == nil {
		t.Error("Build accepted a pattern cycle")
	}
}

func TestBuildRejectsUnknownEntityKind(t *testing.T) {
	doc, _ := ParseYAML([]byte("id: \"x\"\nlayers:\n  - tiles: []\nentities:\n  - kind: no-such-kind\n    pos: [0, 0]\n"))
	if _, err := Build(doc); err == nil {
		t.Error("Build accepted an unknown entity kind")
	}
}

func TestEmbeddedLevelsBuild(t *testing.T) {
	loader := NewLoader("")
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(lvls) == 0 {
		t.Fatal("no embedded levels")
	}

	for _, l := range lvls {
		world, err := l.Build()
		if err != nil {
			t.Fatalf("building %s: %v", l.ID, err)
		}
		if w, h := world.Extent(); w <= 0 || h <= 0 {
			t.Errorf("%s: empty extent %vx%v", l.ID, w, h)
		}
		if spawn := l.SpawnPoint(); spawn.X < 0 {
			t.Errorf("%s: spawn point %v", l.ID, spawn)
		}
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("id: \"b\"\nlayers:\n  - tiles: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("id: \"a\"\nlayers:\n  - tiles: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("id: \"c\""), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ListIDs = %v, expected [a b]", ids)
	}

	if _, err := loader.LoadByID("a"); err != nil {
		t.Errorf("LoadByID(a): %v", err)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID with an unknown ID did not error")
	}
}

func TestBuildAppliesGameplayTuning(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.Collision.Margin = 4.5
	cfg.Physics.Gravity = 900
	cfg.Camera.FollowOffset = 80
	cfg.Camera.CullMargin = 32
	cfg.Camera.CullInterval = 6
	SetGameplay(cfg)
	t.Cleanup(func() { SetGameplay(config.DefaultGameplayConfig()) })

	doc, err := ParseYAML([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	lvl, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := lvl.Collider.Margin(); got != 4.5 {
		t.Errorf("collider margin = %v, expected 4.5", got)
	}
	if lvl.Gravity != 900 {
		t.Errorf("Gravity = %v, expected 900", lvl.Gravity)
	}
	if lvl.FollowOffset != 80 || lvl.CullMargin != 32 || lvl.CullInterval != 6 {
		t.Errorf("camera tuning = %v/%v/%d, expected 80/32/6",
			lvl.FollowOffset, lvl.CullMargin, lvl.CullInterval)
	}

	// A document that sets its own gravity overrides the configured one.
	doc.Gravity = 600
	lvl, err = Build(doc)
	if err != nil {
		t.Fatalf("Build with document gravity: %v", err)
	}
	if lvl.Gravity != 600 {
		t.Errorf("document gravity lost: got %v, expected 600", lvl.Gravity)
	}
}
