package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// Level is a loaded level definition. Building it produces a fresh
// simulation world each time.
type Level struct {
	ID       string
	Name     string
	TileSize float64
	FilePath string

	doc Document
}

// SpawnPoint returns the player start position in world units.
func (l *Level) SpawnPoint() core.Vec {
	if len(l.doc.Spawn) == 2 {
		return core.V(l.doc.Spawn[0]*l.TileSize, l.doc.Spawn[1]*l.TileSize)
	}
	return core.V(2*l.TileSize, 0)
}

// Build constructs the simulation world from the definition.
func (l *Level) Build() (*sim.Level, error) {
	return Build(l.doc)
}

// Loader handles loading levels from a directory. An empty root serves the
// embedded default levels instead.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads all level files under the root, sorted by ID for
// deterministic ordering. Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	if l.Root == "" {
		return loadEmbedded()
	}

	var levels []Level
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		level, err := load(data, path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func loadEmbedded() ([]Level, error) {
	entries, err := defaultLevels.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}

	var levels []Level
	for _, entry := range entries {
		data, err := defaultLevels.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: reading embedded level %s: %w", entry.Name(), err)
		}
		level, err := load(data, "embedded:"+entry.Name())
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func load(data []byte, path string) (Level, error) {
	doc, err := ParseYAML(data)
	if err != nil {
		return Level{}, err
	}
	return Level{
		ID:       doc.ID,
		Name:     doc.Name,
		TileSize: doc.TileSize,
		FilePath: path,
		doc:      doc,
	}, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
