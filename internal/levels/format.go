// Package levels provides YAML level loading and world construction.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML level schema.
type Document struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	TileSize float64 `yaml:"tile_size"`
	Gravity  float64 `yaml:"gravity"`

	// Spawn is the player start position in tile coordinates.
	Spawn []float64 `yaml:"spawn"`

	// Patterns are named reusable tile groups stamped by layers.
	Patterns map[string]Pattern `yaml:"patterns"`

	Layers   []Layer `yaml:"layers"`
	Entities []Spawn `yaml:"entities"`
}

// Pattern is a named group of tile specs, placed relative to each stamp
// position.
type Pattern struct {
	Tiles []TileSpec `yaml:"tiles"`
}

// Layer is one tile grid of the level.
type Layer struct {
	Tiles []TileSpec `yaml:"tiles"`
}

// TileSpec places either a tile or a named pattern over a set of ranges.
// Exactly one of Style or Pattern must be set.
type TileSpec struct {
	Style    string `yaml:"style"`
	Type     string `yaml:"type"`
	Behavior string `yaml:"behavior"`
	Pattern  string `yaml:"pattern"`

	// Ranges are [x, y], [x, y, w] or [x, y, w, h] in tile coordinates.
	Ranges [][]int `yaml:"ranges"`
}

// Spawn places an entity by registered kind, in tile coordinates.
type Spawn struct {
	Kind string    `yaml:"kind"`
	ID   string    `yaml:"id"`
	Pos  []float64 `yaml:"pos"`
}

// ParseYAML parses and validates a level document.
func ParseYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("levels: parsing document: %w", err)
	}

	if doc.ID == "" {
		return doc, fmt.Errorf("levels: document has no id")
	}
	if doc.TileSize == 0 {
		doc.TileSize = 16
	}
	if doc.TileSize < 0 {
		return doc, fmt.Errorf("levels: %s: negative tile_size", doc.ID)
	}
	if len(doc.Spawn) != 0 && len(doc.Spawn) != 2 {
		return doc, fmt.Errorf("levels: %s: spawn must be [x, y]", doc.ID)
	}

	for name, p := range doc.Patterns {
		if err := validateSpecs(p.Tiles); err != nil {
			return doc, fmt.Errorf("levels: %s: pattern %q: %w", doc.ID, name, err)
		}
	}
	for i, layer := range doc.Layers {
		if err := validateSpecs(layer.Tiles); err != nil {
			return doc, fmt.Errorf("levels: %s: layer %d: %w", doc.ID, i, err)
		}
	}
	for _, s := range doc.Entities {
		if s.Kind == "" {
			return doc, fmt.Errorf("levels: %s: entity spawn with no kind", doc.ID)
		}
		if len(s.Pos) != 2 {
			return doc, fmt.Errorf("levels: %s: entity %q: pos must be [x, y]", doc.ID, s.Kind)
		}
	}

	return doc, nil
}

func validateSpecs(specs []TileSpec) error {
	for _, spec := range specs {
		if (spec.Style == "") == (spec.Pattern == "") {
			return fmt.Errorf("tile spec needs exactly one of style or pattern")
		}
		for _, rng := range spec.Ranges {
			if len(rng) < 2 || len(rng) > 4 {
				return fmt.Errorf("range %v must be [x,y], [x,y,w] or [x,y,w,h]", rng)
			}
		}
	}
	return nil
}

// expandRange normalizes a range to its position and extent; width and
// height default to one tile.
func expandRange(rng []int) (x, y, w, h int) {
	x, y = rng[0], rng[1]
	w, h = 1, 1
	if len(rng) > 2 {
		w = rng[2]
	}
	if len(rng) > 3 {
		h = rng[3]
	}
	return x, y, w, h
}
