// Package entities defines the built-in entity kinds and registers their
// factories. The level loader spawns them by kind name through the registry.
package entities

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// gameplay holds the tuning applied to newly created entities. Factories
// read it at creation time, so it must be set before levels are loaded.
var gameplay = config.DefaultGameplayConfig()

// SetGameplay installs the tuning used by all entity factories.
func SetGameplay(cfg config.GameplayConfig) {
	gameplay = cfg
}

func init() {
	registry.Register("player", "Player", NewPlayer)
	registry.Register("walker", "Walker", NewWalker)
	registry.Register("cannon", "Cannon", NewCannon)
	registry.Register("bullet", "Bullet", NewBullet)
	registry.Register("goal", "Goal", NewGoal)
}
