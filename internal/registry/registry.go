// Package registry provides a global registry for entity factories.
// Entity kinds register themselves in init() functions, allowing the
// level loader to spawn entities by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Info contains metadata about a registered entity kind.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a fresh entity of its kind.
type Factory func() *sim.Entity

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an entity factory to the registry.
// Typically called from an entity package's init() function.
// Panics if a kind with the same ID is already registered.
func Register(id, name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: entity kind %q already registered", id))
	}

	factories[id] = f
	names[id] = name
}

// List returns information about all registered entity kinds, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:   id,
			Name: names[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new entity by its kind ID.
// Returns an error if the kind is not registered.
func Create(id string) (*sim.Entity, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown entity kind %q", id)
	}

	return f(), nil
}

// Exists checks if an entity kind with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
