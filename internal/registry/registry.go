// Package registry provides a global registry for level sources.
// Level packs register themselves in init() functions, allowing the platform
// to discover levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// Factory is a function that creates a new level source.
type Factory func() breakout.LevelSource

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
	Order int // Menu position; ties break by ID
}

type entry struct {
	info    LevelInfo
	factory Factory
}

// Registry maps level IDs to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a level factory.
// Panics if a level with the same ID is already registered.
func (r *Registry) Register(id string, order int, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	// Get title by creating a temporary instance
	title := f().Name()
	r.entries[id] = entry{
		info:    LevelInfo{ID: id, Title: title, Order: order},
		factory: f,
	}
}

// List returns information about all registered levels in menu order.
func (r *Registry) List() []LevelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]LevelInfo, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a level source by its ID.
// Returns an error if the level ID is not registered.
func (r *Registry) Create(id string) (breakout.LevelSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a level with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// Sources instantiates every registered level in menu order.
func (r *Registry) Sources() []breakout.LevelSource {
	infos := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]breakout.LevelSource, 0, len(infos))
	for _, info := range infos {
		sources = append(sources, r.entries[info.ID].factory())
	}
	return sources
}

var std = New()

// Default returns the global registry.
func Default() *Registry { return std }

// Register adds a level factory to the global registry.
// Typically called from a level pack's init() function.
func Register(id string, order int, f Factory) { std.Register(id, order, f) }

// List returns all levels in the global registry in menu order.
func List() []LevelInfo { return std.List() }

// Create instantiates a level from the global registry.
func Create(id string) (breakout.LevelSource, error) { return std.Create(id) }

// Exists checks the global registry for a level ID.
func Exists(id string) bool { return std.Exists(id) }

// Sources instantiates every level in the global registry in menu order.
func Sources() []breakout.LevelSource { return std.Sources() }
