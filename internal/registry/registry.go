// Package registry provides a global registry of playable game modes.
// Modes register themselves in init() functions, so the platform can list
// and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-wezzle/internal/core"
)

// Game is the interface the platform drives once per tick.
// Implementations contain pure logic with no Bubble Tea dependency.
type Game interface {
	// ID returns the mode identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode.
type Factory func() Game

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" || f == nil {
		panic("registry: mode needs an ID and a factory")
	}
	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = entry{info: info, factory: f}
}

// List returns all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.info, ok
}

// Create instantiates a new game for the given mode ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
