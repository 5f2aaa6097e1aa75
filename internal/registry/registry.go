// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Game is the interface every game exposes to a host.
// Games contain pure logic with no Bubble Tea dependency. The host maps
// keys to input, schedules frames and renders the screen buffer.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game and returns it to its menu.
	Reset(cfg core.RuntimeConfig)

	// Frame advances the simulation to wall-clock time now.
	// It never panics into the host; failures are logged and recovered.
	Frame(now time.Time, in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current score, lives and phase flags.
	State() core.GameState

	// Stop ends the game. Later Frame calls do nothing and the host
	// must stop scheduling ticks.
	Stop()

	// Stopped reports whether Stop was called.
	Stopped() bool
}

// Env carries host services into a new game instance. Every field is
// optional.
type Env struct {
	Logger     *log.Logger
	Prefs      core.Prefs
	ConfigPath string
	Preset     config.DifficultyPreset
	OnGameOver func(core.RunResult)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Env{}).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
