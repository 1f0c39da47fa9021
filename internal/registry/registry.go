// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the CLI to
// discover and instantiate games without hardcoded dependencies.
package registry

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// ScoreStore is the part of the score database games use.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Deps is what a game may need from the host.
type Deps struct {
	// Config reads games/<id>.yaml. Nil means built-in defaults.
	Config *config.Loader
	// Scores persists results. Nil disables saving.
	Scores ScoreStore
	// Seed makes random decisions reproducible for replays.
	Seed uint64
	Log  *log.Logger
}

// Factory creates a new instance of a game.
type Factory func(deps Deps) (scene.LogicManager, error)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(errors.Errorf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string, deps Deps) (scene.LogicManager, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q", id)
	}
	if deps.Log == nil {
		deps.Log = log.Default()
	}
	logic, err := f(deps)
	if err != nil {
		return nil, errors.Wrapf(err, "registry: create %q", id)
	}
	return logic, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title of id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
