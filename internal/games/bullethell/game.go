// Package bullethell is a small arena shooter: survive waves of spinning
// enemies with WASD and the mouse. It runs on two scenes, the game itself
// and a lose screen that reports the wave the player died on.
package bullethell

import (
	"math/rand/v2"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/registry"
)

// ID is the registry and score-table id of the game.
const ID = "bullethell"

// SceneNames names the game's scenes.
var SceneNames = struct {
	Game string
	Lose string
}{
	Game: "Game Scene",
	Lose: "Lose Scene",
}

func init() {
	registry.Register(ID, "Bullet Hell", func(deps registry.Deps) (scene.LogicManager, error) {
		m, err := New(deps)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}

// New builds the scene manager with GameScene current.
func New(deps registry.Deps) (*scene.Manager, error) {
	cfg, err := LoadConfig(deps.Config)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(deps.Seed, deps.Seed^0x9e3779b97f4a7c15))
	return scene.NewManager(
		NewGameScene(cfg, rng),
		NewLoseScene(deps.Scores),
	)
}
