package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/engine2d/internal/input"
)

// Simple is a game that needs no scenes.
type Simple interface {
	Init(ctx *Context) error
	FixedUpdate(ctx *Context)
	Update(ctx *Context)
}

// SimpleSceneName is the name of the implicit scene a SimpleManager runs.
const SimpleSceneName = "simple"

type simpleScene struct {
	Base
	game Simple
}

func (s *simpleScene) Load(ctx *Context) error  { return s.game.Init(ctx) }
func (s *simpleScene) FixedUpdate(ctx *Context) { s.game.FixedUpdate(ctx) }
func (s *simpleScene) Update(ctx *Context)      { s.game.Update(ctx) }

// SimpleManager runs a Simple game inside one implicit scene, so the game
// still gets game objects and input listeners through the Context.
type SimpleManager struct {
	scenes *Manager
	scene  *simpleScene
}

// NewSimpleManager wraps game.
func NewSimpleManager(game Simple) *SimpleManager {
	s := &simpleScene{Base: NewBase(SimpleSceneName), game: game}
	m := &Manager{scenes: make(map[string]Scene)}
	// a fresh manager cannot hold the name already
	_ = m.AddScene(s)
	return &SimpleManager{scenes: m, scene: s}
}

// Game returns the wrapped game.
func (m *SimpleManager) Game() Simple { return m.scene.game }

// Init implements LogicManager.
func (m *SimpleManager) Init(ctx *Context) error {
	if err := m.scenes.Init(ctx); err != nil {
		return err
	}
	ctx.Logic = m
	ctx.Scenes = nil
	return nil
}

// BeginFrame implements LogicManager.
func (m *SimpleManager) BeginFrame(*Context) error { return nil }

// ProcessInput implements LogicManager.
func (m *SimpleManager) ProcessInput(ctx *Context, f input.Frame) { m.scenes.ProcessInput(ctx, f) }

// FixedUpdate implements LogicManager.
func (m *SimpleManager) FixedUpdate(ctx *Context) { m.scenes.FixedUpdate(ctx) }

// Update implements LogicManager.
func (m *SimpleManager) Update(ctx *Context) { m.scenes.Update(ctx) }

// Render implements LogicManager.
func (m *SimpleManager) Render(ctx *Context, dst *ebiten.Image) { m.scenes.Render(ctx, dst) }

// Reset implements LogicManager.
func (m *SimpleManager) Reset(ctx *Context) { m.scenes.Reset(ctx) }
