// Package scene defines the Scene interface for game screens and the
// managers that load, switch and drive them.
//
// Each game screen (title, playing, game over, etc.) implements the Scene
// interface. A scene owns its game objects and input listeners; both are
// released when the scene is unloaded, while the scene value itself (and
// any fields it keeps) survives until the next load.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

// Scene represents a game screen.
//
// The scene manager delegates loop calls to the current scene. Scene
// transitions are requested with Manager.SwitchScenes and happen at the
// start of the next frame.
type Scene interface {
	// Name returns the unique name the scene is registered under.
	Name() string

	// Load builds the scene: create game objects, register listeners.
	// Called each time the scene becomes current while unloaded.
	Load(ctx *Context) error

	// Unload is called before the scene's objects and listeners are
	// released. Use it to save state the next scene may need.
	Unload(ctx *Context)

	// FixedUpdate runs once per fixed step, before object behaviors.
	FixedUpdate(ctx *Context)

	// Update runs once per frame, before object behaviors.
	Update(ctx *Context)

	base() *Base
}

// Drawer is implemented by scenes that draw on top of their game objects.
type Drawer interface {
	Draw(ctx *Context, dst *ebiten.Image)
}

// Base carries the state every scene needs. Embed it in scene types and
// initialise it with NewBase.
type Base struct {
	name      string
	drawables *scenegraph.Manager
	input     *input.Manager
	loaded    bool
}

// NewBase creates the embedded part of a scene named name.
func NewBase(name string) Base {
	return Base{
		name:      name,
		drawables: scenegraph.NewManager(),
		input:     input.NewManager(),
	}
}

func (b *Base) base() *Base { return b }

// Name implements Scene.
func (b *Base) Name() string { return b.name }

// Drawables returns the scene's game objects.
func (b *Base) Drawables() *scenegraph.Manager { return b.drawables }

// Input returns the scene's input listeners.
func (b *Base) Input() *input.Manager { return b.input }

// IsLoaded reports whether the scene is currently loaded.
func (b *Base) IsLoaded() bool { return b.loaded }

// Unload implements Scene with a no-op.
func (b *Base) Unload(*Context) {}

// FixedUpdate implements Scene with a no-op.
func (b *Base) FixedUpdate(*Context) {}

// Update implements Scene with a no-op.
func (b *Base) Update(*Context) {}

// LogicManager is what the engine drives every frame.
type LogicManager interface {
	// Init loads the first scene.
	Init(ctx *Context) error
	// BeginFrame applies a pending scene switch.
	BeginFrame(ctx *Context) error
	// ProcessInput delivers the frame's input events to listeners.
	ProcessInput(ctx *Context, f input.Frame)
	FixedUpdate(ctx *Context)
	Update(ctx *Context)
	Render(ctx *Context, dst *ebiten.Image)
	// Reset unloads everything so Init can run again.
	Reset(ctx *Context)
}
