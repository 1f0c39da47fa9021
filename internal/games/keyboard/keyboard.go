// Package keyboard demonstrates both ways of reading the keyboard: a
// listener that is told about key events, and polling the keyboard state
// every frame. Everything it sees goes to the log.
package keyboard

import (
	"image/color"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/registry"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

const ID = "keyboard"

func init() {
	registry.Register(ID, "Hello, Keyboard Controls!", func(registry.Deps) (scene.LogicManager, error) {
		return scene.NewSimpleManager(New()), nil
	})
}

// Game is the keyboard demo.
type Game struct{}

// New creates the demo.
func New() *Game { return &Game{} }

// Init implements scene.Simple.
func (g *Game) Init(ctx *scene.Context) error {
	hint := scenegraph.New("hint").
		WithRenderer(scenegraph.NewText("Press keys and watch the log", color.White, 16)).
		WithTransform(geom.Pt(8, 8), scenegraph.DefaultRotation, scenegraph.DefaultScale).
		Build()
	if err := ctx.Drawables.Add(hint); err != nil {
		return err
	}

	ctx.Input.AddKeyboardActionListener(&input.KeyboardFuncs{
		KeyDown: func(keysDown []input.Key) {
			ctx.Log.Info("Key(s) held down", "keys", keysDown)
		},
		KeyRecentlyPressed: func(ev *input.KeyboardStateEvent) {
			ctx.Log.Infof("Key %s pressed.", ev.KeyName())
		},
		KeyReleased: func(ev *input.KeyboardStateEvent) {
			ctx.Log.Infof("Key %s released.", ev.KeyName())
		},
		KeyTyped: func(ev *input.KeyboardTypedEvent) {
			ctx.Log.Infof("Key %s typed.", ev.KeyName())
		},
	})
	return nil
}

// FixedUpdate implements scene.Simple. The demo has no fixed-rate logic.
func (g *Game) FixedUpdate(*scene.Context) {}

// Update implements scene.Simple by polling the keyboard.
func (g *Game) Update(ctx *scene.Context) {
	kb := ctx.Keyboard

	if kb.IsKeyDown(input.KeyW) {
		ctx.Log.Info("W key is held down")
	}
	if kb.IsKeyRecentlyPressed(input.KeyW) {
		ctx.Log.Info("W key was pressed")
	}
	if kb.IsKeyRecentlyReleased(input.KeyW) {
		ctx.Log.Info("W key was released")
	}
	if kb.LastKeyPressed() == input.KeyW.String() {
		ctx.Log.Info("Last key pressed was W")
	}

	if kb.IsKeyDown(input.KeyShiftLeft) {
		ctx.Log.Info("Left shift is held down")
	}
	if kb.IsKeyRecentlyPressed(input.KeyControlRight) {
		ctx.Log.Info("Right control was pressed")
	}
	if kb.IsKeyRecentlyReleased(input.KeyNumpad4) {
		ctx.Log.Info("Numpad 4 was released")
	}
}
