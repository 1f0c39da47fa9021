package bullethell

import (
	"fmt"
	"image/color"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/registry"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

var loseRed = color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}

// LoseScene shows the wave the player reached. Enter restarts, Escape
// quits.
type LoseScene struct {
	scene.Base
	store registry.ScoreStore

	wave  int
	saved bool
}

// NewLoseScene creates the lose screen. store may be nil, in which case
// scores are not kept.
func NewLoseScene(store registry.ScoreStore) *LoseScene {
	return &LoseScene{
		Base:  scene.NewBase(SceneNames.Lose),
		store: store,
	}
}

// Wave returns the wave shown on the screen.
func (s *LoseScene) Wave() int { return s.wave }

// Saved reports whether the score was stored on the last load.
func (s *LoseScene) Saved() bool { return s.saved }

// Load implements scene.Scene.
func (s *LoseScene) Load(ctx *scene.Context) error {
	s.wave = 0
	s.saved = false
	if ctx.Scenes != nil {
		if sc, ok := ctx.Scenes.Scene(SceneNames.Game); ok {
			if game, ok := sc.(*GameScene); ok {
				s.wave = game.WaveNumber()
			}
		}
	}

	center := ctx.Canvas.Center()
	lines := []struct {
		text  string
		color color.Color
		size  float64
		y     float64
	}{
		{"You Lost...", loseRed, 48, -60},
		{fmt.Sprintf("You died on wave: %d", s.wave), color.White, 24, 0},
		{"Enter to play again, Escape to quit", color.Gray{Y: 0xb0}, 16, 40},
	}
	for _, l := range lines {
		t := scenegraph.NewText(l.text, l.color, l.size)
		x := center.X - t.Bounds().W/2
		obj := scenegraph.New("lose text").
			WithRenderer(t).
			WithTransform(geom.Pt(x, center.Y+l.y), scenegraph.DefaultRotation, scenegraph.DefaultScale).
			Build()
		if err := ctx.Drawables.Add(obj); err != nil {
			return err
		}
	}

	s.saveScore(ctx)

	ctx.Input.AddKeyboardActionListener(&input.KeyboardFuncs{
		KeyRecentlyPressed: func(ev *input.KeyboardStateEvent) {
			switch ev.Key {
			case input.KeyEnter:
				if err := ctx.Scenes.SwitchScenes(SceneNames.Game); err != nil {
					ctx.Log.Error("cannot restart", "error", err)
				}
			case input.KeyEscape:
				ctx.Exit()
			default:
				return
			}
			ev.Consume()
		},
	})
	return nil
}

func (s *LoseScene) saveScore(ctx *scene.Context) {
	if s.store == nil || s.wave <= 0 {
		return
	}
	if _, err := s.store.SaveScore(ID, s.wave); err != nil {
		ctx.Log.Warn("cannot save score", "error", err)
		return
	}
	s.saved = true
	if best, err := s.store.HighScore(ID); err == nil {
		ctx.Log.Info("score saved", "wave", s.wave, "best", best)
	}
}
