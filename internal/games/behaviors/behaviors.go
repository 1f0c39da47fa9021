// Package behaviors shows the built-in behaviors at work: one square
// slides, one spins, one grows, and a fourth shape pulses its color
// through a Funcs behavior. Space pauses the loop.
package behaviors

import (
	"fmt"
	"image/color"
	"math"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/behavior"
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/registry"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

const ID = "behaviors"

// maxScale is where the growing square starts over.
const maxScale = 2.0

// Config holds the tunables from games/behaviors.yaml. Vectors are
// two-element lists.
type Config struct {
	Size        float64   `yaml:"size"`
	Translation []float64 `yaml:"translation"`
	Rotation    float64   `yaml:"rotation"`
	Scale       []float64 `yaml:"scale"`
	PulseSteps  int       `yaml:"pulseSteps"`
}

// DefaultConfig returns the values used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Size:        60,
		Translation: []float64{1.5, 0},
		Rotation:    3,
		Scale:       []float64{0.004, 0.004},
		PulseSteps:  100,
	}
}

// LoadConfig reads games/behaviors.yaml over DefaultConfig.
func LoadConfig(loader *config.Loader) (Config, error) {
	cfg := DefaultConfig()
	if loader != nil && loader.HasGame(ID) {
		if err := loader.LoadGame(ID, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks vector lengths and sizes.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %v", c.Size)
	}
	if len(c.Translation) != 2 || len(c.Scale) != 2 {
		return fmt.Errorf("translation and scale need two components")
	}
	if c.PulseSteps <= 0 {
		return fmt.Errorf("pulseSteps must be positive, got %d", c.PulseSteps)
	}
	return nil
}

func vec(v []float64) geom.Pointf { return geom.Pt(v[0], v[1]) }

func init() {
	registry.Register(ID, "Behaviors", func(deps registry.Deps) (scene.LogicManager, error) {
		cfg, err := LoadConfig(deps.Config)
		if err != nil {
			return nil, err
		}
		return scene.NewSimpleManager(New(cfg)), nil
	})
}

// Game is the behaviors demo.
type Game struct {
	cfg Config

	Mover, Spinner, Grower, Pulser *scenegraph.GameObject
}

// New creates the demo.
func New(cfg Config) *Game { return &Game{cfg: cfg} }

// Init implements scene.Simple.
func (g *Game) Init(ctx *scene.Context) error {
	size := g.cfg.Size
	area := ctx.Canvas.Rect()
	quarter := area.W / 4
	y := area.H/2 - size/2

	square := func(name string, x float64, c color.Color, bs ...scenegraph.Behavior) *scenegraph.GameObject {
		return scenegraph.New(name).
			WithRenderer(scenegraph.NewRectangle(size, size, c)).
			WithTransform(geom.Pt(x-size/2, y), scenegraph.DefaultRotation, scenegraph.DefaultScale).
			WithBehaviors(bs...).
			Build()
	}

	wrap := behavior.Bounded(area, func(obj *scenegraph.GameObject) {
		obj.SetTranslation(geom.Pt(-size, obj.Translation().Y))
	})
	g.Mover = square("mover", quarter/2, color.RGBA{0x4c, 0x9a, 0xff, 0xff},
		behavior.SimpleTranslation(vec(g.cfg.Translation)), wrap)

	g.Spinner = square("spinner", quarter*1.5, color.RGBA{0xff, 0xc8, 0x4c, 0xff},
		behavior.SimpleRotation(g.cfg.Rotation))

	restart := &behavior.Funcs{
		OnFixedUpdate: func(obj *scenegraph.GameObject) {
			if obj.ScaleFactor().X > maxScale {
				obj.SetScale(scenegraph.DefaultScale)
			}
		},
	}
	g.Grower = square("grower", quarter*2.5, color.RGBA{0x64, 0xc8, 0x64, 0xff},
		behavior.SimpleScale(vec(g.cfg.Scale)), restart)

	pulse := g.pulse()
	g.Pulser = square("pulser", quarter*3.5, pulse.from, pulse)

	ctx.Drawables.MustAdd(g.Mover, g.Spinner, g.Grower, g.Pulser)
	ctx.Drawables.MustAdd(scenegraph.New("hint").
		WithRenderer(scenegraph.NewText("Space: pause", color.White, 16)).
		WithTransform(geom.Pt(8, 8), scenegraph.DefaultRotation, scenegraph.DefaultScale).
		Build())

	ctx.Input.AddKeyboardActionListener(&input.KeyboardFuncs{
		KeyRecentlyPressed: func(ev *input.KeyboardStateEvent) {
			if ev.Key != input.KeySpace || ctx.Loop == nil {
				return
			}
			ctx.Loop.TogglePause()
			ctx.Log.Info("pause toggled", "paused", ctx.Loop.Paused())
			ev.Consume()
		},
	})
	return nil
}

// pulser fades a polygon between two colors and back every steps fixed
// updates.
type pulser struct {
	behavior.Funcs
	from, to color.RGBA
	steps    int
	n        int
}

func (g *Game) pulse() *pulser {
	p := &pulser{
		from:  color.RGBA{0xc8, 0x64, 0xc8, 0xff},
		to:    color.RGBA{0x32, 0x19, 0x32, 0xff},
		steps: g.cfg.PulseSteps,
	}
	p.OnFixedUpdate = p.step
	return p
}

func (p *pulser) step(obj *scenegraph.GameObject) {
	poly, ok := obj.Renderer().(*scenegraph.Polygon)
	if !ok {
		return
	}
	p.n = (p.n + 1) % p.steps
	t := (1 - math.Cos(2*math.Pi*float64(p.n)/float64(p.steps))) / 2
	poly.Fill = lerpColor(p.from, p.to, t)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// FixedUpdate implements scene.Simple. All motion lives in behaviors.
func (g *Game) FixedUpdate(*scene.Context) {}

// Update implements scene.Simple.
func (g *Game) Update(*scene.Context) {}
