package bullethell

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/behavior"
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

// Object tags.
const (
	tagPlayer = "player"
	tagEnemy  = "enemy"
	tagBullet = "bullet"
)

// Draw layers.
const (
	layerBullets = 0
	layerEnemies = 1
	layerPlayer  = 2
	layerHUD     = 10
)

// GameScene is the playing field.
type GameScene struct {
	scene.Base
	cfg Config
	rng *rand.Rand

	player *scenegraph.GameObject
	hud    *scenegraph.Text
	bounds geom.Rect

	health       int
	wave         int
	invulnerable int
	dead         bool
}

// NewGameScene creates the scene. rng decides enemy spawn points.
func NewGameScene(cfg Config, rng *rand.Rand) *GameScene {
	return &GameScene{
		Base: scene.NewBase(SceneNames.Game),
		cfg:  cfg,
		rng:  rng,
	}
}

// WaveNumber returns the current wave, or the wave the player died on.
func (s *GameScene) WaveNumber() int { return s.wave }

// Health returns the player's remaining health.
func (s *GameScene) Health() int { return s.health }

// Player returns the player object while the scene is loaded.
func (s *GameScene) Player() *scenegraph.GameObject { return s.player }

// Load implements scene.Scene. Every load starts a fresh run.
func (s *GameScene) Load(ctx *scene.Context) error {
	s.bounds = ctx.Canvas.Rect()
	s.health = s.cfg.Player.Health
	s.wave = 0
	s.invulnerable = 0
	s.dead = false

	size := s.cfg.Player.Size
	s.player = scenegraph.New("player").
		WithRenderer(scenegraph.NewRectangle(size, size, config.MustColor(s.cfg.Player.Color))).
		WithTransform(ctx.Canvas.Center().Sub(geom.Pt(size/2, size/2)), scenegraph.DefaultRotation, scenegraph.DefaultScale).
		WithLayer(layerPlayer).
		WithTags(tagPlayer).
		Build()

	s.hud = scenegraph.NewText("", color.White, 16)
	hud := scenegraph.New("hud").
		WithRenderer(s.hud).
		WithTransform(geom.Pt(8, 8), scenegraph.DefaultRotation, scenegraph.DefaultScale).
		WithLayer(layerHUD).
		Build()

	if err := ctx.Drawables.Add(s.player); err != nil {
		return err
	}
	if err := ctx.Drawables.Add(hud); err != nil {
		return err
	}

	ctx.Input.AddMouseActionListener(&shooter{scene: s, ctx: ctx})
	ctx.Input.AddKeyboardActionListener(&input.KeyboardFuncs{
		KeyRecentlyPressed: func(ev *input.KeyboardStateEvent) {
			if ev.Key == input.KeyP && ctx.Loop != nil {
				ctx.Loop.TogglePause()
				ev.Consume()
			}
		},
	})

	s.nextWave(ctx)
	s.updateHUD()
	return nil
}

// shooter fires a bullet toward every left click while the game runs.
type shooter struct {
	input.NopMouseListener
	scene *GameScene
	ctx   *scene.Context
}

func (l *shooter) OnMouseClicked(ev *input.MouseButtonEvent) {
	if ev.Button != input.MouseButtonLeft {
		return
	}
	if l.ctx.Loop != nil && l.ctx.Loop.Paused() {
		return
	}
	l.scene.Shoot(l.ctx, geom.Pt(float64(ev.X), float64(ev.Y)))
	ev.Consume()
}

// Shoot fires a bullet from the player's centre toward target. Clicking on
// the player's centre fires nothing.
func (s *GameScene) Shoot(ctx *scene.Context, target geom.Pointf) {
	if s.player == nil || s.dead {
		return
	}
	from := s.player.Center()
	dir := target.Sub(from).Normalized()
	if dir == geom.Origin {
		return
	}

	size := s.cfg.Bullet.Size
	bullet := scenegraph.New("bullet").
		WithRenderer(scenegraph.NewRectangle(size, size, config.MustColor(s.cfg.Bullet.Color))).
		WithTransform(from.Sub(geom.Pt(size/2, size/2)), scenegraph.DefaultRotation, scenegraph.DefaultScale).
		WithLayer(layerBullets).
		WithTags(tagBullet).
		WithBehaviors(
			behavior.SimpleTranslation(dir.Scale(s.cfg.Bullet.Speed)),
			behavior.Lifetime(s.cfg.Bullet.LifetimeSteps, nil),
			behavior.Bounded(s.bounds, nil),
		).
		Build()
	ctx.Drawables.MustAdd(bullet)
}

// nextWave spawns the enemies of the following wave at the canvas edges.
func (s *GameScene) nextWave(ctx *scene.Context) {
	s.wave++
	n := s.cfg.EnemiesInWave(s.wave)
	for range n {
		ctx.Drawables.MustAdd(s.newEnemy(s.spawnPoint()))
	}
	ctx.Log.Info("wave started", "wave", s.wave, "enemies", n)
}

func (s *GameScene) spawnPoint() geom.Pointf {
	size := s.cfg.Enemy.Size
	w, h := s.bounds.W-size, s.bounds.H-size
	switch s.rng.IntN(4) {
	case 0:
		return geom.Pt(s.rng.Float64()*w, 0)
	case 1:
		return geom.Pt(w, s.rng.Float64()*h)
	case 2:
		return geom.Pt(s.rng.Float64()*w, h)
	default:
		return geom.Pt(0, s.rng.Float64()*h)
	}
}

func (s *GameScene) newEnemy(at geom.Pointf) *scenegraph.GameObject {
	size := s.cfg.Enemy.Size
	chase := &behavior.Funcs{
		OnFixedUpdate: func(obj *scenegraph.GameObject) {
			if s.player == nil {
				return
			}
			dir := s.player.Center().Sub(obj.Center()).Normalized()
			obj.Translate(dir.Scale(s.cfg.Enemy.Speed))
		},
	}
	return scenegraph.New("enemy").
		WithRenderer(scenegraph.NewRectangle(size, size, config.MustColor(s.cfg.Enemy.Color))).
		WithTransform(at, scenegraph.DefaultRotation, scenegraph.DefaultScale).
		WithLayer(layerEnemies).
		WithTags(tagEnemy).
		WithBehaviors(behavior.SimpleRotation(s.cfg.Enemy.Spin), chase).
		Build()
}

// FixedUpdate implements scene.Scene: movement, collisions, waves.
func (s *GameScene) FixedUpdate(ctx *scene.Context) {
	if s.dead {
		return
	}
	s.movePlayer(ctx.Keyboard)

	enemies := ctx.Drawables.WithTag(tagEnemy)
	for _, b := range ctx.Drawables.WithTag(tagBullet) {
		for _, e := range enemies {
			if b.CollidesWith(e) {
				b.Destroy()
				e.Destroy()
				break
			}
		}
	}

	if s.invulnerable > 0 {
		s.invulnerable--
	}
	for _, e := range enemies {
		if s.invulnerable > 0 || !e.CollidesWith(s.player) {
			continue
		}
		e.Destroy()
		s.health--
		s.invulnerable = s.cfg.Player.InvulnerableSteps
		ctx.Log.Debug("player hit", "health", s.health)
	}

	if s.health <= 0 {
		s.die(ctx)
		return
	}
	if len(ctx.Drawables.WithTag(tagEnemy)) == 0 {
		s.nextWave(ctx)
	}
}

func (s *GameScene) movePlayer(kb *input.Keyboard) {
	var d geom.Pointf
	if kb.IsKeyDown(input.KeyW) {
		d.Y--
	}
	if kb.IsKeyDown(input.KeyS) {
		d.Y++
	}
	if kb.IsKeyDown(input.KeyA) {
		d.X--
	}
	if kb.IsKeyDown(input.KeyD) {
		d.X++
	}
	if d == geom.Origin {
		return
	}

	p := s.player.Translation().Add(d.Normalized().Scale(s.cfg.Player.Speed))
	size := s.cfg.Player.Size
	p.X = min(max(p.X, s.bounds.X), s.bounds.X+s.bounds.W-size)
	p.Y = min(max(p.Y, s.bounds.Y), s.bounds.Y+s.bounds.H-size)
	s.player.SetTranslation(p)
}

func (s *GameScene) die(ctx *scene.Context) {
	s.dead = true
	s.health = 0
	ctx.Log.Info("player died", "wave", s.wave)
	if ctx.Scenes == nil {
		return
	}
	if err := ctx.Scenes.SwitchScenes(SceneNames.Lose); err != nil {
		ctx.Log.Error("cannot switch scenes", "error", err)
	}
}

// Update implements scene.Scene: HUD and hit flashing.
func (s *GameScene) Update(*scene.Context) {
	s.updateHUD()
	s.player.SetVisible(s.invulnerable == 0 || (s.invulnerable/5)%2 == 0)
}

func (s *GameScene) updateHUD() {
	s.hud.Content = fmt.Sprintf("Health: %d  Wave: %d", s.health, s.wave)
}

// Unload implements scene.Scene. The wave number is kept for the lose
// screen.
func (s *GameScene) Unload(*scene.Context) {
	s.player = nil
	s.hud = nil
}
