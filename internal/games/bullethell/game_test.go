package bullethell

import (
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/engine2d/internal/application/engine"
	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/application/state"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/infrastructure/logging"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/registry"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

type fakeStore struct {
	scores []int
	err    error
}

func (s *fakeStore) SaveScore(gameID string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.scores = append(s.scores, score)
	return int64(len(s.scores)), nil
}

func (s *fakeStore) HighScore(string) (int, error) {
	best := 0
	for _, v := range s.scores {
		best = max(best, v)
	}
	return best, nil
}

type testGame struct {
	engine *engine.Engine
	src    *input.QueueSource
	scenes *scene.Manager
	game   *GameScene
	lose   *LoseScene
	store  *fakeStore
}

func newTestGame(t *testing.T, cfg Config) *testGame {
	t.Helper()
	tg := &testGame{
		src:   input.NewQueueSource(),
		game:  NewGameScene(cfg, rand.New(rand.NewPCG(1, 2))),
		store: &fakeStore{},
	}
	tg.lose = NewLoseScene(tg.store)

	var err error
	tg.scenes, err = scene.NewManager(tg.game, tg.lose)
	require.NoError(t, err)

	ecfg := config.Defaults()
	ecfg.Canvas.Width, ecfg.Canvas.Height = 320, 240
	ecfg.Loop.TPS, ecfg.Loop.UPS = 60, 60
	tg.engine, err = engine.New(ecfg, tg.scenes,
		engine.WithSource(tg.src),
		engine.WithLogger(logging.Discard()),
	)
	require.NoError(t, err)
	require.NoError(t, tg.engine.Init())
	return tg
}

func (tg *testGame) ctx() *scene.Context { return tg.engine.Context() }

func (tg *testGame) tagged(tag string) []*scenegraph.GameObject {
	return tg.ctx().Drawables.WithTag(tag)
}

func TestGameScene_Load(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	assert.Equal(t, 1, tg.game.WaveNumber())
	assert.Equal(t, 5, tg.game.Health())
	assert.Len(t, tg.tagged(tagEnemy), 3)
	assert.Len(t, tg.tagged(tagPlayer), 1)

	p := tg.game.Player().Translation()
	assert.InDelta(t, 148, p.X, 1e-9)
	assert.InDelta(t, 108, p.Y, 1e-9)
}

func TestGameScene_ClickShoots(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	tg.src.Push(
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Pressed: []input.MouseButton{input.MouseButtonLeft}}},
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Released: []input.MouseButton{input.MouseButtonLeft}}},
	)
	require.NoError(t, tg.engine.Step(2))

	bullets := tg.tagged(tagBullet)
	require.Len(t, bullets, 1)
	assert.Greater(t, bullets[0].Center().X, tg.game.Player().Center().X, "bullet flies toward the click")
}

func TestGameScene_RightClickDoesNotShoot(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	tg.src.Push(
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Pressed: []input.MouseButton{input.MouseButtonRight}}},
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Released: []input.MouseButton{input.MouseButtonRight}}},
	)
	require.NoError(t, tg.engine.Step(2))

	assert.Empty(t, tg.tagged(tagBullet))
}

func TestGameScene_ClearedWaveStartsNext(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	for _, e := range tg.tagged(tagEnemy) {
		e.Destroy()
	}
	require.NoError(t, tg.engine.Step(1))

	assert.Equal(t, 2, tg.game.WaveNumber())
	assert.Len(t, tg.tagged(tagEnemy), 5)
}

func TestGameScene_MovesWithKeys(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	before := tg.game.Player().Translation()

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyD}}, input.Frame{})
	require.NoError(t, tg.engine.Step(2))

	after := tg.game.Player().Translation()
	assert.InDelta(t, before.X+2*3.5, after.X, 1e-9, "held for two fixed updates")
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestGameScene_PlayerStaysOnCanvas(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyA}})
	require.NoError(t, tg.engine.Step(100))

	assert.InDelta(t, 0, tg.game.Player().Translation().X, 1e-9)
}

func TestGameScene_BulletDestroysEnemy(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	enemies := tg.tagged(tagEnemy)
	target := enemies[0]

	tg.game.Shoot(tg.ctx(), target.Center())
	bullet := tg.tagged(tagBullet)[0]
	bullet.SetTranslation(target.Translation())
	require.NoError(t, tg.engine.Step(1))

	assert.True(t, target.Destroyed())
	assert.True(t, bullet.Destroyed())
	assert.Len(t, tg.tagged(tagEnemy), 2)
}

func TestGameScene_PauseKey(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyP}}, input.Frame{Released: []input.Key{input.KeyP}})
	require.NoError(t, tg.engine.Step(1))
	assert.True(t, tg.engine.Paused())

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyP}})
	require.NoError(t, tg.engine.Step(2))
	assert.False(t, tg.engine.Paused())
}

func TestGameScene_ClicksIgnoredWhilePaused(t *testing.T) {
	tg := newTestGame(t, DefaultConfig())
	require.NoError(t, tg.engine.Step(1))
	tg.engine.Pause()
	require.True(t, tg.engine.Paused())

	tg.src.Push(
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Pressed: []input.MouseButton{input.MouseButtonLeft}}},
		input.Frame{Mouse: input.MouseFrame{X: 300, Y: 120, Released: []input.MouseButton{input.MouseButtonLeft}}},
	)
	require.NoError(t, tg.engine.Step(2))
	assert.Empty(t, tg.tagged(tagBullet))

	tg.engine.Resume()
	require.NoError(t, tg.engine.Step(1))
	assert.Empty(t, tg.tagged(tagBullet), "no queued shots fire on resume")
}

func dieNow(t *testing.T, tg *testGame) {
	t.Helper()
	enemy := tg.tagged(tagEnemy)[0]
	enemy.SetTranslation(tg.game.Player().Translation())
	require.NoError(t, tg.engine.Step(1))
	require.True(t, tg.scenes.SwitchPending())
	require.NoError(t, tg.engine.Step(1))
}

func TestGameScene_DeathShowsLoseScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Health = 1
	tg := newTestGame(t, cfg)

	dieNow(t, tg)

	assert.Equal(t, tg.lose, tg.scenes.Current())
	assert.False(t, tg.game.IsLoaded())
	assert.Equal(t, 1, tg.game.WaveNumber(), "wave survives unload")
	assert.Equal(t, 1, tg.lose.Wave())
	assert.True(t, tg.lose.Saved())
	assert.Equal(t, []int{1}, tg.store.scores)

	var texts []string
	for _, obj := range tg.ctx().Drawables.Objects() {
		if txt, ok := obj.Renderer().(*scenegraph.Text); ok {
			texts = append(texts, txt.Content)
		}
	}
	assert.Contains(t, texts, "You Lost...")
	assert.Contains(t, texts, "You died on wave: 1")
}

func TestLoseScene_SaveFailureIsNotFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Health = 1
	tg := newTestGame(t, cfg)
	tg.store.err = assert.AnError

	dieNow(t, tg)

	assert.Equal(t, tg.lose, tg.scenes.Current())
	assert.False(t, tg.lose.Saved())
}

func TestLoseScene_EnterRestarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Health = 1
	tg := newTestGame(t, cfg)
	dieNow(t, tg)

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyEnter}})
	require.NoError(t, tg.engine.Step(2))

	assert.Equal(t, tg.game, tg.scenes.Current())
	assert.False(t, tg.lose.IsLoaded())
	assert.Equal(t, 1, tg.game.WaveNumber())
	assert.Equal(t, 1, tg.game.Health())
	assert.Len(t, tg.tagged(tagEnemy), 3)
}

func TestLoseScene_EscapeExits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Health = 1
	tg := newTestGame(t, cfg)
	dieNow(t, tg)

	tg.src.Push(input.Frame{Pressed: []input.Key{input.KeyEscape}})
	require.NoError(t, tg.engine.Step(5))

	assert.True(t, tg.ctx().ExitRequested())
	assert.Equal(t, state.StateExiting, tg.engine.State())
}

func TestNew_FromRegistry(t *testing.T) {
	logic, err := registry.Create(ID, registry.Deps{Seed: 3})
	require.NoError(t, err)

	m, ok := logic.(*scene.Manager)
	require.True(t, ok)
	assert.Equal(t, SceneNames.Game, m.Current().Name())
	assert.Equal(t, "Bullet Hell", registry.Title(ID))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(config.NewLoader("../../../cmd/engine2d/configs"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.EnemiesInWave(3))
}

func TestLoadConfig_RejectsBadColor(t *testing.T) {
	fsys := fstest.MapFS{
		"games/bullethell.yaml": {Data: []byte("player:\n  color: green\n")},
	}

	_, err := LoadConfig(config.NewFSLoader(fsys, "."))
	assert.ErrorContains(t, err, "player.color")

	_, err = New(registry.Deps{Config: config.NewFSLoader(fsys, ".")})
	assert.Error(t, err, "the game fails to build instead of panicking on load")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad bullet color", func(c *Config) { c.Bullet.Color = "#12" }},
		{"bad enemy color", func(c *Config) { c.Enemy.Color = "red" }},
		{"zero player size", func(c *Config) { c.Player.Size = 0 }},
		{"negative enemy speed", func(c *Config) { c.Enemy.Speed = -1 }},
		{"zero health", func(c *Config) { c.Player.Health = 0 }},
		{"zero lifetime", func(c *Config) { c.Bullet.LifetimeSteps = 0 }},
		{"negative invulnerability", func(c *Config) { c.Player.InvulnerableSteps = -1 }},
		{"empty first wave", func(c *Config) { c.Waves.FirstWave = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
