package engine

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/application/state"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/infrastructure/logging"
	"github.com/younwookim/engine2d/internal/input"
)

// mockLogic is a test double for the LogicManager interface
type mockLogic struct {
	initCalled        int
	beginCalled       int
	processCalled     int
	fixedUpdateCalled int
	updateCalled      int
	renderCalled      int
	resetCalled       int

	initErr  error
	beginErr error

	log     []string
	frames  []input.Frame
	onFixed func(ctx *scene.Context)
	onInput func(ctx *scene.Context, f input.Frame)
}

func (m *mockLogic) Init(*scene.Context) error {
	m.initCalled++
	return m.initErr
}

func (m *mockLogic) BeginFrame(*scene.Context) error {
	m.beginCalled++
	m.log = append(m.log, "begin")
	return m.beginErr
}

func (m *mockLogic) ProcessInput(ctx *scene.Context, f input.Frame) {
	m.processCalled++
	m.log = append(m.log, "input")
	m.frames = append(m.frames, f)
	if m.onInput != nil {
		m.onInput(ctx, f)
	}
}

func (m *mockLogic) FixedUpdate(ctx *scene.Context) {
	m.fixedUpdateCalled++
	m.log = append(m.log, "fixed")
	if m.onFixed != nil {
		m.onFixed(ctx)
	}
}

func (m *mockLogic) Update(*scene.Context) {
	m.updateCalled++
	m.log = append(m.log, "update")
}

func (m *mockLogic) Render(*scene.Context, *ebiten.Image) { m.renderCalled++ }
func (m *mockLogic) Reset(*scene.Context)                 { m.resetCalled++ }

type frameCounter struct {
	frames []input.Frame
}

func (r *frameCounter) RecordFrame(f input.Frame) { r.frames = append(r.frames, f) }

func testConfig(tps, ups, maxSteps int) config.EngineConfig {
	cfg := config.Defaults()
	cfg.Canvas.Width = 320
	cfg.Canvas.Height = 240
	cfg.Loop.TPS = tps
	cfg.Loop.UPS = ups
	cfg.Loop.MaxFixedSteps = maxSteps
	return cfg
}

func newTestEngine(t *testing.T, logic scene.LogicManager, cfg config.EngineConfig, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSource(input.NewQueueSource()), WithLogger(logging.Discard())}, opts...)
	e, err := New(cfg, logic, opts...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	assert.NotNil(t, e)
	assert.Equal(t, state.StateCreated, e.State())
	assert.Equal(t, 0, logic.initCalled, "Init is deferred")
	assert.InDelta(t, 1.0/60.0, e.Context().Dt, 1e-12)
	assert.Equal(t, e, e.Context().Loop)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(testConfig(0, 60, 5), &mockLogic{})
	assert.Error(t, err)

	_, err = New(testConfig(60, 60, 5), nil)
	assert.Error(t, err)
}

func TestEngine_Init(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	require.NoError(t, e.Init())
	assert.Equal(t, 1, logic.initCalled)
	assert.Equal(t, state.StateInitialized, e.State())

	assert.ErrorIs(t, e.Init(), ErrAlreadyInitialized)
}

func TestEngine_InitError(t *testing.T) {
	logic := &mockLogic{initErr: assert.AnError}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	err := e.Init()
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, state.StateCreated, e.State())
}

func TestEngine_UpdateBeforeInit(t *testing.T) {
	e := newTestEngine(t, &mockLogic{}, testConfig(60, 60, 5))
	assert.ErrorIs(t, e.Update(), ErrNotRunning)
}

func TestEngine_UpdateOrder(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))
	require.NoError(t, e.Init())

	require.NoError(t, e.Update())

	assert.Equal(t, []string{"begin", "input", "fixed", "update"}, logic.log)
	assert.Equal(t, state.StateRunning, e.State())
	assert.Equal(t, uint64(1), e.Context().Frame)
}

func TestEngine_FixedStepsFollowUPS(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 30, 5))

	require.NoError(t, e.Step(60))

	assert.Equal(t, 60, logic.updateCalled)
	assert.InDelta(t, 30, logic.fixedUpdateCalled, 1)
	assert.Equal(t, uint64(60), e.Stats().Frames)
	assert.Equal(t, uint64(logic.fixedUpdateCalled), e.Stats().FixedUpdates)
}

func TestEngine_SeveralFixedStepsPerTick(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(30, 60, 5))

	require.NoError(t, e.Step(1))

	assert.Equal(t, 2, logic.fixedUpdateCalled)
	assert.Equal(t, 1, logic.updateCalled)
}

func TestEngine_FixedStepsCapped(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(10, 100, 5))

	require.NoError(t, e.Step(2))

	assert.Equal(t, 10, logic.fixedUpdateCalled, "five per tick")
	assert.Equal(t, uint64(10), e.Stats().DroppedSteps)
}

func TestEngine_InputAppliedBeforeListeners(t *testing.T) {
	src := input.NewQueueSource(
		input.Frame{Pressed: []input.Key{input.KeyW}},
		input.Frame{},
	)
	var downDuringInput []bool
	logic := &mockLogic{
		onInput: func(ctx *scene.Context, f input.Frame) {
			downDuringInput = append(downDuringInput, ctx.Keyboard.IsKeyDown(input.KeyW))
		},
	}
	rec := &frameCounter{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5), WithSource(src), WithRecorder(rec))

	require.NoError(t, e.Step(2))

	assert.Equal(t, []bool{true, true}, downDuringInput)
	assert.Len(t, rec.frames, 2)
	assert.Equal(t, []input.Key{input.KeyW}, rec.frames[0].Pressed)
}

func TestEngine_PauseSkipsUpdatesButNotInput(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))
	require.NoError(t, e.Step(1))

	e.Pause()
	assert.True(t, e.Paused())
	require.NoError(t, e.Step(3))

	assert.Equal(t, 4, logic.processCalled)
	assert.Equal(t, 1, logic.fixedUpdateCalled)
	assert.Equal(t, 1, logic.updateCalled)

	e.TogglePause()
	assert.False(t, e.Paused())
	require.NoError(t, e.Step(1))
	assert.Equal(t, 2, logic.updateCalled)
}

func TestEngine_ExitReturnsTermination(t *testing.T) {
	logic := &mockLogic{
		onFixed: func(ctx *scene.Context) { ctx.Exit() },
	}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))
	require.NoError(t, e.Init())

	err := e.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, state.StateExiting, e.State())

	assert.ErrorIs(t, e.Update(), ErrNotRunning)
}

func TestEngine_StepStopsOnExit(t *testing.T) {
	logic := &mockLogic{
		onFixed: func(ctx *scene.Context) {
			if ctx.Frame == 2 {
				ctx.Exit()
			}
		},
	}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	require.NoError(t, e.Step(10))
	assert.Equal(t, 3, logic.updateCalled)
}

func TestEngine_BeginFrameError(t *testing.T) {
	logic := &mockLogic{beginErr: assert.AnError}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	err := e.Step(1)
	assert.True(t, errors.Is(err, assert.AnError), "error should propagate from the logic manager")
	assert.Equal(t, 0, logic.updateCalled)
}

func TestEngine_Draw_DelegatesToLogic(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))

	img := ebiten.NewImage(320, 240)
	e.Draw(img)

	assert.Equal(t, 1, logic.renderCalled, "Draw should delegate to the logic manager")
}

func TestEngine_Layout(t *testing.T) {
	e := newTestEngine(t, &mockLogic{}, testConfig(60, 60, 5))

	w, h := e.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestEngine_Stop(t *testing.T) {
	logic := &mockLogic{}
	e := newTestEngine(t, logic, testConfig(60, 60, 5))
	require.NoError(t, e.Step(1))

	e.Stop()
	e.Stop()

	assert.Equal(t, 1, logic.resetCalled)
	assert.Equal(t, state.StateStopped, e.State())
}

func TestEngine_WithSceneManager(t *testing.T) {
	g := &countingGame{}
	e := newTestEngine(t, scene.NewSimpleManager(g), testConfig(60, 60, 5))

	require.NoError(t, e.Step(5))

	assert.Equal(t, 1, g.init)
	assert.Equal(t, 5, g.fixed)
	assert.Equal(t, 5, g.update)
}

type countingGame struct {
	init, fixed, update int
}

func (g *countingGame) Init(*scene.Context) error {
	g.init++
	return nil
}

func (g *countingGame) FixedUpdate(*scene.Context) { g.fixed++ }
func (g *countingGame) Update(*scene.Context)      { g.update++ }
