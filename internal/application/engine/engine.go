// Package engine provides the main game loop that drives a logic manager
// at a fixed update rate on top of Ebitengine.
package engine

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/younwookim/engine2d/internal/application/scene"
	"github.com/younwookim/engine2d/internal/application/state"
	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/input"
)

var (
	// ErrNotRunning is returned by Update before Init or after exit.
	ErrNotRunning = errors.New("engine: not running")
	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("engine: already initialized")
)

// stepEpsilon absorbs float error when the accumulator lands on a step.
const stepEpsilon = 1e-9

// FrameRecorder receives every polled input frame.
type FrameRecorder interface {
	RecordFrame(f input.Frame)
}

// Stats counts what the loop has done since start.
type Stats struct {
	Frames       uint64
	FixedUpdates uint64
	DroppedSteps uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the live Ebitengine input with src.
func WithSource(src input.Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithLogger sets the logger handed to scenes.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRecorder records every input frame to r.
func WithRecorder(r FrameRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// Engine implements ebiten.Game and runs the fixed-step loop.
type Engine struct {
	cfg      config.EngineConfig
	logic    scene.LogicManager
	source   input.Source
	recorder FrameRecorder
	log      *log.Logger
	ctx      *scene.Context
	state    state.EngineState

	tickDt  float64
	fixedDt float64
	acc     float64
	stats   Stats
}

// New creates an engine for logic. cfg is validated; the scene manager is
// not initialised until Init or Run.
func New(cfg config.EngineConfig, logic scene.LogicManager, opts ...Option) (*Engine, error) {
	if logic == nil {
		return nil, errors.New("engine: nil logic manager")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine: config")
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, errors.Wrap(err, "engine: config")
	}

	e := &Engine{
		cfg:     cfg,
		logic:   logic,
		tickDt:  1.0 / float64(cfg.Loop.TPS),
		fixedDt: 1.0 / float64(cfg.Loop.UPS),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = input.NewEbitenSource()
	}
	if e.log == nil {
		e.log = log.Default()
	}

	e.ctx = scene.NewContext(scene.Canvas{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: bg,
	}, e.log)
	e.ctx.Logic = logic
	e.ctx.Loop = e
	e.ctx.Dt = e.fixedDt
	return e, nil
}

// Init initialises the logic manager. Run calls it when needed.
func (e *Engine) Init() error {
	if e.state != state.StateCreated {
		return ErrAlreadyInitialized
	}
	if err := e.logic.Init(e.ctx); err != nil {
		return errors.Wrap(err, "engine: init")
	}
	e.setState(state.StateInitialized)
	e.log.Info("engine initialized",
		"canvas", [2]int{e.cfg.Canvas.Width, e.cfg.Canvas.Height},
		"tps", e.cfg.Loop.TPS, "ups", e.cfg.Loop.UPS)
	return nil
}

// Run opens the window and blocks until the game exits. An exit requested
// by a scene is not an error.
func (e *Engine) Run() error {
	if e.state == state.StateCreated {
		if err := e.Init(); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(e.cfg.WindowSize())
	ebiten.SetWindowTitle(e.cfg.Window.Title)
	if e.cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(e.cfg.Loop.TPS)

	err := ebiten.RunGame(e)
	e.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update runs one tick. Implements ebiten.Game interface.
func (e *Engine) Update() error {
	if e.state == state.StateInitialized {
		e.setState(state.StateRunning)
	}
	if !e.state.Ticking() {
		return ErrNotRunning
	}

	if err := e.logic.BeginFrame(e.ctx); err != nil {
		return errors.Wrapf(err, "engine: frame %d", e.ctx.Frame)
	}

	f := e.source.Poll()
	if e.recorder != nil {
		e.recorder.RecordFrame(f)
	}
	e.ctx.Keyboard.Apply(f)
	e.ctx.Mouse.Apply(f)
	e.logic.ProcessInput(e.ctx, f)

	if e.state != state.StatePaused {
		e.fixedSteps()
		e.logic.Update(e.ctx)
	}

	e.ctx.Frame++
	e.stats.Frames++

	if e.ctx.ExitRequested() {
		e.setState(state.StateExiting)
		return ebiten.Termination
	}
	return nil
}

// fixedSteps runs FixedUpdate for the time accumulated since the last
// tick, at most MaxFixedSteps times. Time beyond that is dropped.
func (e *Engine) fixedSteps() {
	e.acc += e.tickDt
	steps := 0
	for e.acc+stepEpsilon >= e.fixedDt {
		if steps == e.cfg.Loop.MaxFixedSteps {
			dropped := uint64(math.Floor((e.acc + stepEpsilon) / e.fixedDt))
			e.stats.DroppedSteps += dropped
			e.acc = 0
			e.log.Debug("fixed steps dropped", "count", dropped, "frame", e.ctx.Frame)
			return
		}
		e.logic.FixedUpdate(e.ctx)
		e.acc -= e.fixedDt
		steps++
		e.stats.FixedUpdates++
	}
	if e.acc < 0 {
		e.acc = 0
	}
}

// Draw renders the current scene. Implements ebiten.Game interface.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.logic.Render(e.ctx, screen)
}

// Layout returns the logical canvas size. Implements ebiten.Game interface.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Canvas.Width, e.cfg.Canvas.Height
}

// Step runs n ticks without a window. It stops early on exit, returning
// nil, or on error.
func (e *Engine) Step(n int) error {
	if e.state == state.StateCreated {
		if err := e.Init(); err != nil {
			return err
		}
	}
	for range n {
		if err := e.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Pause stops fixed and variable updates. Input is still processed so a
// listener can resume the game.
func (e *Engine) Pause() {
	if e.state == state.StateRunning {
		e.setState(state.StatePaused)
	}
}

// Resume undoes Pause.
func (e *Engine) Resume() {
	if e.state == state.StatePaused {
		e.setState(state.StateRunning)
	}
}

// TogglePause pauses a running engine or resumes a paused one.
func (e *Engine) TogglePause() {
	if e.state == state.StatePaused {
		e.Resume()
	} else {
		e.Pause()
	}
}

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool { return e.state == state.StatePaused }

// Exit asks the loop to stop after the current tick.
func (e *Engine) Exit() { e.ctx.Exit() }

// Stop unloads the logic manager. It is safe to call more than once.
func (e *Engine) Stop() {
	if e.state == state.StateStopped {
		return
	}
	if e.state != state.StateCreated {
		e.logic.Reset(e.ctx)
	}
	e.setState(state.StateStopped)
	e.log.Info("engine stopped", "frames", e.stats.Frames)
}

// State returns the lifecycle state.
func (e *Engine) State() state.EngineState { return e.state }

// Stats returns loop counters.
func (e *Engine) Stats() Stats { return e.stats }

// Context returns the context passed to scenes.
func (e *Engine) Context() *scene.Context { return e.ctx }

// FixedDt returns the fixed step in seconds.
func (e *Engine) FixedDt() float64 { return e.fixedDt }

func (e *Engine) setState(next state.EngineState) {
	if !e.state.CanTransition(next) {
		e.log.Warn("ignored state change", "from", e.state, "to", next)
		return
	}
	e.log.Debug("state changed", "from", e.state, "to", next)
	e.state = next
}
