package scene

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/input"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

// Canvas is the logical drawing area.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color
}

// Size returns the canvas size as a point.
func (c Canvas) Size() geom.Pointf {
	return geom.Pt(float64(c.Width), float64(c.Height))
}

// Center returns the middle of the canvas.
func (c Canvas) Center() geom.Pointf {
	return c.Size().Scale(0.5)
}

// Rect returns the canvas area.
func (c Canvas) Rect() geom.Rect {
	return geom.Rect{W: float64(c.Width), H: float64(c.Height)}
}

// Loop is the part of the engine scenes may control.
type Loop interface {
	Pause()
	Resume()
	TogglePause()
	Paused() bool
}

// Context is the handle passed to scene hooks. The engine owns one and
// reuses it every frame; Input and Drawables always point at the scene
// being called.
type Context struct {
	Canvas   Canvas
	Keyboard *input.Keyboard
	Mouse    *input.Mouse
	Log      *log.Logger

	// Logic is the engine's logic manager. Scenes is set when it is a
	// scene Manager.
	Logic  LogicManager
	Scenes *Manager

	// Loop controls the running engine. It is nil in tests that drive a
	// manager directly.
	Loop Loop

	Input     *input.Manager
	Drawables *scenegraph.Manager

	// Frame counts engine ticks since start.
	Frame uint64
	// Dt is the fixed step in seconds.
	Dt float64

	exit bool
}

// NewContext creates a context with fresh keyboard and mouse state. A nil
// logger discards output.
func NewContext(canvas Canvas, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Canvas:   canvas,
		Keyboard: input.NewKeyboard(),
		Mouse:    input.NewMouse(),
		Log:      logger,
		Dt:       1.0 / 60.0,
	}
}

// Exit asks the engine to stop after the current frame.
func (c *Context) Exit() { c.exit = true }

// ExitRequested reports whether Exit was called.
func (c *Context) ExitRequested() bool { return c.exit }

func (c *Context) bind(s Scene) {
	if s == nil {
		c.Input, c.Drawables = nil, nil
		return
	}
	b := s.base()
	c.Input, c.Drawables = b.input, b.drawables
}
