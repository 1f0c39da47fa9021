package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/younwookim/engine2d/internal/input"
)

var (
	// ErrSceneExists is returned when a scene name is registered twice.
	ErrSceneExists = errors.New("scene: name already registered")
	// ErrSceneNotFound is returned for names that were never registered.
	ErrSceneNotFound = errors.New("scene: not found")
	// ErrNoScenes is returned by Init when nothing was registered.
	ErrNoScenes = errors.New("scene: no scenes registered")
	// ErrInitialized is returned by SetCurrent after Init.
	ErrInitialized = errors.New("scene: manager already initialized")
)

// Manager is a LogicManager made of named scenes, one of which is current.
type Manager struct {
	scenes  map[string]Scene
	order   []string
	current Scene

	pending    string
	hasPending bool

	initialized bool
}

// NewManager creates a manager with the given scenes registered. The first
// scene becomes current unless SetCurrent picks another.
func NewManager(scenes ...Scene) (*Manager, error) {
	m := &Manager{scenes: make(map[string]Scene)}
	for _, s := range scenes {
		if err := m.AddScene(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddScene registers s under its name.
func (m *Manager) AddScene(s Scene) error {
	if _, ok := m.scenes[s.Name()]; ok {
		return errors.Wrapf(ErrSceneExists, "add %q", s.Name())
	}
	m.scenes[s.Name()] = s
	m.order = append(m.order, s.Name())
	if m.current == nil && !m.initialized {
		m.current = s
	}
	return nil
}

// Scene returns the scene registered as name.
func (m *Manager) Scene(name string) (Scene, bool) {
	s, ok := m.scenes[name]
	return s, ok
}

// Scenes returns the registered scenes in registration order.
func (m *Manager) Scenes() []Scene {
	out := make([]Scene, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.scenes[name])
	}
	return out
}

// Current returns the current scene, nil if none is registered.
func (m *Manager) Current() Scene { return m.current }

// SetCurrent chooses the scene Init will load.
func (m *Manager) SetCurrent(name string) error {
	if m.initialized {
		return errors.Wrapf(ErrInitialized, "set current %q", name)
	}
	s, ok := m.scenes[name]
	if !ok {
		return errors.Wrapf(ErrSceneNotFound, "set current %q", name)
	}
	m.current = s
	return nil
}

// SwitchScenes makes name current at the start of the next frame. A later
// call in the same frame replaces the request.
func (m *Manager) SwitchScenes(name string) error {
	if _, ok := m.scenes[name]; !ok {
		return errors.Wrapf(ErrSceneNotFound, "switch to %q", name)
	}
	m.pending = name
	m.hasPending = true
	return nil
}

// SwitchPending reports whether a switch will happen next frame.
func (m *Manager) SwitchPending() bool { return m.hasPending }

// Init implements LogicManager by loading the current scene.
func (m *Manager) Init(ctx *Context) error {
	if m.current == nil {
		return ErrNoScenes
	}
	ctx.Logic = m
	ctx.Scenes = m
	m.initialized = true
	return m.enter(ctx, m.current)
}

// BeginFrame implements LogicManager. The previous scene is unloaded
// before the next one loads.
func (m *Manager) BeginFrame(ctx *Context) error {
	if !m.hasPending {
		return nil
	}
	next := m.scenes[m.pending]
	m.pending, m.hasPending = "", false

	prev := m.current
	if prev != nil && prev.base().loaded {
		m.unload(ctx, prev)
	}
	m.current = next
	ctx.Log.Info("scene switched", "from", nameOf(prev), "to", next.Name())
	return m.enter(ctx, next)
}

func (m *Manager) enter(ctx *Context, s Scene) error {
	if !s.base().loaded {
		if err := m.load(ctx, s); err != nil {
			return err
		}
	}
	ctx.bind(s)
	s.base().drawables.InitBehaviors()
	return nil
}

// LoadScene loads name without making it current.
func (m *Manager) LoadScene(ctx *Context, name string) error {
	s, ok := m.scenes[name]
	if !ok {
		return errors.Wrapf(ErrSceneNotFound, "load %q", name)
	}
	if s.base().loaded {
		return nil
	}
	err := m.load(ctx, s)
	ctx.bind(m.current)
	return err
}

// UnloadScene releases name's objects and listeners.
func (m *Manager) UnloadScene(ctx *Context, name string) error {
	s, ok := m.scenes[name]
	if !ok {
		return errors.Wrapf(ErrSceneNotFound, "unload %q", name)
	}
	if s.base().loaded {
		m.unload(ctx, s)
		ctx.bind(m.current)
	}
	return nil
}

func (m *Manager) load(ctx *Context, s Scene) error {
	b := s.base()
	ctx.bind(s)
	if err := s.Load(ctx); err != nil {
		b.drawables.Clear()
		b.input.Clear()
		return errors.Wrapf(err, "load scene %q", s.Name())
	}
	b.loaded = true
	ctx.Log.Debug("scene loaded", "scene", s.Name(), "objects", b.drawables.Len())
	return nil
}

func (m *Manager) unload(ctx *Context, s Scene) {
	b := s.base()
	ctx.bind(s)
	s.Unload(ctx)
	b.drawables.Clear()
	b.input.Clear()
	b.loaded = false
	ctx.Log.Debug("scene unloaded", "scene", s.Name())
}

// ProcessInput implements LogicManager.
func (m *Manager) ProcessInput(ctx *Context, f input.Frame) {
	if m.current == nil {
		return
	}
	ctx.bind(m.current)
	m.current.base().input.Process(ctx.Keyboard, ctx.Mouse, f)
}

// FixedUpdate implements LogicManager: the scene hook, then behaviors.
func (m *Manager) FixedUpdate(ctx *Context) {
	if m.current == nil {
		return
	}
	ctx.bind(m.current)
	m.current.FixedUpdate(ctx)
	m.current.base().drawables.FixedUpdateBehaviors()
}

// Update implements LogicManager: the scene hook, then behaviors.
func (m *Manager) Update(ctx *Context) {
	if m.current == nil {
		return
	}
	ctx.bind(m.current)
	m.current.Update(ctx)
	m.current.base().drawables.UpdateBehaviors()
}

// Render implements LogicManager.
func (m *Manager) Render(ctx *Context, dst *ebiten.Image) {
	if ctx.Canvas.Background != nil {
		dst.Fill(ctx.Canvas.Background)
	}
	if m.current == nil {
		return
	}
	ctx.bind(m.current)
	m.current.base().drawables.Draw(dst)
	if d, ok := m.current.(Drawer); ok {
		d.Draw(ctx, dst)
	}
}

// Reset implements LogicManager. Every loaded scene is unloaded and the
// first registered scene becomes current again.
func (m *Manager) Reset(ctx *Context) {
	for _, s := range m.Scenes() {
		if s.base().loaded {
			m.unload(ctx, s)
		}
	}
	m.pending, m.hasPending = "", false
	m.initialized = false
	m.current = nil
	if len(m.order) > 0 {
		m.current = m.scenes[m.order[0]]
	}
	ctx.bind(nil)
}

func nameOf(s Scene) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
