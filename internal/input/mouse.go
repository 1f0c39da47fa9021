package input

import "github.com/younwookim/engine2d/internal/geom"

// Mouse is the pollable mouse state for the current tick.
type Mouse struct {
	x, y         int
	prevX, prevY int
	seen         bool

	down     map[MouseButton]struct{}
	pressed  map[MouseButton]struct{}
	released map[MouseButton]struct{}

	wheelX, wheelY float64
}

// NewMouse creates a mouse with no buttons held.
func NewMouse() *Mouse {
	return &Mouse{
		down:     make(map[MouseButton]struct{}),
		pressed:  make(map[MouseButton]struct{}),
		released: make(map[MouseButton]struct{}),
	}
}

// Apply advances the mouse by one tick.
func (m *Mouse) Apply(f Frame) {
	if m.seen {
		m.prevX, m.prevY = m.x, m.y
	} else {
		m.prevX, m.prevY = f.Mouse.X, f.Mouse.Y
		m.seen = true
	}
	m.x, m.y = f.Mouse.X, f.Mouse.Y

	clear(m.pressed)
	clear(m.released)
	for _, b := range f.Mouse.Pressed {
		m.pressed[b] = struct{}{}
		m.down[b] = struct{}{}
	}
	for _, b := range f.Mouse.Released {
		m.released[b] = struct{}{}
		delete(m.down, b)
	}
	m.wheelX, m.wheelY = f.Mouse.WheelX, f.Mouse.WheelY
}

// Position returns the cursor position in canvas pixels.
func (m *Mouse) Position() (int, int) { return m.x, m.y }

// Pointf returns the cursor position as a point.
func (m *Mouse) Pointf() geom.Pointf { return geom.Pt(float64(m.x), float64(m.y)) }

// Delta returns how far the cursor moved this tick.
func (m *Mouse) Delta() (int, int) { return m.x - m.prevX, m.y - m.prevY }

// Moved reports whether the cursor moved this tick.
func (m *Mouse) Moved() bool { return m.x != m.prevX || m.y != m.prevY }

// IsButtonDown reports whether b is held.
func (m *Mouse) IsButtonDown(b MouseButton) bool {
	_, ok := m.down[b]
	return ok
}

// IsButtonRecentlyPressed reports whether b went down this tick.
func (m *Mouse) IsButtonRecentlyPressed(b MouseButton) bool {
	_, ok := m.pressed[b]
	return ok
}

// IsButtonRecentlyReleased reports whether b went up this tick.
func (m *Mouse) IsButtonRecentlyReleased(b MouseButton) bool {
	_, ok := m.released[b]
	return ok
}

// AnyButtonDown reports whether at least one button is held.
func (m *Mouse) AnyButtonDown() bool { return len(m.down) > 0 }

// Wheel returns this tick's wheel movement.
func (m *Mouse) Wheel() (float64, float64) { return m.wheelX, m.wheelY }

// Reset forgets all mouse state.
func (m *Mouse) Reset() {
	*m = *NewMouse()
}
