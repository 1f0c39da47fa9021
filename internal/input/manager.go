package input

import (
	"reflect"
	"slices"
)

// Manager holds a scene's keyboard and mouse listeners and delivers each
// frame's events to them.
type Manager struct {
	keyboard []KeyboardActionListener
	mouse    []MouseActionListener
}

// NewManager creates a manager with no listeners.
func NewManager() *Manager {
	return &Manager{}
}

// AddKeyboardActionListener registers l. Listeners are called in
// registration order.
func (m *Manager) AddKeyboardActionListener(l KeyboardActionListener) {
	m.keyboard = append(m.keyboard, l)
}

// RemoveKeyboardActionListener unregisters l. It reports whether l was
// registered. Listeners are matched by identity, so register pointers if
// you intend to remove them; an uncomparable value never matches.
func (m *Manager) RemoveKeyboardActionListener(l KeyboardActionListener) bool {
	idx := slices.IndexFunc(m.keyboard, func(x KeyboardActionListener) bool { return same(x, l) })
	if idx < 0 {
		return false
	}
	m.keyboard = slices.Delete(m.keyboard, idx, idx+1)
	return true
}

// AddMouseActionListener registers l.
func (m *Manager) AddMouseActionListener(l MouseActionListener) {
	m.mouse = append(m.mouse, l)
}

// RemoveMouseActionListener unregisters l. It reports whether l was
// registered. Matching follows RemoveKeyboardActionListener.
func (m *Manager) RemoveMouseActionListener(l MouseActionListener) bool {
	idx := slices.IndexFunc(m.mouse, func(x MouseActionListener) bool { return same(x, l) })
	if idx < 0 {
		return false
	}
	m.mouse = slices.Delete(m.mouse, idx, idx+1)
	return true
}

// KeyboardListenerCount returns the number of keyboard listeners.
func (m *Manager) KeyboardListenerCount() int { return len(m.keyboard) }

// MouseListenerCount returns the number of mouse listeners.
func (m *Manager) MouseListenerCount() int { return len(m.mouse) }

// Clear drops every listener.
func (m *Manager) Clear() {
	m.keyboard = nil
	m.mouse = nil
}

// Process delivers the frame's events and then, if any key is held, calls
// OnKeyDown once on every keyboard listener. kb and mouse must already
// have the frame applied. Listeners added or removed while processing
// take effect next frame.
func (m *Manager) Process(kb *Keyboard, mouse *Mouse, f Frame) {
	keyboard := slices.Clone(m.keyboard)
	mice := slices.Clone(m.mouse)

	for _, ev := range Events(f, mouse) {
		switch ev.Kind() {
		case KeyPressed, KeyReleased, KeyTyped:
			for _, l := range keyboard {
				if ev.Consumed() {
					break
				}
				DispatchKeyboardEvent(l, ev)
			}
		default:
			for _, l := range mice {
				if ev.Consumed() {
					break
				}
				DispatchMouseEvent(l, ev)
			}
		}
	}

	if kb == nil || !kb.AnyKeyDown() {
		return
	}
	down := kb.KeysDown()
	for _, l := range keyboard {
		l.OnKeyDown(slices.Clone(down))
	}
}

// same compares two listeners without panicking on uncomparable dynamic
// types such as structs holding funcs or slices.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
