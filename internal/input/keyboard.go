package input

import (
	"maps"
	"slices"
)

// Keyboard is the pollable keyboard state for the current tick.
type Keyboard struct {
	down     map[Key]struct{}
	pressed  map[Key]struct{}
	released map[Key]struct{}
	last     Key
	hasLast  bool
}

// NewKeyboard creates a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		down:     make(map[Key]struct{}),
		pressed:  make(map[Key]struct{}),
		released: make(map[Key]struct{}),
	}
}

// Apply advances the keyboard by one tick. The recently pressed and
// released sets are replaced by the frame's; held keys are updated. A key
// pressed and released in the same frame ends up recently pressed and
// recently released but not held.
func (k *Keyboard) Apply(f Frame) {
	clear(k.pressed)
	clear(k.released)

	for _, key := range f.Pressed {
		k.pressed[key] = struct{}{}
		k.down[key] = struct{}{}
		k.last = key
		k.hasLast = true
	}
	for _, key := range f.Released {
		k.released[key] = struct{}{}
		delete(k.down, key)
	}
}

// IsKeyDown reports whether key is held.
func (k *Keyboard) IsKeyDown(key Key) bool {
	_, ok := k.down[key]
	return ok
}

// IsKeyRecentlyPressed reports whether key went down this tick.
func (k *Keyboard) IsKeyRecentlyPressed(key Key) bool {
	_, ok := k.pressed[key]
	return ok
}

// IsKeyRecentlyReleased reports whether key went up this tick.
func (k *Keyboard) IsKeyRecentlyReleased(key Key) bool {
	_, ok := k.released[key]
	return ok
}

// LastKeyPressed returns the name of the most recently pressed key, or ""
// if no key has been pressed yet.
func (k *Keyboard) LastKeyPressed() string {
	if !k.hasLast {
		return ""
	}
	return k.last.String()
}

// KeysDown returns the held keys in ascending key order.
func (k *Keyboard) KeysDown() []Key {
	return slices.Sorted(maps.Keys(k.down))
}

// AnyKeyDown reports whether at least one key is held.
func (k *Keyboard) AnyKeyDown() bool {
	return len(k.down) > 0
}

// Reset forgets all key state.
func (k *Keyboard) Reset() {
	clear(k.down)
	clear(k.pressed)
	clear(k.released)
	k.last = 0
	k.hasLast = false
}
