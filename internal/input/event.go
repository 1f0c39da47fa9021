package input

// EventKind identifies what an Event reports.
type EventKind int

const (
	KeyPressed EventKind = iota
	KeyReleased
	KeyTyped
	MousePressed
	MouseReleased
	MouseClicked
	MouseMoved
	MouseDragged
	MouseWheelScrolled
)

// String returns the name of the kind.
func (k EventKind) String() string {
	switch k {
	case KeyPressed:
		return "KeyPressed"
	case KeyReleased:
		return "KeyReleased"
	case KeyTyped:
		return "KeyTyped"
	case MousePressed:
		return "MousePressed"
	case MouseReleased:
		return "MouseReleased"
	case MouseClicked:
		return "MouseClicked"
	case MouseMoved:
		return "MouseMoved"
	case MouseDragged:
		return "MouseDragged"
	case MouseWheelScrolled:
		return "MouseWheelScrolled"
	default:
		return "Unknown"
	}
}

// Event is an input event delivered to listeners. Once consumed, later
// listeners do not see it.
type Event interface {
	Kind() EventKind
	Consume()
	Consumed() bool
}

type consumable struct {
	consumed bool
}

// Consume marks the event as handled.
func (c *consumable) Consume() { c.consumed = true }

// Consumed reports whether the event was handled.
func (c *consumable) Consumed() bool { return c.consumed }

// KeyboardStateEvent reports a key going down (KeyPressed) or up
// (KeyReleased).
type KeyboardStateEvent struct {
	consumable
	kind EventKind
	Key  Key
}

// NewKeyboardStateEvent creates a press or release event.
func NewKeyboardStateEvent(kind EventKind, key Key) *KeyboardStateEvent {
	return &KeyboardStateEvent{kind: kind, Key: key}
}

func (e *KeyboardStateEvent) Kind() EventKind { return e.kind }

// KeyName returns the printable key name.
func (e *KeyboardStateEvent) KeyName() string { return e.Key.String() }

// KeyboardTypedEvent reports a character produced by the keyboard,
// including auto-repeat while a key is held. Ebitengine reports typed
// characters without their key, so Key is derived from Char and is
// KeyUnknown for characters outside letters, digits and space.
type KeyboardTypedEvent struct {
	consumable
	Key  Key
	Char rune
}

// NewKeyboardTypedEvent creates a typed event for ch.
func NewKeyboardTypedEvent(ch rune) *KeyboardTypedEvent {
	return &KeyboardTypedEvent{Key: KeyForRune(ch), Char: ch}
}

func (e *KeyboardTypedEvent) Kind() EventKind { return KeyTyped }

// KeyName returns the key name, or the character itself when the key is
// unknown.
func (e *KeyboardTypedEvent) KeyName() string {
	if e.Key == KeyUnknown {
		return string(e.Char)
	}
	return e.Key.String()
}

// MouseButtonEvent reports a button press, release or click at X, Y.
type MouseButtonEvent struct {
	consumable
	kind   EventKind
	Button MouseButton
	X, Y   int
}

func (e *MouseButtonEvent) Kind() EventKind { return e.kind }

// MouseMotionEvent reports cursor movement. Kind is MouseDragged while any
// button is held.
type MouseMotionEvent struct {
	consumable
	kind   EventKind
	X, Y   int
	DX, DY int
}

func (e *MouseMotionEvent) Kind() EventKind { return e.kind }

// MouseWheelEvent reports wheel movement.
type MouseWheelEvent struct {
	consumable
	X, Y   int
	DX, DY float64
}

func (e *MouseWheelEvent) Kind() EventKind { return MouseWheelScrolled }

// Events builds the events of one frame in delivery order: key presses,
// key releases, typed characters, mouse presses, releases, clicks, motion
// and wheel. mouse must already have the frame applied.
func Events(f Frame, mouse *Mouse) []Event {
	var out []Event
	for _, k := range f.Pressed {
		out = append(out, NewKeyboardStateEvent(KeyPressed, k))
	}
	for _, k := range f.Released {
		out = append(out, NewKeyboardStateEvent(KeyReleased, k))
	}
	for _, ch := range f.Typed {
		out = append(out, NewKeyboardTypedEvent(ch))
	}

	x, y := f.Mouse.X, f.Mouse.Y
	for _, b := range f.Mouse.Pressed {
		out = append(out, &MouseButtonEvent{kind: MousePressed, Button: b, X: x, Y: y})
	}
	for _, b := range f.Mouse.Released {
		out = append(out, &MouseButtonEvent{kind: MouseReleased, Button: b, X: x, Y: y})
	}
	for _, b := range f.Mouse.Released {
		out = append(out, &MouseButtonEvent{kind: MouseClicked, Button: b, X: x, Y: y})
	}
	if mouse != nil && mouse.Moved() {
		dx, dy := mouse.Delta()
		kind := MouseMoved
		if mouse.AnyButtonDown() {
			kind = MouseDragged
		}
		out = append(out, &MouseMotionEvent{kind: kind, X: x, Y: y, DX: dx, DY: dy})
	}
	if f.Mouse.WheelX != 0 || f.Mouse.WheelY != 0 {
		out = append(out, &MouseWheelEvent{X: x, Y: y, DX: f.Mouse.WheelX, DY: f.Mouse.WheelY})
	}
	return out
}
