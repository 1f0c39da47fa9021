package input

// KeyboardActionListener receives keyboard events for a scene.
//
// Embed NopKeyboardListener to implement only the callbacks you need, or
// use KeyboardFuncs.
type KeyboardActionListener interface {
	// OnKeyDown is called once per update while at least one key is held.
	OnKeyDown(keysDown []Key)
	// OnKeyRecentlyPressed is called when a key goes down.
	OnKeyRecentlyPressed(ev *KeyboardStateEvent)
	// OnKeyReleased is called when a key goes up.
	OnKeyReleased(ev *KeyboardStateEvent)
	// OnKeyTyped is called for every character typed, including repeats.
	OnKeyTyped(ev *KeyboardTypedEvent)
}

// DispatchKeyboardEvent routes ev to the matching callback of l.
// Consumed events and non-keyboard events are ignored.
func DispatchKeyboardEvent(l KeyboardActionListener, ev Event) {
	if ev.Consumed() {
		return
	}

	switch ev.Kind() {
	case KeyPressed:
		if e, ok := ev.(*KeyboardStateEvent); ok {
			l.OnKeyRecentlyPressed(e)
		}
	case KeyReleased:
		if e, ok := ev.(*KeyboardStateEvent); ok {
			l.OnKeyReleased(e)
		}
	case KeyTyped:
		if e, ok := ev.(*KeyboardTypedEvent); ok {
			l.OnKeyTyped(e)
		}
	}
}

// NopKeyboardListener implements KeyboardActionListener with no-ops.
type NopKeyboardListener struct{}

func (NopKeyboardListener) OnKeyDown([]Key)                          {}
func (NopKeyboardListener) OnKeyRecentlyPressed(*KeyboardStateEvent) {}
func (NopKeyboardListener) OnKeyReleased(*KeyboardStateEvent)        {}
func (NopKeyboardListener) OnKeyTyped(*KeyboardTypedEvent)           {}

// KeyboardFuncs adapts functions to KeyboardActionListener. Nil fields
// are no-ops.
type KeyboardFuncs struct {
	KeyDown            func(keysDown []Key)
	KeyRecentlyPressed func(ev *KeyboardStateEvent)
	KeyReleased        func(ev *KeyboardStateEvent)
	KeyTyped           func(ev *KeyboardTypedEvent)
}

func (f *KeyboardFuncs) OnKeyDown(keysDown []Key) {
	if f.KeyDown != nil {
		f.KeyDown(keysDown)
	}
}

func (f *KeyboardFuncs) OnKeyRecentlyPressed(ev *KeyboardStateEvent) {
	if f.KeyRecentlyPressed != nil {
		f.KeyRecentlyPressed(ev)
	}
}

func (f *KeyboardFuncs) OnKeyReleased(ev *KeyboardStateEvent) {
	if f.KeyReleased != nil {
		f.KeyReleased(ev)
	}
}

func (f *KeyboardFuncs) OnKeyTyped(ev *KeyboardTypedEvent) {
	if f.KeyTyped != nil {
		f.KeyTyped(ev)
	}
}

// MouseActionListener receives mouse events for a scene.
type MouseActionListener interface {
	OnMousePressed(ev *MouseButtonEvent)
	OnMouseReleased(ev *MouseButtonEvent)
	OnMouseClicked(ev *MouseButtonEvent)
	OnMouseMoved(ev *MouseMotionEvent)
	OnMouseDragged(ev *MouseMotionEvent)
	OnMouseWheelScrolled(ev *MouseWheelEvent)
}

// DispatchMouseEvent routes ev to the matching callback of l.
// Consumed events and non-mouse events are ignored.
func DispatchMouseEvent(l MouseActionListener, ev Event) {
	if ev.Consumed() {
		return
	}

	switch e := ev.(type) {
	case *MouseButtonEvent:
		switch e.kind {
		case MousePressed:
			l.OnMousePressed(e)
		case MouseReleased:
			l.OnMouseReleased(e)
		case MouseClicked:
			l.OnMouseClicked(e)
		}
	case *MouseMotionEvent:
		if e.kind == MouseDragged {
			l.OnMouseDragged(e)
		} else {
			l.OnMouseMoved(e)
		}
	case *MouseWheelEvent:
		l.OnMouseWheelScrolled(e)
	}
}

// NopMouseListener implements MouseActionListener with no-ops.
type NopMouseListener struct{}

func (NopMouseListener) OnMousePressed(*MouseButtonEvent)      {}
func (NopMouseListener) OnMouseReleased(*MouseButtonEvent)     {}
func (NopMouseListener) OnMouseClicked(*MouseButtonEvent)      {}
func (NopMouseListener) OnMouseMoved(*MouseMotionEvent)        {}
func (NopMouseListener) OnMouseDragged(*MouseMotionEvent)      {}
func (NopMouseListener) OnMouseWheelScrolled(*MouseWheelEvent) {}
