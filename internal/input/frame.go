package input

import "slices"

// MouseFrame is the mouse state read during one tick.
type MouseFrame struct {
	X, Y     int
	Pressed  []MouseButton
	Released []MouseButton
	WheelX   float64
	WheelY   float64
}

// Frame is everything that happened on the input devices during one tick.
type Frame struct {
	Pressed  []Key
	Released []Key
	Typed    []rune
	Mouse    MouseFrame
}

// Empty reports whether the frame carries no key, character, button or
// wheel activity. Cursor position is not considered.
func (f Frame) Empty() bool {
	return len(f.Pressed) == 0 && len(f.Released) == 0 && len(f.Typed) == 0 &&
		len(f.Mouse.Pressed) == 0 && len(f.Mouse.Released) == 0 &&
		f.Mouse.WheelX == 0 && f.Mouse.WheelY == 0
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	return Frame{
		Pressed:  slices.Clone(f.Pressed),
		Released: slices.Clone(f.Released),
		Typed:    slices.Clone(f.Typed),
		Mouse: MouseFrame{
			X:        f.Mouse.X,
			Y:        f.Mouse.Y,
			Pressed:  slices.Clone(f.Mouse.Pressed),
			Released: slices.Clone(f.Mouse.Released),
			WheelX:   f.Mouse.WheelX,
			WheelY:   f.Mouse.WheelY,
		},
	}
}
