// Package replay records the input frames of a session to JSON and plays
// them back as an input source.
package replay

import "github.com/younwookim/engine2d/internal/input"

// Version is written to every replay file.
const Version = "2.0"

// FrameRecord records input for a single frame
type FrameRecord struct {
	F  int                 `json:"f"`            // Frame number
	P  []input.Key         `json:"p,omitempty"`  // Keys pressed
	R  []input.Key         `json:"r,omitempty"`  // Keys released
	T  string              `json:"t,omitempty"`  // Typed characters
	MX int                 `json:"mx"`           // MouseX
	MY int                 `json:"my"`           // MouseY
	MP []input.MouseButton `json:"mp,omitempty"` // Buttons pressed
	MR []input.MouseButton `json:"mr,omitempty"` // Buttons released
	WX float64             `json:"wx,omitempty"` // Wheel X
	WY float64             `json:"wy,omitempty"` // Wheel Y
}

// NewFrameRecord converts the n-th frame of a session.
func NewFrameRecord(n int, f input.Frame) FrameRecord {
	return FrameRecord{
		F:  n,
		P:  f.Pressed,
		R:  f.Released,
		T:  string(f.Typed),
		MX: f.Mouse.X,
		MY: f.Mouse.Y,
		MP: f.Mouse.Pressed,
		MR: f.Mouse.Released,
		WX: f.Mouse.WheelX,
		WY: f.Mouse.WheelY,
	}
}

// Frame converts the record back to an input frame.
func (r FrameRecord) Frame() input.Frame {
	f := input.Frame{
		Pressed:  r.P,
		Released: r.R,
		Mouse: input.MouseFrame{
			X:        r.MX,
			Y:        r.MY,
			Pressed:  r.MP,
			Released: r.MR,
			WheelX:   r.WX,
			WheelY:   r.WY,
		},
	}
	if r.T != "" {
		f.Typed = []rune(r.T)
	}
	return f.Clone()
}

// Data contains all data needed to replay a game session
type Data struct {
	Version   string        `json:"version"`
	Game      string        `json:"game"`
	Seed      uint64        `json:"seed"`
	StartTime string        `json:"startTime"`
	Frames    []FrameRecord `json:"frames"`
}
