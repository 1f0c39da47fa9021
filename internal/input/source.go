package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source produces one Frame per tick.
type Source interface {
	Poll() Frame
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenSource reads the live keyboard and mouse through Ebitengine.
// Poll must be called from the game's Update.
type EbitenSource struct {
	keys  []ebiten.Key
	chars []rune
}

// NewEbitenSource creates a live input source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll implements Source.
func (s *EbitenSource) Poll() Frame {
	var f Frame

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		f.Pressed = append(f.Pressed, Key(k))
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		f.Released = append(f.Released, Key(k))
	}
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	if len(s.chars) > 0 {
		f.Typed = append([]rune(nil), s.chars...)
	}

	f.Mouse.X, f.Mouse.Y = ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			f.Mouse.Pressed = append(f.Mouse.Pressed, MouseButton(b))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			f.Mouse.Released = append(f.Mouse.Released, MouseButton(b))
		}
	}
	f.Mouse.WheelX, f.Mouse.WheelY = ebiten.Wheel()

	return f
}

// QueueSource plays back a fixed list of frames, then returns frames with
// the last known cursor position and no activity.
type QueueSource struct {
	frames []Frame
	next   int
	lastX  int
	lastY  int
}

// NewQueueSource creates a source that yields frames in order.
func NewQueueSource(frames ...Frame) *QueueSource {
	return &QueueSource{frames: frames}
}

// Push appends frames to the queue.
func (q *QueueSource) Push(frames ...Frame) {
	q.frames = append(q.frames, frames...)
}

// Remaining returns how many queued frames are left.
func (q *QueueSource) Remaining() int {
	return len(q.frames) - q.next
}

// Poll implements Source.
func (q *QueueSource) Poll() Frame {
	if q.next >= len(q.frames) {
		return Frame{Mouse: MouseFrame{X: q.lastX, Y: q.lastY}}
	}
	f := q.frames[q.next]
	q.next++
	q.lastX, q.lastY = f.Mouse.X, f.Mouse.Y
	return f
}
