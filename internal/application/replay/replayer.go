package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/engine2d/internal/input"
)

// Replayer plays recorded frames back. It implements input.Source.
type Replayer struct {
	data  Data
	frame int
	lastX int
	lastY int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// LoadData loads replay data from a file
func LoadData(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Load creates a replayer from a file
func Load(filename string) (*Replayer, error) {
	data, err := LoadData(filename)
	if err != nil {
		return nil, err
	}
	return NewReplayer(*data), nil
}

// Poll returns the current frame's input and advances. After the last
// frame it returns frames with no activity at the last cursor position.
func (r *Replayer) Poll() input.Frame {
	if r.Done() {
		return input.Frame{Mouse: input.MouseFrame{X: r.lastX, Y: r.lastY}}
	}

	f := r.data.Frames[r.frame].Frame()
	r.frame++
	r.lastX, r.lastY = f.Mouse.X, f.Mouse.Y
	return f
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}

// Game returns the id of the recorded game
func (r *Replayer) Game() string {
	return r.data.Game
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.lastX, r.lastY = 0, 0
}

// CreateTestData creates replay data for testing (idle input)
func CreateTestData(game string, frames int, mouseX, mouseY int) Data {
	data := Data{
		Version:   Version,
		Game:      game,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameRecord, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameRecord{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

var _ input.Source = (*Replayer)(nil)
