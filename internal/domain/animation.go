package domain

// Frame is one text state of the OLED screen.
type Frame = string

// DefaultFrames is the built-in dot animation. Each frame is 16 cells wide.
var DefaultFrames = []Frame{
	"·              ·",
	" ·            · ",
	"  ·          ·  ",
	"   ·        ·   ",
	"    ·      ·    ",
	"     ·    ·     ",
	"      ˙  .      ",
	"       ˙.       ",
	"       .˙       ",
	"      .  ˙      ",
	"     ·    ·     ",
	"    ·      ·    ",
	"   ·        ·   ",
	"  ·          ·  ",
	" ·            · ",
}

// Animation is an immutable, cyclic sequence of frames.
type Animation struct {
	frames []Frame
}

// NewAnimation copies frames into a new Animation.
// Returns ErrNoFrames if frames is empty.
func NewAnimation(frames []Frame) (Animation, error) {
	if len(frames) == 0 {
		return Animation{}, ErrNoFrames
	}
	cp := make([]Frame, len(frames))
	copy(cp, frames)
	return Animation{frames: cp}, nil
}

// Len returns the number of frames in one cycle.
func (a Animation) Len() int {
	return len(a.frames)
}

// At returns frame i, wrapping around after the last frame.
func (a Animation) At(i int) Frame {
	n := len(a.frames)
	return a.frames[((i%n)+n)%n]
}

// Frames returns a copy of the frame list.
func (a Animation) Frames() []Frame {
	cp := make([]Frame, len(a.frames))
	copy(cp, a.frames)
	return cp
}
