package froggr

import "sync"

// Button is one of the four directional controls.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// Input is the directional state shared between the key handler and the
// simulation. Key events may write it at any time; a tick only reads and
// consumes it.
//
// A press stays raised until the actor acts on it or the caller releases
// it, so holding a key does not repeat the move every tick.
type Input struct {
	mu      sync.Mutex
	pressed [buttonCount]bool
}

// NewInput creates an input with no buttons pressed.
func NewInput() *Input {
	return &Input{}
}

// Press raises a button.
func (in *Input) Press(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	in.mu.Lock()
	in.pressed[b] = true
	in.mu.Unlock()
}

// Release lowers a button.
func (in *Input) Release(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	in.mu.Lock()
	in.pressed[b] = false
	in.mu.Unlock()
}

// Pressed reports whether a button is raised.
func (in *Input) Pressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.pressed[b]
}

// Clear releases every button.
func (in *Input) Clear() {
	in.mu.Lock()
	in.pressed = [buttonCount]bool{}
	in.mu.Unlock()
}

// snapshot copies the current buttons.
func (in *Input) snapshot() [buttonCount]bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.pressed
}
