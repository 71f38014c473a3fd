package core

import "strings"

// Action is a semantic game action, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsHop reports whether a moves the frog.
func (a Action) IsHop() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame collects the actions seen between two ticks. The zero value
// is an empty frame.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.set |= 1 << uint(a)
	}
}

// Has reports whether a was recorded.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.set&(1<<uint(a)) != 0
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Actions lists the recorded actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}

func (f InputFrame) String() string {
	acts := f.Actions()
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
