// Package types holds the shared value types of the RGB calibrator.
package types

// Levels is the number of discrete brightness steps per channel.
const Levels = 16

// Level is a brightness step in [0, Levels-1]. 0 is off, Levels-1 is
// fully on for the whole tick budget of a channel.
type Level int

// Channel identifies one of the three LED colour channels. The PWM
// driver is the only component allowed to touch a channel's output pin.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	NumChannels = 3
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "?"
}

// FrameRate is the target full-cycle refresh frequency in frames per
// second. It is always derived from a knob level via FrameRateFromLevel,
// so it stays in 10..160 in steps of 10.
type FrameRate int

// FrameRateFromLevel maps a knob level onto a frame rate.
func FrameRateFromLevel(level Level) FrameRate {
	return FrameRate(level+1) * 10
}

// State is one consistent snapshot of everything the control loop
// adjusts and the PWM driver consumes.
type State struct {
	Levels    [NumChannels]Level
	FrameRate FrameRate
}

// DefaultState returns the power-on settings: the levels measured to be
// white on the reference board, at 100 fps.
func DefaultState() State {
	return State{Levels: [NumChannels]Level{15, 4, 6}, FrameRate: 100}
}

// Target is the quantity the knob currently edits, re-derived from the
// button combination on every control-loop iteration.
type Target int

const (
	TargetRed Target = iota
	TargetGreen
	TargetBlue
	TargetFrameRate
)

func (t Target) String() string {
	switch t {
	case TargetRed:
		return "red"
	case TargetGreen:
		return "green"
	case TargetBlue:
		return "blue"
	case TargetFrameRate:
		return "frame rate"
	}
	return "?"
}
