// Package hal declares the narrow hardware boundary of the calibrator.
// Backends (micro:bit, desktop simulator, Raspberry Pi) implement these
// interfaces; everything above them is target-independent and
// host-testable. Implementations must NOT spawn goroutines.
package hal

import "time"

// OutputPin is one on/off digital output. The software-PWM driver is
// the only writer of the three channel pins.
type OutputPin interface {
	Set(high bool)
}

// Button is one momentary push-button. Backends fold polarity (the
// physical buttons are active-low) into Pressed, so callers never see
// raw levels.
type Button interface {
	Pressed() bool
}

// AnalogReader samples the knob. The native sample is signed 16-bit;
// negative readings near the bottom stop are possible and are clamped
// by the consumer, not here. Backends calibrate their converter once
// during board construction, before handing out the reader.
type AnalogReader interface {
	ReadRaw() int16
}

// Frame dimensions of the readout matrix.
const (
	FrameRows = 5
	FrameCols = 5
)

// Frame is one binary image for the readout matrix.
// Row 0 is the top of the display.
type Frame [FrameRows][FrameCols]bool

// Display is the readout sink. Show presents the frame for at least
// hold; it is fire-and-forget with no acknowledgment, and on scanned
// matrices it blocks for the hold while it keeps the frame refreshed.
type Display interface {
	Show(f Frame, hold time.Duration)
}

// Board bundles the peripherals one target provides.
type Board struct {
	RGB     [3]OutputPin // red, green, blue
	ButtonA Button
	ButtonB Button
	Knob    AnalogReader
	Display Display
}
