// Package timex derives the timing constants of the software-PWM
// schedule from a requested refresh rate.
package timex

import "time"

// TickPeriod returns the duration of one PWM tick when a full frame is
// divided into slots equal time slices refreshed frameRate times per
// second. Non-positive inputs are coerced to 1 to avoid division by
// zero; the result keeps nanosecond precision rather than truncating to
// whole microseconds.
func TickPeriod(frameRate, slots int) time.Duration {
	if frameRate <= 0 {
		frameRate = 1
	}
	if slots <= 0 {
		slots = 1
	}
	return time.Second / time.Duration(frameRate*slots)
}
