// Package knob turns raw potentiometer samples into quantized
// brightness levels.
package knob

import (
	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/types"
	"github.com/EHaake/hw3-rgbcal/x/mathx"
)

// rawDivisor normalizes a 14-bit converter sample towards [0, 1].
// Full travel of the pot overshoots 1.0 slightly, which together with
// the affine bias below makes both end levels reachable before the
// mechanical stops.
const rawDivisor = 10000.0

// Knob reads the analog position control. The underlying converter is
// calibrated once by the board before the Knob is constructed.
type Knob struct {
	adc hal.AnalogReader
}

func New(adc hal.AnalogReader) *Knob {
	return &Knob{adc: adc}
}

// Measure takes one sample and quantizes it to a Level.
//
// Negative readings (noise below the bottom stop) clamp to zero. The
// scaled value is remapped with (Levels+2)*scaled - 2, which
// desensitizes both extremes of the knob travel so the minimum and
// maximum levels are each reached before the physical stops. Samples
// are never rejected; out-of-range values clamp into [0, Levels-1].
func (k *Knob) Measure() types.Level {
	raw := mathx.Clamp(k.adc.ReadRaw(), 0, 0x7fff)
	scaled := float32(raw) / rawDivisor
	level := mathx.Clamp((types.Levels+2)*scaled-2, 0, types.Levels-1)
	return types.Level(level) // conversion truncates, i.e. floor
}
