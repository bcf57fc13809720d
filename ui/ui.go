// Package ui is the operator control loop: it polls the two buttons to
// decide what the knob currently edits, applies changed values to the
// shared store, reports them, and refreshes the level meter.
package ui

import (
	"context"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/knob"
	"github.com/EHaake/hw3-rgbcal/levelmeter"
	"github.com/EHaake/hw3-rgbcal/store"
	"github.com/EHaake/hw3-rgbcal/types"
)

// displayHold paces the loop: the level meter is held this long every
// iteration, which doubles as knob sampling / button debounce interval.
const displayHold = 50 * time.Millisecond

// Reporter emits one human-readable status report. It is called once
// at startup and once per applied change; output is observational only.
type Reporter func(st types.State)

// PrintReport is the default Reporter: a line per channel plus the
// frame rate, println so it stays cheap on MCU builds.
func PrintReport(st types.State) {
	println()
	for ch := types.Channel(0); ch < types.NumChannels; ch++ {
		println(ch.String()+":", int(st.Levels[ch]))
	}
	println("frame rate:", int(st.FrameRate))
}

// UI owns the knob, the buttons and a private cache of the last-applied
// state. The cache is what makes writes and reports edge-triggered: the
// store is only touched when the knob moves the selected target.
type UI struct {
	knob    *knob.Knob
	btnA    hal.Button
	btnB    hal.Button
	meter   *levelmeter.Meter
	state   *store.Store
	report  Reporter
	applied types.State
}

func New(k *knob.Knob, btnA, btnB hal.Button, meter *levelmeter.Meter, state *store.Store, report Reporter) *UI {
	if report == nil {
		report = PrintReport
	}
	return &UI{
		knob:    k,
		btnA:    btnA,
		btnB:    btnB,
		meter:   meter,
		state:   state,
		report:  report,
		applied: state.Snapshot(),
	}
}

// target maps the momentary button combination onto the quantity the
// knob edits. There is no hysteresis: a combination change simply
// selects a different target next iteration.
func (u *UI) target() types.Target {
	a, b := u.btnA.Pressed(), u.btnB.Pressed()
	switch {
	case a && b:
		return types.TargetRed
	case a:
		return types.TargetBlue
	case b:
		return types.TargetGreen
	default:
		return types.TargetFrameRate
	}
}

// iterate runs one control-loop step without the display hold.
func (u *UI) iterate() {
	level := u.knob.Measure()

	changed := false
	switch t := u.target(); t {
	case types.TargetFrameRate:
		if fr := types.FrameRateFromLevel(level); fr != u.applied.FrameRate {
			u.applied.FrameRate = fr
			u.state.SetFrameRate(fr)
			changed = true
		}
	default:
		ch := channelFor(t)
		if level != u.applied.Levels[ch] {
			u.applied.Levels[ch] = level
			u.state.SetLevel(ch, level)
			changed = true
		}
	}

	if changed {
		u.report(u.applied)
	}
}

func channelFor(t types.Target) types.Channel {
	switch t {
	case types.TargetRed:
		return types.Red
	case types.TargetGreen:
		return types.Green
	case types.TargetBlue:
		return types.Blue
	}
	return types.Red
}

// Run reports the initial state, then loops forever: sample, apply,
// refresh the meter. Returns only when ctx is cancelled (host targets).
func (u *UI) Run(ctx context.Context) error {
	u.report(u.applied)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.iterate()
		u.meter.Update(u.applied.Levels, u.applied.FrameRate, displayHold)
	}
}
