// Package rgb is the software-PWM driver: it synthesizes per-channel
// duty cycles on plain on/off pins by holding each pin high and then
// low for multiples of a tick derived from the frame rate.
package rgb

import (
	"context"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/store"
	"github.com/EHaake/hw3-rgbcal/types"
	"github.com/EHaake/hw3-rgbcal/x/timex"
)

// slotsPerFrame is the number of ticks in one full driver pass:
// Levels ticks for each of the three channels in turn.
const slotsPerFrame = types.NumChannels * types.Levels

// Driver owns the three channel pins exclusively. Levels and frame
// rate are shadowed locally and refreshed from the store exactly once
// per full pass, so all three channels within a pass are driven from
// the same observed snapshot and staleness is bounded by one pass.
type Driver struct {
	pins  [types.NumChannels]hal.OutputPin
	state *store.Store

	levels [types.NumChannels]types.Level
	tick   time.Duration

	// sleep is time.Sleep except under test.
	sleep func(time.Duration)
}

// New returns a driver for the given pins. The pins are assumed to be
// configured as outputs and driven low.
func New(pins [types.NumChannels]hal.OutputPin, state *store.Store) *Driver {
	st := state.Snapshot()
	return &Driver{
		pins:  pins,
		state: state,
		tick:  timex.TickPeriod(int(st.FrameRate), slotsPerFrame),
		sleep: time.Sleep,
	}
}

// step drives one channel for its full Levels-tick budget: high for
// level ticks, low for the remainder. The pin always ends low.
func (d *Driver) step(ch int) {
	level := d.levels[ch]
	if level > 0 {
		d.pins[ch].Set(true)
		d.sleep(time.Duration(level) * d.tick)
		d.pins[ch].Set(false)
	}
	if off := types.Levels - level; off > 0 {
		d.sleep(time.Duration(off) * d.tick)
	}
}

// pass refreshes the snapshot once, then steps every channel.
func (d *Driver) pass() {
	st := d.state.Snapshot()
	d.levels = st.Levels
	d.tick = timex.TickPeriod(int(st.FrameRate), slotsPerFrame)

	for ch := 0; ch < types.NumChannels; ch++ {
		d.step(ch)
	}
}

// Run drives the pins until ctx is cancelled. Under normal operation
// on hardware that is never; the context exists so host targets can
// close their window cleanly. Timing is best-effort relative to the
// scheduler: missed deadlines are not detected or compensated.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			for _, p := range d.pins {
				p.Set(false)
			}
			return err
		}
		d.pass()
	}
}
