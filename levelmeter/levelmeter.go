// Package levelmeter renders the current calibration as a bar graph on
// the 5x5 readout matrix: one column per colour channel, lit from the
// bottom row upward, plus a dedicated column for the frame rate.
package levelmeter

import (
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/types"
	"github.com/EHaake/hw3-rgbcal/x/mathx"
)

// Column assignment on the matrix. Column 3 stays dark as a separator.
const (
	colRed       = 0
	colGreen     = 1
	colBlue      = 2
	colFrameRate = 4
)

// Frame-rate normalization range, matching FrameRateFromLevel.
const (
	frMin = 10
	frMax = 160
)

// Meter is a pure mapping from state to frames plus an externally
// owned display sink; it keeps no state of its own between updates.
type Meter struct {
	display hal.Display
}

func New(display hal.Display) *Meter {
	return &Meter{display: display}
}

// litCells returns how many cells of a column represent level:
// ceil(level * rows / Levels). Any non-zero level lights at least one
// cell; the top level fills the column.
func litCells(level types.Level) int {
	return mathx.CeilDiv(int(level)*hal.FrameRows, types.Levels)
}

// litCellsFrameRate maps 10..160 fps onto 0..rows lit cells.
func litCellsFrameRate(fr types.FrameRate) int {
	n := mathx.CeilDiv((int(fr)-frMin)*hal.FrameRows, frMax-frMin)
	return mathx.Clamp(n, 0, hal.FrameRows)
}

func setColumn(f *hal.Frame, col, lit int) {
	for i := 0; i < lit && i < hal.FrameRows; i++ {
		f[hal.FrameRows-1-i][col] = true
	}
}

// Render builds the readout frame for one state snapshot.
func Render(levels [types.NumChannels]types.Level, fr types.FrameRate) hal.Frame {
	var f hal.Frame
	setColumn(&f, colRed, litCells(levels[types.Red]))
	setColumn(&f, colGreen, litCells(levels[types.Green]))
	setColumn(&f, colBlue, litCells(levels[types.Blue]))
	setColumn(&f, colFrameRate, litCellsFrameRate(fr))
	return f
}

// Update renders the state and holds it on the display for hold.
func (m *Meter) Update(levels [types.NumChannels]types.Level, fr types.FrameRate, hold time.Duration) {
	m.display.Show(Render(levels, fr), hold)
}
