//go:build tinygo

// Package microbit binds the calibrator HAL to the micro:bit v2: the
// RGB LED on edge-connector pins P9/P8/P16, the knob on P2 (SAADC),
// buttons A/B and the on-board 5x5 matrix.
package microbit

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/microbitmatrix"

	"github.com/EHaake/hw3-rgbcal/hal"
)

type outPin struct{ p machine.Pin }

func (o outPin) Set(high bool) { o.p.Set(high) }

type button struct{ p machine.Pin }

// The board buttons pull the line low when pressed.
func (b button) Pressed() bool { return !b.p.Get() }

type adc struct{ a machine.ADC }

// ReadRaw converts the 16-bit left-adjusted reading back to the 14-bit
// converter scale the knob mapping is calibrated for.
func (r adc) ReadRaw() int16 { return int16(r.a.Get() >> 2) }

type matrix struct{ dev *microbitmatrix.Device }

var on = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Show loads the frame and keeps the row-scanned matrix refreshed for
// the whole hold.
func (m matrix) Show(f hal.Frame, hold time.Duration) {
	m.dev.ClearDisplay()
	for row := 0; row < hal.FrameRows; row++ {
		for col := 0; col < hal.FrameCols; col++ {
			if f[row][col] {
				m.dev.SetPixel(int16(col), int16(row), on)
			}
		}
	}
	deadline := time.Now().Add(hold)
	for time.Now().Before(deadline) {
		m.dev.Display()
	}
}

// NewBoard configures all peripherals and returns the board bundle.
// Configuration includes the one-time converter calibration, so the
// knob reader handed out is ready to sample.
func NewBoard() hal.Board {
	ledPin := func(p machine.Pin) outPin {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
		return outPin{p: p}
	}

	btnPin := func(p machine.Pin) button {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		return button{p: p}
	}

	machine.InitADC()
	knob := machine.ADC{Pin: machine.P2}
	knob.Configure(machine.ADCConfig{})

	dev := microbitmatrix.New()
	dev.Configure(microbitmatrix.Config{})

	return hal.Board{
		RGB: [3]hal.OutputPin{
			ledPin(machine.P9),  // red
			ledPin(machine.P8),  // green
			ledPin(machine.P16), // blue
		},
		ButtonA: btnPin(machine.BUTTONA),
		ButtonB: btnPin(machine.BUTTONB),
		Knob:    adc{a: knob},
		Display: matrix{dev: &dev},
	}
}
