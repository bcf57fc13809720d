// Package rpi binds the calibrator HAL to a Raspberry Pi header: three
// GPIO lines for the LED, two active-low buttons, and an ADS1115 over
// I2C for the knob. The readout is drawn on the terminal.
package rpi

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"

	"github.com/EHaake/hw3-rgbcal/errcode"
	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/x/mathx"
)

// Config names the header pins, gpioreg style ("GPIO17", "GPIO27", ...).
// I2CBus empty means the first available bus.
type Config struct {
	RedPin   string
	GreenPin string
	BluePin  string
	ButtonA  string
	ButtonB  string
	I2CBus   string
}

type outPin struct{ p gpio.PinOut }

func (o outPin) Set(high bool) { _ = o.p.Out(gpio.Level(high)) }

type button struct{ p gpio.PinIn }

// Buttons short to ground, with the internal pull-up enabled.
func (b button) Pressed() bool { return b.p.Read() == gpio.Low }

type adcPin struct{ pin ads1x15.PinADC }

// ReadRaw halves the 16-bit ADS1115 sample down to the 14-bit scale
// the knob mapping is calibrated for. Read errors are not surfaced;
// the knob layer clamps whatever it gets.
func (a adcPin) ReadRaw() int16 {
	s, err := a.pin.Read()
	if err != nil {
		return 0
	}
	return int16(mathx.Clamp(s.Raw/2, 0, 16383))
}

// NewBoard initialises the periph host, claims the pins and the ADC
// channel and returns the board bundle.
func NewBoard(cfg Config) (hal.Board, error) {
	if _, err := host.Init(); err != nil {
		return hal.Board{}, err
	}

	out := func(name string) (outPin, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return outPin{}, fmt.Errorf("%s: %w", name, errcode.UnknownPin)
		}
		if err := p.Out(gpio.Low); err != nil {
			return outPin{}, err
		}
		return outPin{p: p}, nil
	}
	in := func(name string) (button, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return button{}, fmt.Errorf("%s: %w", name, errcode.UnknownPin)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return button{}, err
		}
		return button{p: p}, nil
	}

	red, err := out(cfg.RedPin)
	if err != nil {
		return hal.Board{}, err
	}
	green, err := out(cfg.GreenPin)
	if err != nil {
		return hal.Board{}, err
	}
	blue, err := out(cfg.BluePin)
	if err != nil {
		return hal.Board{}, err
	}
	btnA, err := in(cfg.ButtonA)
	if err != nil {
		return hal.Board{}, err
	}
	btnB, err := in(cfg.ButtonB)
	if err != nil {
		return hal.Board{}, err
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return hal.Board{}, fmt.Errorf("%s: %w", cfg.I2CBus, errcode.UnknownBus)
	}
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return hal.Board{}, err
	}
	knobPin, err := adc.PinForChannel(ads1x15.Channel0, 3300*physic.MilliVolt,
		100*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return hal.Board{}, err
	}

	return hal.Board{
		RGB:     [3]hal.OutputPin{red, green, blue},
		ButtonA: btnA,
		ButtonB: btnB,
		Knob:    adcPin{pin: knobPin},
		Display: newConsoleDisplay(),
	}, nil
}
