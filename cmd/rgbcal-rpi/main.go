// Command rgbcal-rpi runs the RGB calibrator on a Raspberry Pi header:
// LED on three GPIO lines, two active-low buttons, knob on channel 0
// of an ADS1115, readout on the terminal.
//
//	rgbcal-rpi -red GPIO17 -green GPIO27 -blue GPIO22 -a GPIO23 -b GPIO24
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/EHaake/hw3-rgbcal/app"
	"github.com/EHaake/hw3-rgbcal/hal/rpi"
)

func main() {
	var cfg rpi.Config
	flag.StringVar(&cfg.RedPin, "red", "GPIO17", "Red channel pin name.")
	flag.StringVar(&cfg.GreenPin, "green", "GPIO27", "Green channel pin name.")
	flag.StringVar(&cfg.BluePin, "blue", "GPIO22", "Blue channel pin name.")
	flag.StringVar(&cfg.ButtonA, "a", "GPIO23", "Button A pin name (active low).")
	flag.StringVar(&cfg.ButtonB, "b", "GPIO24", "Button B pin name (active low).")
	flag.StringVar(&cfg.I2CBus, "i2c", "", "I2C bus for the ADS1115 (empty = first).")
	flag.Parse()

	board, err := rpi.NewBoard(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "board init:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, board, app.Options{}); err != nil &&
		!errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
