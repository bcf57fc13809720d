//go:build !tinygo

// Desktop simulator for the RGB calibrator. The engine runs unchanged
// against simulated peripherals; an ebiten window shows the perceived
// LED colour and the readout matrix.
//
// Keys: A/B = buttons, arrow keys or mouse wheel = knob, Esc = quit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/EHaake/hw3-rgbcal/app"
	"github.com/EHaake/hw3-rgbcal/hal/sim"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	world := sim.NewWorld()

	errs := make(chan error, 1)
	go func() { errs <- app.Run(ctx, world.Board(), app.Options{}) }()

	if err := world.RunWindow(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Window closed: shut the loops down and report anything fatal.
	cancel()
	if err := <-errs; err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
