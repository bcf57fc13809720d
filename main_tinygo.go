//go:build tinygo

// RGB calibrator firmware for the micro:bit v2.
//
// Build/flash:
//
//	tinygo flash -target microbit-v2 .
package main

import (
	"context"
	"time"

	"github.com/EHaake/hw3-rgbcal/app"
	"github.com/EHaake/hw3-rgbcal/hal/microbit"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	board := microbit.NewBoard()
	_ = app.Run(context.Background(), board, app.Options{})

	// Both loops run forever; reaching this point means one of them
	// exited, which is unrecoverable.
	panic("fell off end of main loop")
}
