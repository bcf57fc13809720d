// Package app wires the calibrator together and supervises its two
// everlasting loops. It is shared by every target; only the hal.Board
// differs.
package app

import (
	"context"
	"errors"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/knob"
	"github.com/EHaake/hw3-rgbcal/levelmeter"
	"github.com/EHaake/hw3-rgbcal/rgb"
	"github.com/EHaake/hw3-rgbcal/store"
	"github.com/EHaake/hw3-rgbcal/types"
	"github.com/EHaake/hw3-rgbcal/ui"
)

// ErrLoopExited means one of the two main loops returned without the
// context being cancelled. That is unreachable by contract; a caller
// seeing it should halt loudly.
var ErrLoopExited = errors.New("main loop exited")

// Options tweak the wiring for non-default targets.
type Options struct {
	// Report overrides the status reporter (nil = println lines).
	Report ui.Reporter
	// Initial overrides the power-on state (zero value = defaults).
	Initial *types.State
}

// Run builds the store, PWM driver and control loop for board and runs
// both until ctx is cancelled. The two loops never block on each other
// except inside the store's critical sections. If either loop exits
// while ctx is still live, Run returns ErrLoopExited.
func Run(ctx context.Context, board hal.Board, opts Options) error {
	initial := types.DefaultState()
	if opts.Initial != nil {
		initial = *opts.Initial
	}
	st := store.New(initial)

	driver := rgb.New(board.RGB, st)
	k := knob.New(board.Knob)
	meter := levelmeter.New(board.Display)
	controls := ui.New(k, board.ButtonA, board.ButtonB, meter, st, opts.Report)

	done := make(chan error, 2)
	go func() { done <- driver.Run(ctx) }()
	go func() { done <- controls.Run(ctx) }()

	err := <-done
	if ctx.Err() == nil {
		// Neither loop may terminate on its own.
		if err == nil {
			err = ErrLoopExited
		}
		return err
	}
	// Orderly shutdown: wait for the second loop too.
	<-done
	return ctx.Err()
}
