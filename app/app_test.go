package app

import (
	"context"
	"testing"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/types"
)

type nopPin struct{}

func (nopPin) Set(bool) {}

type nopButton struct{}

func (nopButton) Pressed() bool { return false }

type steadyADC struct{}

// Reads as level 9, which maps to the default 100 fps, so the control
// loop applies no changes while the test runs.
func (steadyADC) ReadRaw() int16 { return 6200 }

type sleepDisplay struct{}

func (sleepDisplay) Show(_ hal.Frame, hold time.Duration) { time.Sleep(hold) }

func testBoard() hal.Board {
	return hal.Board{
		RGB:     [3]hal.OutputPin{nopPin{}, nopPin{}, nopPin{}},
		ButtonA: nopButton{},
		ButtonB: nopButton{},
		Knob:    steadyADC{},
		Display: sleepDisplay{},
	}
}

func TestRun_BothLoopsStopOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, testBoard(), Options{}) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_InitialOverride(t *testing.T) {
	initial := types.State{Levels: [3]types.Level{1, 2, 3}, FrameRate: 10}
	var first types.State
	got := false
	opts := Options{
		Initial: &initial,
		Report: func(st types.State) {
			if !got {
				first = st
				got = true
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, testBoard(), opts) }()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if !got || first != initial {
		t.Fatalf("initial report %+v, want %+v", first, initial)
	}
}
