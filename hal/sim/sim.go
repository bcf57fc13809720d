//go:build !tinygo

// Package sim is the desktop board: simulated pins, buttons and knob
// behind an ebiten window that shows the readout matrix and the
// perceived LED colour.
package sim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/x/mathx"
)

const knobMax = 16383 // simulated 14-bit converter full scale

// Pin is a simulated output whose duty cycle is measured by
// integrating high time between window redraws.
type Pin struct {
	mu         sync.Mutex
	high       bool
	since      time.Time // last transition or window reset
	windowFrom time.Time
	highDur    time.Duration
}

func newPin() *Pin {
	now := time.Now()
	return &Pin{since: now, windowFrom: now}
}

func (p *Pin) Set(high bool) {
	p.mu.Lock()
	now := time.Now()
	if p.high {
		p.highDur += now.Sub(p.since)
	}
	p.high = high
	p.since = now
	p.mu.Unlock()
}

// Duty returns the high-time ratio since the previous call and starts
// a new measurement window.
func (p *Pin) Duty() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	h := p.highDur
	if p.high {
		h += now.Sub(p.since)
	}
	total := now.Sub(p.windowFrom)
	p.highDur = 0
	p.since = now
	p.windowFrom = now
	if total <= 0 {
		return 0
	}
	return float64(h) / float64(total)
}

// Button is a momentary button driven by the keyboard.
type Button struct{ down atomic.Bool }

func (b *Button) Pressed() bool { return b.down.Load() }
func (b *Button) set(down bool) { b.down.Store(down) }

// Knob is a simulated pot; the window nudges the raw sample up and
// down within the converter range.
type Knob struct{ raw atomic.Int32 }

func (k *Knob) ReadRaw() int16 { return int16(k.raw.Load()) }

func (k *Knob) add(delta int32) {
	for {
		old := k.raw.Load()
		clamped := mathx.Clamp(old+delta, 0, knobMax)
		if k.raw.CompareAndSwap(old, clamped) {
			return
		}
	}
}

// display retains the latest frame for the window and sleeps for the
// hold, which is what paces the control loop, same as the scanned
// hardware matrix.
type display struct {
	mu    sync.Mutex
	frame hal.Frame
}

func (d *display) Show(f hal.Frame, hold time.Duration) {
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
	time.Sleep(hold)
}

func (d *display) snapshot() hal.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// World owns all simulated peripherals.
type World struct {
	pins       [3]*Pin
	btnA, btnB Button
	knob       Knob
	disp       display
}

func NewWorld() *World {
	w := &World{pins: [3]*Pin{newPin(), newPin(), newPin()}}
	// Start the knob where it agrees with the default frame rate
	// (level 9 -> 100 fps) so nothing jumps on the first iteration.
	w.knob.raw.Store(6200)
	return w
}

// Board exposes the simulated peripherals behind the HAL.
func (w *World) Board() hal.Board {
	return hal.Board{
		RGB:     [3]hal.OutputPin{w.pins[0], w.pins[1], w.pins[2]},
		ButtonA: &w.btnA,
		ButtonB: &w.btnB,
		Knob:    &w.knob,
		Display: &w.disp,
	}
}
