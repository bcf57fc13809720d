//go:build !tinygo

package sim

import (
	"testing"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
)

func TestPin_DutyIntegratesHighTime(t *testing.T) {
	p := newPin()
	p.Set(true)
	time.Sleep(20 * time.Millisecond)
	p.Set(false)
	time.Sleep(20 * time.Millisecond)

	d := p.Duty()
	// Generous bounds; the scheduler owns the exact timing.
	if d < 0.25 || d > 0.75 {
		t.Fatalf("duty %f, want roughly 0.5", d)
	}

	// New window starts empty.
	time.Sleep(5 * time.Millisecond)
	if d := p.Duty(); d != 0 {
		t.Fatalf("duty %f after low window, want 0", d)
	}
}

func TestPin_DutyCountsOngoingHigh(t *testing.T) {
	p := newPin()
	p.Set(true)
	time.Sleep(10 * time.Millisecond)
	if d := p.Duty(); d < 0.9 {
		t.Fatalf("duty %f while held high, want ~1", d)
	}
}

func TestKnob_AddClampsToConverterRange(t *testing.T) {
	var k Knob
	k.add(-100)
	if got := k.ReadRaw(); got != 0 {
		t.Fatalf("raw %d, want 0", got)
	}
	k.add(2 * knobMax)
	if got := k.ReadRaw(); got != knobMax {
		t.Fatalf("raw %d, want %d", got, knobMax)
	}
}

func TestDisplay_RetainsLatestFrame(t *testing.T) {
	var d display
	var f hal.Frame
	f[4][0] = true

	start := time.Now()
	d.Show(f, 10*time.Millisecond)
	if time.Since(start) < 10*time.Millisecond {
		t.Fatal("Show returned before the hold elapsed")
	}
	if d.snapshot() != f {
		t.Fatal("snapshot differs from last shown frame")
	}
}
