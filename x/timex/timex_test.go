package timex

import (
	"testing"
	"time"
)

func TestTickPeriod(t *testing.T) {
	// 100 fps, 3 channels x 16 levels = 48 slots per frame.
	if got := TickPeriod(100, 48); got != time.Second/4800 {
		t.Fatalf("TickPeriod(100,48) = %v, want %v", got, time.Second/4800)
	}
	if got := TickPeriod(160, 48); got != time.Second/7680 {
		t.Fatalf("TickPeriod(160,48) = %v", got)
	}
	// Non-positive inputs must not divide by zero.
	if got := TickPeriod(0, 0); got != time.Second {
		t.Fatalf("TickPeriod(0,0) = %v, want 1s", got)
	}
}
