package rpi

import (
	"os"
	"sync"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
)

// consoleDisplay draws the 5x5 readout as text. Frames arrive every
// ~50 ms but are only printed when they change, so the terminal is not
// flooded; the hold still runs unconditionally because it paces the
// control loop.
type consoleDisplay struct {
	mu   sync.Mutex
	last hal.Frame
	seen bool
}

func newConsoleDisplay() *consoleDisplay { return &consoleDisplay{} }

func (c *consoleDisplay) Show(f hal.Frame, hold time.Duration) {
	c.mu.Lock()
	if !c.seen || f != c.last {
		c.last = f
		c.seen = true
		c.print(f)
	}
	c.mu.Unlock()
	time.Sleep(hold)
}

func (c *consoleDisplay) print(f hal.Frame) {
	buf := make([]byte, 0, (hal.FrameCols*2+1)*hal.FrameRows+1)
	for row := 0; row < hal.FrameRows; row++ {
		for col := 0; col < hal.FrameCols; col++ {
			if f[row][col] {
				buf = append(buf, '#', ' ')
			} else {
				buf = append(buf, '.', ' ')
			}
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, '\n')
	_, _ = os.Stdout.Write(buf)
}
