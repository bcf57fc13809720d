package levelmeter

import (
	"testing"
	"time"

	"github.com/EHaake/hw3-rgbcal/hal"
	"github.com/EHaake/hw3-rgbcal/types"
)

func litInColumn(f hal.Frame, col int) int {
	n := 0
	for row := 0; row < hal.FrameRows; row++ {
		if f[row][col] {
			n++
		}
	}
	return n
}

// lit cells must form a contiguous run from the bottom row upward
func contiguousFromBottom(f hal.Frame, col int) bool {
	seenDark := false
	for row := hal.FrameRows - 1; row >= 0; row-- {
		if f[row][col] {
			if seenDark {
				return false
			}
		} else {
			seenDark = true
		}
	}
	return true
}

func TestRender_ChannelColumns(t *testing.T) {
	f := Render([3]types.Level{15, 4, 6}, 100)

	if got := litInColumn(f, colRed); got != 5 {
		t.Fatalf("red column lit %d, want 5", got)
	}
	if got := litInColumn(f, colGreen); got != 2 { // ceil(4*5/16)
		t.Fatalf("green column lit %d, want 2", got)
	}
	if got := litInColumn(f, colBlue); got != 2 { // ceil(6*5/16)
		t.Fatalf("blue column lit %d, want 2", got)
	}
	if got := litInColumn(f, 3); got != 0 {
		t.Fatalf("separator column lit %d, want 0", got)
	}
	for _, col := range []int{colRed, colGreen, colBlue} {
		if !contiguousFromBottom(f, col) {
			t.Fatalf("column %d not lit bottom-up", col)
		}
	}
}

func TestRender_LevelMonotoneAndSaturating(t *testing.T) {
	prev := -1
	for lvl := types.Level(0); lvl < types.Levels; lvl++ {
		f := Render([3]types.Level{lvl, 0, 0}, 100)
		n := litInColumn(f, colRed)
		if n < prev {
			t.Fatalf("lit count dropped from %d to %d at level %d", prev, n, lvl)
		}
		prev = n
	}
	f := Render([3]types.Level{types.Levels - 1, 0, 0}, 100)
	if n := litInColumn(f, colRed); n != hal.FrameRows {
		t.Fatalf("top level lights %d cells, want full column", n)
	}
	f = Render([3]types.Level{1, 0, 0}, 100)
	if n := litInColumn(f, colRed); n != 1 {
		t.Fatalf("level 1 lights %d cells, want 1", n)
	}
}

func TestRender_FrameRateColumn(t *testing.T) {
	cases := []struct {
		fr   types.FrameRate
		want int
	}{
		{10, 0},
		{40, 1},
		{100, 3},
		{160, 5},
	}
	for _, c := range cases {
		f := Render([3]types.Level{0, 0, 0}, c.fr)
		if got := litInColumn(f, colFrameRate); got != c.want {
			t.Fatalf("frame rate %d lit %d cells, want %d", c.fr, got, c.want)
		}
		if !contiguousFromBottom(f, colFrameRate) {
			t.Fatalf("frame rate column not lit bottom-up at %d fps", c.fr)
		}
	}
}

type fakeDisplay struct {
	frames []hal.Frame
	holds  []time.Duration
}

func (d *fakeDisplay) Show(f hal.Frame, hold time.Duration) {
	d.frames = append(d.frames, f)
	d.holds = append(d.holds, hold)
}

func TestUpdate_PushesRenderedFrame(t *testing.T) {
	d := &fakeDisplay{}
	m := New(d)
	m.Update([3]types.Level{15, 4, 6}, 100, 50*time.Millisecond)

	if len(d.frames) != 1 {
		t.Fatalf("display got %d frames, want 1", len(d.frames))
	}
	if d.frames[0] != Render([3]types.Level{15, 4, 6}, 100) {
		t.Fatal("displayed frame differs from rendered frame")
	}
	if d.holds[0] != 50*time.Millisecond {
		t.Fatalf("hold %v, want 50ms", d.holds[0])
	}
}
