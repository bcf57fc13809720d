//go:build !tinygo

package sim

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/EHaake/hw3-rgbcal/hal"
)

const (
	screenW  = 220
	screenH  = 124
	knobStep = 96 // raw units per tick while an arrow key is held
)

type game struct {
	w      *World
	bright [3]float64
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.w.btnA.set(ebiten.IsKeyPressed(ebiten.KeyA))
	g.w.btnB.set(ebiten.IsKeyPressed(ebiten.KeyB))

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.w.knob.add(knobStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.w.knob.add(-knobStep)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.w.knob.add(int32(dy * 256))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Perceived LED colour from the measured duty, smoothed a little so
	// the 60 Hz redraw doesn't beat against the PWM frame rate.
	for i, p := range g.w.pins {
		g.bright[i] = 0.7*g.bright[i] + 0.3*p.Duty()
	}
	swatch := color.RGBA{
		R: uint8(g.bright[0] * 0xff),
		G: uint8(g.bright[1] * 0xff),
		B: uint8(g.bright[2] * 0xff),
		A: 0xff,
	}
	vector.DrawFilledRect(screen, 10, 10, 100, 100, swatch, false)

	// Readout matrix.
	f := g.w.disp.snapshot()
	for row := 0; row < hal.FrameRows; row++ {
		for col := 0; col < hal.FrameCols; col++ {
			c := color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
			if f[row][col] {
				c = color.RGBA{R: 0xff, G: 0x40, B: 0x20, A: 0xff}
			}
			x := float32(120 + col*18)
			y := float32(10 + row*18)
			vector.DrawFilledRect(screen, x, y, 14, 14, c, false)
		}
	}

	// Knob travel indicator along the bottom edge.
	frac := float32(g.w.knob.raw.Load()) / knobMax
	vector.DrawFilledRect(screen, 10, 114, 200*frac, 4,
		color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}, false)
}

func (g *game) Layout(int, int) (int, int) { return screenW, screenH }

// RunWindow opens the window and blocks until it is closed or Esc is
// pressed. Keys: A and B are the buttons, arrow keys or the mouse
// wheel turn the knob.
func (w *World) RunWindow() error {
	ebiten.SetWindowTitle("rgbcal sim")
	ebiten.SetWindowSize(screenW*3, screenH*3)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(&game{w: w}); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
