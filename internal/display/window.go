// Package display implements chip8.Host against a real window: a
// Blit/ShouldClose/IsKeyDown/TakeReleasedKey/RandomByte adapter backed by
// pixelgl.
package display

import (
	"fmt"
	"math/rand"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/hexpad/chippy8/internal/chip8"
)

const (
	screenWidth  = 1024.0
	screenHeight = 768.0
)

// Window is a pixelgl-backed implementation of chip8.Host.
type Window struct {
	win *pixelgl.Window

	// pressed tracks which hex keys are currently held, keyed on the
	// chip8.Host IsKeyDown contract.
	pressed [16]bool

	// releasedQueue holds keys released since the last TakeReleasedKey
	// call, oldest first.
	releasedQueue []uint8
}

// NewWindow creates and shows a pixelgl window sized for a scaled 64x32
// CHIP-8 display. It must be called from the OS main thread (via
// pixelgl.Run).
func NewWindow(title string, scale float64) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth*scale, screenHeight*scale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: creating window: %w", err)
	}
	return &Window{win: w}, nil
}

// Blit implements chip8.Host: it clears the window and redraws every lit
// pixel as a scaled rectangle.
func (w *Window) Blit(frame [chip8.FramebufferHeight][chip8.FramebufferWidth]bool) {
	w.win.Clear(colornames.Black)

	imd := imdraw.New(nil)
	imd.Color = pixel.RGB(1, 1, 1)

	bounds := w.win.Bounds()
	cellW := bounds.W() / chip8.FramebufferWidth
	cellH := bounds.H() / chip8.FramebufferHeight

	for y := 0; y < chip8.FramebufferHeight; y++ {
		for x := 0; x < chip8.FramebufferWidth; x++ {
			if !frame[y][x] {
				continue
			}
			// Flip y: CHIP-8 row 0 is the top of the screen, pixelgl's
			// origin is bottom-left.
			py := chip8.FramebufferHeight - 1 - y
			imd.Push(pixel.V(cellW*float64(x), cellH*float64(py)))
			imd.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(py)+cellH))
			imd.Rectangle(0)
		}
	}

	imd.Draw(w.win)
	w.win.Update()
	w.pollKeys()
}

// ShouldClose implements chip8.Host.
func (w *Window) ShouldClose() bool {
	return w.win.Closed()
}

// IsKeyDown implements chip8.Host.
func (w *Window) IsKeyDown(code uint8) bool {
	if code > 0xF {
		return false
	}
	return w.pressed[code]
}

// TakeReleasedKey implements chip8.Host: it dequeues the oldest key
// released since the last call, if any.
func (w *Window) TakeReleasedKey() (uint8, bool) {
	if len(w.releasedQueue) == 0 {
		return 0, false
	}
	key := w.releasedQueue[0]
	w.releasedQueue = w.releasedQueue[1:]
	return key, true
}

// RandomByte implements chip8.Host using math/rand, matching the RNG the
// teacher and the rest of the pack's CHIP-8 repos use for Cxkk.
func (w *Window) RandomByte() byte {
	return byte(rand.Intn(256))
}

// pollKeys reads pixelgl's just-pressed/just-released edges for the 16 hex
// keys and updates pressed/releasedQueue accordingly. Called once per Blit,
// i.e. once per frame.
func (w *Window) pollKeys() {
	for code, button := range keyMap {
		switch {
		case w.win.JustPressed(button):
			w.pressed[code] = true
		case w.win.JustReleased(button):
			w.pressed[code] = false
			w.releasedQueue = append(w.releasedQueue, code)
		}
	}
}
