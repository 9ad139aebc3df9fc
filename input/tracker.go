// Package input adapts pointer devices into the raw sample stream the engine
// smooths. Sources are polled once per frame by the scene.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sample is one raw pointer reading. Visible=false means the device lost
// tracking this frame (cursor outside the window, hand out of camera view).
type Sample struct {
	X, Y    float64
	Visible bool
}

// Source produces one raw sample per poll.
type Source interface {
	Poll() Sample
}

// MouseSource tracks the OS cursor within a logical field size. The cursor
// acts as a stand-in for noisier trackers; it is reported invisible while
// outside the field bounds.
type MouseSource struct {
	Width  int
	Height int
}

func NewMouseSource(width, height int) *MouseSource {
	return &MouseSource{Width: width, Height: height}
}

func (m *MouseSource) Poll() Sample {
	x, y := ebiten.CursorPosition()
	visible := x >= 0 && y >= 0 && x < m.Width && y < m.Height
	return Sample{X: float64(x), Y: float64(y), Visible: visible}
}
