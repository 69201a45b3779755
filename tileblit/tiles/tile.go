package tiles

import (
	"fmt"

	"github.com/valerio/go-tileblit/tileblit/video"
)

// Mode selects how tiles are drawn.
type Mode int

const (
	// ModeImage blits a pre-rendered bitmap per tile.
	ModeImage Mode = iota
	// ModeFill paints a solid rectangle per tile.
	ModeFill
)

func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeFill:
		return "fill"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeImage {
		return ModeFill
	}
	return ModeImage
}

// ParseMode accepts "image" or "fill".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "image", "":
		return ModeImage, nil
	case "fill":
		return ModeFill, nil
	default:
		return ModeImage, fmt.Errorf("unknown mode %q (expected image or fill)", s)
	}
}

// Tile is a colored rectangle anchored at its top left pixel.
type Tile struct {
	X, Y  int
	Color video.Color

	width, height int
	image         *video.FrameBuffer
}

// NewTile creates a tile and pre-renders its bitmap.
func NewTile(x, y, width, height int, color video.Color) *Tile {
	img := video.NewFrameBuffer(width, height)
	img.Clear(color)

	return &Tile{
		X:      x,
		Y:      y,
		Color:  color,
		width:  width,
		height: height,
		image:  img,
	}
}

// Image returns the pre-rendered bitmap.
func (t *Tile) Image() *video.FrameBuffer {
	return t.image
}

// Paint draws the tile into fb at its own position.
func (t *Tile) Paint(fb *video.FrameBuffer, mode Mode) {
	t.PaintAt(fb, t.X, t.Y, mode)
}

// PaintAt draws the tile with its top left corner at (x, y).
func (t *Tile) PaintAt(fb *video.FrameBuffer, x, y int, mode Mode) {
	if mode == ModeImage {
		fb.Blit(t.image, x, y)
		return
	}
	fb.FillRect(x, y, t.width, t.height, t.Color)
}
