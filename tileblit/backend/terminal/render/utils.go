package render

import "github.com/valerio/go-tileblit/tileblit/video"

// FitSize scales a srcW x srcH frame to fit cols x 2*rows pixels, keeping
// the aspect ratio. Each terminal cell shows two vertical pixels.
func FitSize(srcW, srcH, cols, rows int) (width, height int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}

	maxH := rows * 2
	// compare cols/srcW with maxH/srcH without floats
	if cols*srcH <= maxH*srcW {
		width = cols
		height = srcH * cols / srcW
	} else {
		height = maxH
		width = srcW * maxH / srcH
	}
	return max(width, 1), max(height, 1)
}

// Sample returns the nearest source pixel for (x, y) of a width x height
// view of the frame.
func Sample(frame *video.FrameBuffer, x, y, width, height int) video.Color {
	sx := x * frame.Width() / width
	sy := y * frame.Height() / height
	return video.Color(frame.GetPixel(sx, sy))
}

// HalfBlockCell returns the character and colors showing top above bottom
// in one cell.
func HalfBlockCell(top, bottom video.Color) (ch rune, fg, bg video.Color) {
	if top == bottom {
		return '█', top, top
	}
	return '▀', top, bottom
}
