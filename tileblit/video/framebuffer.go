package video

// Color is a pixel in 0xRRGGBBAA layout.
type Color uint32

const (
	WhiteColor Color = 0xFFFFFFFF
	BlackColor Color = 0x000000FF
)

const (
	redShift   = 24
	greenShift = 16
	blueShift  = 8
	alphaMask  = 0xFF
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<redShift | uint32(g)<<greenShift | uint32(b)<<blueShift | alphaMask)
}

// FromHex turns a 24 bit 0xRRGGBB value into an opaque color.
func FromHex(rgb uint32) Color {
	return Color((rgb&0xFFFFFF)<<blueShift | alphaMask)
}

func (c Color) R() uint8 { return uint8(c >> redShift) }
func (c Color) G() uint8 { return uint8(c >> greenShift) }
func (c Color) B() uint8 { return uint8(c >> blueShift) }
func (c Color) A() uint8 { return uint8(c) }

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R(), c.G(), c.B()} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0F]
	}
	return string(buf)
}

type FrameBuffer struct {
	width  int
	height int
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer with the specified size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: make([]uint32, width*height),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

func (fb *FrameBuffer) GetPixel(x, y int) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y int, color Color) {
	fb.buffer[y*fb.width+x] = uint32(color)
}

// Clear sets every pixel to color.
func (fb *FrameBuffer) Clear(color Color) {
	for i := range fb.buffer {
		fb.buffer[i] = uint32(color)
	}
}

// FillRect paints a w*h rectangle pixel by pixel, clipped to the buffer.
func (fb *FrameBuffer) FillRect(x, y, w, h int, color Color) {
	x0, y0, x1, y1, ok := fb.clip(x, y, w, h)
	if !ok {
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fb.SetPixel(px, py, color)
		}
	}
}

// Blit copies src with its top left corner at (x, y), one row at a time,
// clipped to the buffer.
func (fb *FrameBuffer) Blit(src *FrameBuffer, x, y int) {
	x0, y0, x1, y1, ok := fb.clip(x, y, src.width, src.height)
	if !ok {
		return
	}
	for py := y0; py < y1; py++ {
		srcRow := (py-y)*src.width + (x0 - x)
		dstRow := py*fb.width + x0
		copy(fb.buffer[dstRow:dstRow+(x1-x0)], src.buffer[srcRow:srcRow+(x1-x0)])
	}
}

func (fb *FrameBuffer) clip(x, y, w, h int) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+w, fb.width), min(y+h, fb.height)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}
