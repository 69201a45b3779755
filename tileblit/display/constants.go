package display

// Tile grid defaults
const (
	// DefaultTileWidth is the width of a tile in pixels
	DefaultTileWidth = 28
	// DefaultTileHeight is the height of a tile in pixels
	DefaultTileHeight = 42
	// DefaultTilesX is the number of tile columns
	DefaultTilesX = 35
	// DefaultTilesY is the number of tile rows
	DefaultTilesY = 17
	// DefaultTilesZ is the number of stacked tile layers
	DefaultTilesZ = 1
	// DefaultSeed seeds tile color generation
	DefaultSeed = 42
)

// Frame rate defaults
const (
	// DefaultTargetFPS is the frame rate the limiters aim for
	DefaultTargetFPS = 20
	// MinFrameDelayMs is the shortest wait the delay limiter schedules
	MinFrameDelayMs = 1
)

// Stress scene defaults
const (
	// StressFrameSize is the side of the square stress frame
	StressFrameSize = 100
	// DefaultStressCount is how many times the stress tile is drawn per frame
	DefaultStressCount = 5000
)

// Timer names
const (
	// FPSTimer measures the interval between completed frames
	FPSTimer = "FPS"
	// PaintTimer measures the time spent painting a frame
	PaintTimer = "Paint"
)

// RGBA pixel format constants
const (
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
)

// Backend scaling and window constants
const (
	// DefaultPixelScale is the default scaling factor for window backends
	DefaultPixelScale = 1
	// HeadlessProgressFrames is the interval of headless progress logs
	HeadlessProgressFrames = 10
)
