package tiles

import (
	"fmt"
	"math/rand/v2"

	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// GridConfig describes the grid layout.
type GridConfig struct {
	TilesX     int
	TilesY     int
	TilesZ     int
	TileWidth  int
	TileHeight int
	Seed       uint64
}

// DefaultGridConfig returns the 35x17 grid of 28x42 tiles.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		TilesX:     display.DefaultTilesX,
		TilesY:     display.DefaultTilesY,
		TilesZ:     display.DefaultTilesZ,
		TileWidth:  display.DefaultTileWidth,
		TileHeight: display.DefaultTileHeight,
		Seed:       display.DefaultSeed,
	}
}

// Validate rejects layouts that cannot be drawn.
func (c GridConfig) Validate() error {
	if c.TilesX <= 0 || c.TilesY <= 0 || c.TilesZ <= 0 {
		return fmt.Errorf("grid needs at least one tile per axis, got %dx%dx%d", c.TilesX, c.TilesY, c.TilesZ)
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %dx%d", c.TileWidth, c.TileHeight)
	}
	return nil
}

// PixelSize returns the frame size needed to hold the grid.
func (c GridConfig) PixelSize() (width, height int) {
	return c.TilesX * c.TileWidth, c.TilesY * c.TileHeight
}

// Grid holds TilesX*TilesY*TilesZ tiles. Layers share positions.
type Grid struct {
	config GridConfig
	tiles  []*Tile
}

// NewGrid creates the tiles with colors drawn from a generator seeded with
// config.Seed, so the same seed always yields the same grid.
func NewGrid(config GridConfig) (*Grid, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng := NewColorSource(config.Seed)
	g := &Grid{
		config: config,
		tiles:  make([]*Tile, 0, config.TilesX*config.TilesY*config.TilesZ),
	}
	for x := 0; x < config.TilesX; x++ {
		for y := 0; y < config.TilesY; y++ {
			for z := 0; z < config.TilesZ; z++ {
				g.tiles = append(g.tiles, NewTile(
					x*config.TileWidth, y*config.TileHeight,
					config.TileWidth, config.TileHeight,
					rng.Next(),
				))
			}
		}
	}
	return g, nil
}

func (g *Grid) Config() GridConfig {
	return g.config
}

// Tiles returns the tiles in paint order (x, then y, then z).
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// Tile returns the tile at grid coordinates, or nil when out of range.
func (g *Grid) Tile(x, y, z int) *Tile {
	c := g.config
	if x < 0 || y < 0 || z < 0 || x >= c.TilesX || y >= c.TilesY || z >= c.TilesZ {
		return nil
	}
	return g.tiles[(x*c.TilesY+y)*c.TilesZ+z]
}

// Paint draws every tile into fb.
func (g *Grid) Paint(fb *video.FrameBuffer, mode Mode) {
	for _, t := range g.tiles {
		t.Paint(fb, mode)
	}
}

// ColorSource yields random opaque colors.
type ColorSource struct {
	rng *rand.Rand
}

func NewColorSource(seed uint64) *ColorSource {
	return &ColorSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Next draws int(r * 0xFFFFFF) for r uniform in [0, 1).
func (s *ColorSource) Next() video.Color {
	return video.FromHex(uint32(s.rng.Float64() * 0xFFFFFF))
}
