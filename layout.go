package isotile

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gopkg.in/yaml.v3"
)

// GridColor is used to draw the tile outline in the debug grid image
var GridColor = color.NRGBA{0, 255, 0, 100}

// Placement positions one tile in the reassembled overlay.
type Placement struct {
	Filename string `yaml:"file"`
	Title    string `yaml:"title"`
	Index    int    `yaml:"index"`
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	Top      int    `yaml:"top"`
	Left     int    `yaml:"left"`
}

// Layout describes how to put the tiles back together. Positions are in an
// overlay space twice the scale of the source offsets, shifted by one tile
// so the half tile offset of even rows never goes negative.
type Layout struct {
	TileWidth  int
	TileHeight int
	// Width and Height are the extent of the overlay
	Width      int
	Height     int
	Background color.NRGBA
	Placements []Placement

	// Grid is a single tile outline to overlay for checking alignment
	Grid *image.NRGBA
}

// placement returns the overlay position of a tile whose top-left corner is
// at offset in the source image.
func placement(offset image.Point, tileWidth, tileHeight int) (top, left int) {
	return offset.Y*2 + tileHeight, offset.X*2 + tileWidth
}

// Layout returns the layout of tiles, which must be in the order they were
// returned by Slice.
func (s *Slicer) Layout(tiles []Tile) *Layout {
	return NewLayout(tiles, s.config, s.shape.Outline(GridColor))
}

// NewLayout returns the layout of tiles using the tile size, background and
// filenames from c. grid is the debug outline image.
func NewLayout(tiles []Tile, c Config, grid *image.NRGBA) *Layout {
	l := &Layout{
		TileWidth:  c.TileWidth,
		TileHeight: c.TileHeight,
		Background: c.Background,
		Placements: make([]Placement, 0, len(tiles)),
		Grid:       grid,
	}

	for _, t := range tiles {
		top, left := placement(t.Offset, c.TileWidth, c.TileHeight)
		name := c.Filename(t.Index)
		l.Placements = append(l.Placements, Placement{
			Filename: name,
			Title:    fmt.Sprintf("%s (%d, %d)", name, t.Col, t.Row),
			Index:    t.Index,
			Row:      t.Row,
			Col:      t.Col,
			Top:      top,
			Left:     left,
		})
		if r := left + c.TileWidth; r > l.Width {
			l.Width = r
		}
		if b := top + c.TileHeight; b > l.Height {
			l.Height = b
		}
	}

	return l
}

type manifest struct {
	TileWidth  int         `yaml:"tile_width"`
	TileHeight int         `yaml:"tile_height"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Background string      `yaml:"background"`
	Grid       string      `yaml:"grid,omitempty"`
	Tiles      []Placement `yaml:"tiles"`
}

// WriteYAML writes the layout as a YAML manifest. grid is the filename of the
// debug grid image, if any.
func (l *Layout) WriteYAML(w io.Writer, grid string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(manifest{
		TileWidth:  l.TileWidth,
		TileHeight: l.TileHeight,
		Width:      l.Width,
		Height:     l.Height,
		Background: cssColor(l.Background),
		Grid:       grid,
		Tiles:      l.Placements,
	}); err != nil {
		return err
	}
	return enc.Close()
}
