/*
Package isotile is a library for slicing an image into diamond shaped tiles
for isometric map engines.

The image is covered by a staggered grid of tiles where each row overlaps the
previous by half a tile height and every other row is shifted by half a tile
width. Tiles that end up a single color are dropped, the rest are numbered in
row-major order and described by a Layout that places them back together.
*/
package isotile

import (
	"image"
	"io/ioutil"
	"log"

	"github.com/bodgit/isotile/diamond"
)

// Tile is a retained slice of the source image.
type Tile struct {
	Image *image.NRGBA
	Row   int
	Col   int
	// Offset is the position of the tile's top-left corner in the source
	Offset image.Point
	// Index is the sequential tile number used for the output filename
	Index int
}

// Slicer slices images using a fixed configuration.
type Slicer struct {
	config  Config
	shape   *diamond.Diamond
	logger  *log.Logger
	workers int
}

// New returns a Slicer for the configuration c.
func New(c Config, logger *log.Logger) (*Slicer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	return &Slicer{
		config:  c,
		shape:   diamond.New(c.TileWidth, c.TileHeight),
		logger:  logger,
		workers: workers,
	}, nil
}

// Config returns the configuration the Slicer was created with.
func (s *Slicer) Config() Config {
	return s.config
}

// Shape returns the tile shape.
func (s *Slicer) Shape() *diamond.Diamond {
	return s.shape
}

// Process loads the image at path, slices it and saves the tiles and layout
// with w. Nothing is written if the image cannot be loaded.
func (s *Slicer) Process(path string, w *Writer) ([]Tile, *Layout, error) {
	m, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	tiles, err := s.Slice(m)
	if err != nil {
		return nil, nil, err
	}

	l := s.Layout(tiles)
	if err := w.Save(tiles, l); err != nil {
		return nil, nil, err
	}

	return tiles, l, nil
}
