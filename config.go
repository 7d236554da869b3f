package isotile

import (
	"errors"
	"fmt"
	"image/color"
	"io/ioutil"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTileWidth is the width of a tile unless configured otherwise
	DefaultTileWidth = 110
	// DefaultTileHeight is the height of a tile unless configured otherwise
	DefaultTileHeight = 78
	// DefaultFilenameFormat numbers each tile with a plain integer
	DefaultFilenameFormat = "%d"

	minTileSize = 2
)

// Config controls how an image is sliced. It is passed by value; changing
// the tile size means building a new Slicer.
type Config struct {
	TileWidth  int
	TileHeight int
	// Background fills any tile pixel not copied from the source image
	Background color.NRGBA
	// FilenameFormat is a fmt format string given the tile number, the
	// ".png" extension is appended
	FilenameFormat string
	StartIndex     int
	// Workers is the number of goroutines extracting grid rows
	Workers int
}

// DefaultConfig returns the default configuration: 110 by 78 pixel tiles on
// a transparent background numbered from zero.
func DefaultConfig() Config {
	return Config{
		TileWidth:      DefaultTileWidth,
		TileHeight:     DefaultTileHeight,
		FilenameFormat: DefaultFilenameFormat,
		Workers:        runtime.NumCPU(),
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.TileWidth < minTileSize || c.TileHeight < minTileSize {
		return fmt.Errorf("tile size %dx%d is smaller than %dx%d", c.TileWidth, c.TileHeight, minTileSize, minTileSize)
	}
	if c.StartIndex < 0 {
		return errors.New("starting index is negative")
	}
	// Each tile number must give a different, well formed name
	first, second := fmt.Sprintf(c.FilenameFormat, 0), fmt.Sprintf(c.FilenameFormat, 1)
	if first == second || strings.Contains(first, "%!") {
		return fmt.Errorf("filename format %q does not number tiles", c.FilenameFormat)
	}
	return nil
}

// Filename returns the output filename for tile number n.
func (c Config) Filename(n int) string {
	return fmt.Sprintf(c.FilenameFormat, n) + ".png"
}

type yamlConfig struct {
	TileWidth      *int    `yaml:"tile_width"`
	TileHeight     *int    `yaml:"tile_height"`
	Background     *string `yaml:"background"`
	FilenameFormat *string `yaml:"filename_format"`
	StartIndex     *int    `yaml:"start_index"`
	Workers        *int    `yaml:"workers"`
}

// LoadConfig reads a YAML configuration file. Any key not present keeps its
// default value.
func LoadConfig(file string) (Config, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// ParseConfig parses YAML configuration over the defaults.
func ParseConfig(b []byte) (Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	c := DefaultConfig()
	if y.TileWidth != nil {
		c.TileWidth = *y.TileWidth
	}
	if y.TileHeight != nil {
		c.TileHeight = *y.TileHeight
	}
	if y.Background != nil {
		bg, err := ParseColor(*y.Background)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		c.Background = bg
	}
	if y.FilenameFormat != nil {
		c.FilenameFormat = *y.FilenameFormat
	}
	if y.StartIndex != nil {
		c.StartIndex = *y.StartIndex
	}
	if y.Workers != nil {
		c.Workers = *y.Workers
	}

	return c, nil
}
