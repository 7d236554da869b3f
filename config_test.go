package isotile

import (
	"image/color"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 110, c.TileWidth)
	assert.Equal(t, 78, c.TileHeight)
	assert.Equal(t, Transparent, c.Background)
	assert.Equal(t, 0, c.StartIndex)
	assert.True(t, c.Workers > 0)
	assert.Nil(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	tables := []struct {
		modify func(*Config)
		valid  bool
	}{
		{func(c *Config) {}, true},
		{func(c *Config) { c.TileWidth = 1 }, false},
		{func(c *Config) { c.TileHeight = 0 }, false},
		{func(c *Config) { c.TileWidth, c.TileHeight = 2, 2 }, true},
		{func(c *Config) { c.StartIndex = -1 }, false},
		{func(c *Config) { c.FilenameFormat = "tile" }, false},
		{func(c *Config) { c.FilenameFormat = "tile_%03d" }, true},
		{func(c *Config) { c.FilenameFormat = "tile%%" }, false},
		{func(c *Config) { c.FilenameFormat = "%s" }, false},
		{func(c *Config) { c.FilenameFormat = "%d_%d" }, false},
		{func(c *Config) { c.FilenameFormat = "%x" }, true},
	}

	for i, table := range tables {
		c := DefaultConfig()
		table.modify(&c)
		if table.valid {
			assert.Nil(t, c.Validate(), "case %d", i)
		} else {
			assert.NotNil(t, c.Validate(), "case %d", i)
		}
	}
}

func TestConfigFilename(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "7.png", c.Filename(7))

	c.FilenameFormat = "tile_%03d"
	assert.Equal(t, "tile_042.png", c.Filename(42))
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
tile_width: 64
tile_height: 32
background: "#102030"
filename_format: "iso_%d"
start_index: 100
`))
	require.Nil(t, err)

	assert.Equal(t, 64, c.TileWidth)
	assert.Equal(t, 32, c.TileHeight)
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0xff}, c.Background)
	assert.Equal(t, "iso_%d", c.FilenameFormat)
	assert.Equal(t, 100, c.StartIndex)
	assert.Equal(t, DefaultConfig().Workers, c.Workers)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("tile_width: [1, 2]"))
	assert.NotNil(t, err)

	_, err = ParseConfig([]byte("background: purple"))
	assert.NotNil(t, err)
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "isotile.yaml")
	require.Nil(t, ioutil.WriteFile(file, []byte("tile_height: 40\nworkers: 2\n"), 0644))

	c, err := LoadConfig(file)
	require.Nil(t, err)
	assert.Equal(t, 110, c.TileWidth)
	assert.Equal(t, 40, c.TileHeight)
	assert.Equal(t, 2, c.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
