package isotile

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tables := []struct {
		s    string
		want color.NRGBA
		ok   bool
	}{
		{"transparent", Transparent, true},
		{" Transparent ", Transparent, true},
		{"#ff0000", color.NRGBA{0xff, 0x00, 0x00, 0xff}, true},
		{"#00ff0080", color.NRGBA{0x00, 0xff, 0x00, 0x80}, true},
		{"#0000zz", color.NRGBA{}, false},
		{"#000000zz", color.NRGBA{}, false},
		{"blue", color.NRGBA{}, false},
	}

	for _, table := range tables {
		c, err := ParseColor(table.s)
		if table.ok {
			assert.Nil(t, err, table.s)
			assert.Equal(t, table.want, c, table.s)
		} else {
			assert.NotNil(t, err, table.s)
		}
	}
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "transparent", cssColor(Transparent))
	assert.Equal(t, "#ff8000", cssColor(color.NRGBA{0xff, 0x80, 0x00, 0xff}))
	assert.Equal(t, "rgba(0, 0, 255, 0.502)", cssColor(color.NRGBA{0x00, 0x00, 0xff, 0x80}))
}
