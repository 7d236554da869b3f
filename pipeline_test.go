package isotile

import (
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/isotile/diamond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedCells returns the cells whose diamond covers more than one color
// of m.
func expectedCells(m *image.NRGBA, tileWidth, tileHeight int) map[image.Point]bool {
	shape := diamond.New(tileWidth, tileHeight)
	b := m.Bounds()
	cols, rows := GridSize(b.Dx(), b.Dy(), tileWidth, tileHeight)

	cells := make(map[image.Point]bool)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			offset := CellOffset(row, col, tileWidth, tileHeight)
			colors := make(map[color.NRGBA]struct{})
			for y := 0; y < tileHeight; y++ {
				for x := 0; x < tileWidth; x++ {
					p := image.Pt(x, y)
					if p.Add(offset).In(b) && shape.Contains(p) {
						colors[m.NRGBAAt(offset.X+x, offset.Y+y)] = struct{}{}
					}
				}
			}
			if len(colors) > 1 {
				cells[image.Pt(col, row)] = true
			}
		}
	}
	return cells
}

func TestSliceCheckerboard(t *testing.T) {
	m := checkerboard(220, 156, 110, 78, red, blue)

	c := DefaultConfig()
	c.StartIndex = 5
	s, err := New(c, nil)
	require.Nil(t, err)

	tiles, err := s.Slice(m)
	require.Nil(t, err)

	expected := expectedCells(m, 110, 78)
	require.NotEmpty(t, tiles)
	assert.Len(t, tiles, len(expected))

	for i, tile := range tiles {
		assert.True(t, expected[image.Pt(tile.Col, tile.Row)], "row %d col %d", tile.Row, tile.Col)
		assert.Equal(t, 5+i, tile.Index)
		assert.Equal(t, CellOffset(tile.Row, tile.Col, 110, 78), tile.Offset)
		if i > 0 {
			prev := tiles[i-1]
			assert.True(t, prev.Row < tile.Row || (prev.Row == tile.Row && prev.Col < tile.Col), "tiles out of order")
		}
	}

	// Wholly inside the top-left block
	assert.False(t, expected[image.Pt(0, 1)])
	// Centred on the point where all four blocks meet
	assert.True(t, expected[image.Pt(1, 2)])
}

func TestSliceUniform(t *testing.T) {
	s, err := New(DefaultConfig(), nil)
	require.Nil(t, err)

	tiles, err := s.Slice(uniform(220, 156, red))
	require.Nil(t, err)
	assert.Empty(t, tiles)
}

func TestSliceWorkers(t *testing.T) {
	m := checkerboard(640, 480, 37, 23, red, blue)

	var results [][]Tile
	for _, workers := range []int{0, 1, 3, 16} {
		c := DefaultConfig()
		c.TileWidth, c.TileHeight = 64, 32
		c.Workers = workers
		s, err := New(c, nil)
		require.Nil(t, err)

		tiles, err := s.Slice(m)
		require.Nil(t, err)
		results = append(results, tiles)
	}

	for _, tiles := range results[1:] {
		require.Len(t, tiles, len(results[0]))
		for i := range tiles {
			assert.Equal(t, results[0][i].Row, tiles[i].Row)
			assert.Equal(t, results[0][i].Col, tiles[i].Col)
			assert.Equal(t, results[0][i].Index, tiles[i].Index)
			assert.Equal(t, results[0][i].Image.Pix, tiles[i].Image.Pix)
		}
	}
}

func TestNewInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.TileWidth = 1
	_, err := New(c, nil)
	assert.NotNil(t, err)
}
