package isotile

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSize(t *testing.T) {
	tables := []struct {
		imageWidth, imageHeight int
		tileWidth, tileHeight   int
		cols, rows              int
	}{
		{220, 156, 110, 78, 3, 5},
		{221, 157, 110, 78, 4, 7},
		{1, 1, 110, 78, 2, 3},
		{640, 480, 64, 32, 11, 31},
	}

	for _, table := range tables {
		cols, rows := GridSize(table.imageWidth, table.imageHeight, table.tileWidth, table.tileHeight)
		assert.Equal(t, table.cols, cols)
		assert.Equal(t, table.rows, rows)
	}
}

func TestCellOffset(t *testing.T) {
	tables := []struct {
		row, col int
		want     image.Point
	}{
		{0, 0, image.Pt(-55, -39)},
		{1, 0, image.Pt(0, 0)},
		{2, 0, image.Pt(-55, 39)},
		{2, 1, image.Pt(55, 39)},
		{3, 2, image.Pt(220, 78)},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, CellOffset(table.row, table.col, 110, 78), "row %d col %d", table.row, table.col)
	}
}

func TestGridCoverage(t *testing.T) {
	sizes := []struct {
		imageWidth, imageHeight int
		tileWidth, tileHeight   int
	}{
		{220, 156, 110, 78},
		{301, 97, 110, 78},
		{50, 50, 64, 32},
		{129, 65, 64, 32},
	}

	for _, size := range sizes {
		covered := make([]bool, size.imageWidth*size.imageHeight)
		bounds := image.Rect(0, 0, size.imageWidth, size.imageHeight)

		cols, rows := GridSize(size.imageWidth, size.imageHeight, size.tileWidth, size.tileHeight)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				o := CellOffset(row, col, size.tileWidth, size.tileHeight)
				r := image.Rect(o.X, o.Y, o.X+size.tileWidth, o.Y+size.tileHeight).Intersect(bounds)
				for y := r.Min.Y; y < r.Max.Y; y++ {
					for x := r.Min.X; x < r.Max.X; x++ {
						covered[y*size.imageWidth+x] = true
					}
				}
			}
		}

		for i, ok := range covered {
			if !assert.True(t, ok, "%dx%d pixel (%d, %d) not covered", size.imageWidth, size.imageHeight, i%size.imageWidth, i/size.imageWidth) {
				break
			}
		}
	}
}
