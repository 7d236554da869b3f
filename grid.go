package isotile

import "image"

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// GridSize returns the number of columns and rows of tiles needed to cover
// an image. Rows overlap by half a tile height so there are twice as many
// plus one, and an extra column covers the half tile shift of even rows.
func GridSize(imageWidth, imageHeight, tileWidth, tileHeight int) (cols, rows int) {
	cols = ceilDiv(imageWidth, tileWidth) + 1
	rows = 2*ceilDiv(imageHeight, tileHeight) + 1
	return
}

// CellOffset returns the position in the source image of the top-left corner
// of the tile at row, col. Even rows are shifted left by half a tile width
// and every row starts half a tile height further down than the previous.
func CellOffset(row, col, tileWidth, tileHeight int) image.Point {
	x := col * tileWidth
	y := row*(tileHeight/2) - tileHeight/2

	if row%2 == 0 {
		x -= tileWidth / 2
	}

	return image.Pt(x, y)
}
