package isotile

import (
	"image"
	"image/color"
	"image/draw"
)

// Classifier decides whether a pixel, relative to the top-left corner of a
// tile's bounding box, belongs to the tile.
type Classifier interface {
	Contains(p image.Point) bool
}

// ExtractTile copies the pixels of src that fall inside shape, with the
// tile's top-left corner at offset, into a new width by height image filled
// with background. It returns false if fewer than two distinct colors were
// copied as such a tile carries no information. src is not modified.
func ExtractTile(src image.Image, shape Classifier, offset image.Point, width, height int, background color.Color) (*image.NRGBA, bool) {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	b := src.Bounds()
	origin := b.Min.Add(offset)

	var first color.NRGBA
	copied, distinct := 0, false

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := image.Pt(x, y)
			if !p.Add(origin).In(b) || !shape.Contains(p) {
				continue
			}

			c := color.NRGBAModel.Convert(src.At(origin.X+x, origin.Y+y)).(color.NRGBA)
			m.SetNRGBA(x, y, c)

			if copied == 0 {
				first = c
			} else if c != first {
				distinct = true
			}
			copied++
		}
	}

	return m, distinct
}
