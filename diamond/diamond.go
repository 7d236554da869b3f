/*
Package diamond models the diamond shaped tile used by isometric map engines.

A tile of width w and height h is a rhombus inscribed in its w by h bounding
box with a vertex at the midpoint of each side. The four edges are
rasterized once per tile size and every pixel of the bounding box can be
classified as inside or outside the tile.
*/
package diamond

import (
	"image"
	"image/color"

	"github.com/bodgit/isotile/bresenham"
)

// Boundary holds the rasterized edges of a tile. Each edge starts at the
// left or right anchor and finishes at the top or bottom anchor.
type Boundary struct {
	LeftTop     []image.Point
	LeftBottom  []image.Point
	RightTop    []image.Point
	RightBottom []image.Point
}

// Diamond is an immutable tile shape for a given size. It is safe for
// concurrent use.
type Diamond struct {
	width, height int

	top, left, right, bottom image.Point

	boundary Boundary

	// Vertices in left, bottom, right, top order, pushed one pixel outwards
	polygon [4]image.Point
}

// New returns the tile shape for a width by height bounding box.
func New(width, height int) *Diamond {
	d := &Diamond{
		width:  width,
		height: height,
		top:    image.Pt(width/2, 0),
		left:   image.Pt(0, height/2),
		right:  image.Pt(width-1, height/2),
		bottom: image.Pt(width/2, height-1),
	}

	d.boundary = Boundary{
		LeftTop:     bresenham.Line(d.left, d.top),
		LeftBottom:  bresenham.Line(d.left, d.bottom),
		RightTop:    bresenham.Line(d.right, d.top),
		RightBottom: bresenham.Line(d.right, d.bottom),
	}

	d.polygon = [4]image.Point{
		image.Pt(-1, height/2),
		image.Pt(width/2, height),
		image.Pt(width, height/2),
		image.Pt(width/2, -1),
	}

	return d
}

// Size returns the bounding box dimensions.
func (d *Diamond) Size() image.Point {
	return image.Pt(d.width, d.height)
}

// Bounds returns the bounding box of the tile.
func (d *Diamond) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Anchors returns the top, left, right and bottom extreme points.
func (d *Diamond) Anchors() (top, left, right, bottom image.Point) {
	return d.top, d.left, d.right, d.bottom
}

// Boundary returns the rasterized edges.
func (d *Diamond) Boundary() Boundary {
	return d.boundary
}

// Contains reports whether the pixel p, relative to the top-left corner of
// the bounding box, lies inside the tile. A horizontal ray is cast from p and
// the crossings with each polygon edge are counted; an edge is crossed only
// when p.Y is in the half-open interval (min y, max y] so a shared vertex is
// never counted twice.
func (d *Diamond) Contains(p image.Point) bool {
	inside := false

	p1 := d.polygon[0]
	for i := 1; i <= len(d.polygon); i++ {
		p2 := d.polygon[i%len(d.polygon)]

		if p.Y > min(p1.Y, p2.Y) && p.Y <= max(p1.Y, p2.Y) && p.X < max(p1.X, p2.X) {
			x := float64(p.Y-p1.Y)*float64(p2.X-p1.X)/float64(p2.Y-p1.Y) + float64(p1.X)
			if float64(p.X) < x {
				inside = !inside
			}
		}

		p1 = p2
	}

	return inside
}

// Outline returns an image of the bounding box with only the four edges
// drawn in c, everything else is transparent.
func (d *Diamond) Outline(c color.Color) *image.NRGBA {
	m := image.NewNRGBA(d.Bounds())
	for _, edge := range [][]image.Point{d.boundary.LeftTop, d.boundary.RightTop, d.boundary.RightBottom, d.boundary.LeftBottom} {
		for _, p := range edge {
			m.Set(p.X, p.Y, c)
		}
	}
	return m
}
