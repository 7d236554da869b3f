// Package bresenham implements integer line stepping with the Bresenham
// algorithm.
package bresenham

import "image"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Line returns the points of the line from origin to target inclusive. Error
// is accumulated for both axes so the result is 8-connected regardless of the
// slope. A zero length line returns just origin.
func Line(origin, target image.Point) []image.Point {
	dx := abs(target.X - origin.X)
	dy := -abs(target.Y - origin.Y)

	sx, sy := 1, 1
	if origin.X > target.X {
		sx = -1
	}
	if origin.Y > target.Y {
		sy = -1
	}

	n := dx
	if -dy > n {
		n = -dy
	}
	points := make([]image.Point, 0, n+1)

	p := origin
	err := dx + dy
	for {
		points = append(points, p)
		if p == target {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}

	return points
}
