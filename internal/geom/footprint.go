package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Footprint turns the wall segment start→end into a closed rectangular
// ring of thickness t with square end caps: the rectangle extends exactly
// to the segment endpoints, never beyond. The four corners are emitted in
// a fixed order (right-of-start, right-of-end, left-of-end, left-of-start
// relative to the segment direction) so the ring always winds
// counter-clockwise. wall tags any error with the originating wall index.
func Footprint(start, end r2.Vec, t float64, wall int) (Ring, error) {
	input := fmt.Sprintf("[[%g %g] [%g %g]]", start.X, start.Y, end.X, end.Y)
	if start == end {
		return nil, geomErr(wall, input, "zero-length segment")
	}
	if t <= 0 {
		return nil, geomErr(wall, input, "thickness must be positive, got %g", t)
	}
	d := r2.Sub(end, start)
	n := r2.Norm(d)
	// left-hand unit normal of the segment direction
	left := r2.Vec{X: -d.Y / n, Y: d.X / n}
	h := r2.Scale(t/2, left)
	return Ring{
		r2.Sub(start, h),
		r2.Sub(end, h),
		r2.Add(end, h),
		r2.Add(start, h),
	}, nil
}
