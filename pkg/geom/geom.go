// Package geom is the 2D kernel used by every pattern generator.
//
// Points are [github.com/jbeda/geom] coordinates; angles are in degrees,
// counter-clockwise from the positive x-axis. All functions are pure.
package geom

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/matzehuels/foldcut/pkg/errors"
)

// Point is a position or a displacement in the drawing plane.
type Point = geom.Coord

// Rect is an axis-aligned bounding box.
type Rect = geom.Rect

// Epsilon is the tolerance used by [AlmostEqual].
const Epsilon = 1e-9

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Direction returns the unit vector for angle deg.
func Direction(deg float64) Point {
	r := Radians(deg)
	return Point{X: math.Cos(r), Y: math.Sin(r)}
}

// At returns origin + distance·(cos, sin) of angle deg. A negative distance
// walks in the reverse direction.
func At(origin Point, distance, deg float64) Point {
	return origin.Plus(Direction(deg).Times(distance))
}

// Add returns a + b.
func Add(a, b Point) Point {
	return a.Plus(b)
}

// Sub returns a - b.
func Sub(a, b Point) Point {
	return a.Minus(b)
}

// Scale returns v·s.
func Scale(v Point, s float64) Point {
	return v.Times(s)
}

// Normalize returns the unit vector pointing along v. A zero-length v is a
// numeric domain error.
func Normalize(v Point) (Point, error) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) {
		return Point{}, errors.New(errors.ErrCodeDegenerateGeometry, "cannot normalize zero-length vector (%g, %g)", v.X, v.Y)
	}
	return v.Times(1 / m), nil
}

// AlmostEqual reports whether a and b are within Epsilon on both axes.
func AlmostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// Bounds returns the smallest rectangle containing every point. It returns
// the zero rect when pts is empty.
func Bounds(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// LateralOffset returns the signed distance of p from the line through
// origin at angle deg, positive on the left (deg+90) side.
func LateralOffset(origin Point, deg float64, p Point) float64 {
	n := Direction(deg + 90)
	d := p.Minus(origin)
	return d.X*n.X + d.Y*n.Y
}
