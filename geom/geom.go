// Package geom holds the small amount of 2D geometry the plots need:
// points, cubic Bezier segments and piecewise cubic paths.
package geom

import "math"

// Point is a position in whatever coordinate frame the caller is using.
type Point struct {
	X, Y float64
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X*(1-t) + q.X*t, Y: p.Y*(1-t) + q.Y*t}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Cubic is a cubic Bezier segment. P0 and P3 lie on the curve, P1 and
// P2 only pull it.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// At evaluates the segment at t in [0, 1] by De Casteljau subdivision.
func (c Cubic) At(t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)

	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)

	return ab.Lerp(bd, t)
}

// Map applies f to every control point.
func (c Cubic) Map(f func(Point) Point) Cubic {
	return Cubic{P0: f(c.P0), P1: f(c.P1), P2: f(c.P2), P3: f(c.P3)}
}
