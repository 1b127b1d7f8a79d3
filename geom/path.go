package geom

import "fmt"

// Path is a piecewise cubic curve stored as its control vertices: the
// start point followed by three vertices (two control points and an
// on-curve end point) per segment. A path with n segments therefore
// has 3n+1 vertices.
type Path struct {
	Vertices []Point
}

// NewPath checks that vs has the 3n+1 layout and wraps it.
func NewPath(vs []Point) (Path, error) {
	if len(vs) < 4 || (len(vs)-1)%3 != 0 {
		return Path{}, fmt.Errorf("geom: path needs 3n+1 vertices, got %d", len(vs))
	}
	return Path{Vertices: vs}, nil
}

// Len returns the number of cubic segments.
func (p Path) Len() int {
	if len(p.Vertices) < 4 {
		return 0
	}
	return (len(p.Vertices) - 1) / 3
}

// Segment returns the i'th cubic segment.
func (p Path) Segment(i int) Cubic {
	v := p.Vertices[3*i:]
	return Cubic{P0: v[0], P1: v[1], P2: v[2], P3: v[3]}
}

// Start returns the first vertex.
func (p Path) Start() Point {
	return p.Vertices[0]
}

// End returns the last vertex.
func (p Path) End() Point {
	return p.Vertices[len(p.Vertices)-1]
}

// Map returns a copy of p with f applied to every vertex. Cubic Beziers
// are closed under affine maps, so mapping the vertices with an affine f
// maps the curve.
func (p Path) Map(f func(Point) Point) Path {
	vs := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		vs[i] = f(v)
	}
	return Path{Vertices: vs}
}

// Flatten approximates p by a polyline with steps points per segment
// plus the start point.
func (p Path) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	n := p.Len()
	if n == 0 {
		return append([]Point(nil), p.Vertices...)
	}

	pts := make([]Point, 0, n*steps+1)
	pts = append(pts, p.Start())
	for i := 0; i < n; i++ {
		seg := p.Segment(i)
		for s := 1; s <= steps; s++ {
			pts = append(pts, seg.At(float64(s)/float64(steps)))
		}
	}
	return pts
}
