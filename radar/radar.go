// Package radar draws radar charts: one spoke per variable, evenly
// spaced around a circle from 12 o'clock counter-clockwise, with the
// frame and radial grid drawn either as circles or as regular polygons.
package radar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var (
	// ErrFrame is returned for an unknown frame name.
	ErrFrame = errors.New("radar: unknown frame")
	// ErrSpokes is returned when a chart has fewer than three spokes or
	// when labels or values do not match the number of spokes.
	ErrSpokes = errors.New("radar: spoke count mismatch")
)

// Frame is the shape of the chart's outline and grid rings.
type Frame int

const (
	Circle Frame = iota
	Polygon
)

func (f Frame) String() string {
	switch f {
	case Circle:
		return "circle"
	case Polygon:
		return "polygon"
	}
	return fmt.Sprintf("Frame(%d)", int(f))
}

// ParseFrame parses "circle" or "polygon".
func ParseFrame(s string) (Frame, error) {
	switch s {
	case "circle":
		return Circle, nil
	case "polygon":
		return Polygon, nil
	}
	return 0, fmt.Errorf("%w %q: want circle or polygon", ErrFrame, s)
}

// Angles returns the angles of n evenly spaced spokes in radians,
// measured counter-clockwise from 12 o'clock.
func Angles(n int) []float64 {
	theta := make([]float64, n)
	for k := range theta {
		theta[k] = 2 * math.Pi * float64(k) / float64(n)
	}
	return theta
}

// project places radius r on the spoke at angle theta.
func project(theta, r float64) (x, y float64) {
	return -r * math.Sin(theta), r * math.Cos(theta)
}

// Series is one profile drawn on a chart.
type Series struct {
	Name   string
	Values []float64
	Color  color.Color
}

// Chart is one radar panel with a fixed number of spokes.
type Chart struct {
	n      int
	frame  Frame
	theta  []float64
	title  string
	labels []string
	grids  []float64
	rmax   float64
	series []Series
}

// New returns a chart with n spokes.
func New(n int, frame Frame) (*Chart, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 spokes, have %d", ErrSpokes, n)
	}
	if frame != Circle && frame != Polygon {
		return nil, fmt.Errorf("%w %v", ErrFrame, frame)
	}
	return &Chart{n: n, frame: frame, theta: Angles(n)}, nil
}

// N returns the number of spokes.
func (c *Chart) N() int { return c.n }

// Frame returns the frame shape.
func (c *Chart) Frame() Frame { return c.frame }

// Theta returns the spoke angles.
func (c *Chart) Theta() []float64 { return slices.Clone(c.theta) }

// SetTitle sets the panel title.
func (c *Chart) SetTitle(title string) { c.title = title }

// SetVarLabels names the spokes in order.
func (c *Chart) SetVarLabels(labels []string) error {
	if len(labels) != c.n {
		return fmt.Errorf("%w: %d labels for %d spokes", ErrSpokes, len(labels), c.n)
	}
	c.labels = slices.Clone(labels)
	return nil
}

// SetRGrids sets the radii of the grid rings. Non-positive radii are
// accepted and skipped when drawing.
func (c *Chart) SetRGrids(grids []float64) error {
	for _, g := range grids {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("radar: grid radius %v", g)
		}
	}
	c.grids = slices.Clone(grids)
	slices.Sort(c.grids)
	return nil
}

// SetRMax fixes the outer radius. Zero picks one from the data and
// grids.
func (c *Chart) SetRMax(r float64) { c.rmax = r }

// RMax returns the outer radius: the value set by SetRMax, or the
// largest value or grid radius rounded up to a tenth.
func (c *Chart) RMax() float64 {
	if c.rmax > 0 {
		return c.rmax
	}
	m := 0.0
	for _, g := range c.grids {
		m = max(m, g)
	}
	for _, s := range c.series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	if m == 0 {
		return 1
	}
	return math.Ceil(m*10) / 10
}

// Add adds a series. A nil color picks the next default color.
func (c *Chart) Add(name string, values []float64, clr color.Color) error {
	if len(values) != c.n {
		return fmt.Errorf("%w: %d values for %d spokes", ErrSpokes, len(values), c.n)
	}
	if clr == nil {
		clr = DefaultColors[len(c.series)%len(DefaultColors)]
	}
	c.series = append(c.series, Series{Name: name, Values: slices.Clone(values), Color: clr})
	return nil
}

// Series returns the added series.
func (c *Chart) Series() []Series { return slices.Clone(c.series) }

// Vertices projects one value per spoke to data coordinates. Negative
// values are drawn at the center.
func (c *Chart) Vertices(values []float64) (plotter.XYs, error) {
	if len(values) != c.n {
		return nil, fmt.Errorf("%w: %d values for %d spokes", ErrSpokes, len(values), c.n)
	}
	xys := make(plotter.XYs, c.n)
	for k, v := range values {
		xys[k].X, xys[k].Y = project(c.theta[k], max(v, 0))
	}
	return xys, nil
}

// ring returns the outline at radius r.
func (c *Chart) ring(r float64) plotter.XYs {
	if c.frame == Polygon {
		xys := make(plotter.XYs, c.n+1)
		for k := range xys {
			xys[k].X, xys[k].Y = project(c.theta[k%c.n], r)
		}
		return xys
	}
	xys := make(plotter.XYs, circleSteps+1)
	for k, theta := range circleAngles {
		xys[k].X, xys[k].Y = project(theta, r)
	}
	return xys
}

// Plot draws the chart.
func (c *Chart) Plot() (*plot.Plot, error) {
	if c.labels == nil {
		c.labels = make([]string, c.n)
	}
	rmax := c.RMax()

	p := prepPlot(c.title)
	p.Add(&framePlotter{chart: c, rmax: rmax})

	for _, s := range c.series {
		xys, err := c.Vertices(s.Values)
		if err != nil {
			return nil, err
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, fmt.Errorf("radar: series %q: %w", s.Name, err)
		}
		poly.LineStyle.Color = s.Color
		poly.LineStyle.Width = seriesWidth
		poly.Color = fillColor(s.Color)
		p.Add(poly)
		if s.Name != "" {
			p.Legend.Add(s.Name, poly)
		}
	}
	return p, nil
}
