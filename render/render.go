// Package render describes what a figure backend must be able to draw
// for a parallel-coordinate plot, so the geometry can be built without
// knowing which plotting library ends up putting it on a page.
//
// Everything is given in frame coordinates: x runs over [0, k-1] for k
// axes and y over [0, 1], bottom to top.
package render

import (
	"image/color"

	"github.com/HamletTheHamster/statplot/geom"
)

// Renderer is the drawing capability a backend provides.
type Renderer interface {
	// Title sets the figure title.
	Title(text string)
	// Axis draws one vertical axis with its name and labeled ticks.
	Axis(a Axis)
	// Curve draws a piecewise cubic path.
	Curve(p geom.Path, s Style)
	// Legend adds one legend entry drawn with s.
	Legend(label string, s Style)
}

// Style is the stroke used for a curve or a legend entry.
type Style struct {
	Color color.Color
	// Width is the line width in points.
	Width float64
	// Alpha multiplies the colour's opacity; 0 means opaque.
	Alpha float64
}

// RGBA returns the style colour with Alpha applied.
func (s Style) RGBA() color.NRGBA {
	c := color.NRGBA{A: 255}
	if s.Color != nil {
		c = color.NRGBAModel.Convert(s.Color).(color.NRGBA)
	}
	if s.Alpha > 0 && s.Alpha < 1 {
		c.A = uint8(float64(c.A) * s.Alpha)
	}
	return c
}

// Tick is one labeled mark on an axis. Pos is in frame y units.
type Tick struct {
	Pos   float64
	Label string
}

// Axis is a vertical axis placed at frame x position X.
type Axis struct {
	X     float64
	Name  string
	Ticks []Tick
}
