// Package plotrender implements render.Renderer on gonum/plot. Curves
// are stroked as true cubic Beziers and the result can be saved in any
// format gonum/plot infers from a file extension.
package plotrender

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/internal/figio"
	"github.com/HamletTheHamster/statplot/render"
)

// Renderer collects a parallel-coordinate figure into a gonum plot.
type Renderer struct {
	p             *plot.Plot
	width, height vg.Length
	names         []plot.Tick
	maxX          float64
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a renderer for a figure of the given size.
func New(width, height vg.Length) *Renderer {
	return &Renderer{p: prepPlot(), width: width, height: height}
}

func prepPlot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.TextStyle.Font.Size = 18
	p.Title.Padding = font.Length(12)

	// Axis names sit under the axes; the vertical scale is drawn per
	// axis by axisPlotter.
	p.HideY()
	p.X.LineStyle.Width = 0
	p.X.Tick.Length = 0
	p.X.Tick.Label.Font.Size = 14
	p.X.Padding = vg.Points(4)
	p.Y.Min, p.Y.Max = 0, 1

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = 12
	p.Legend.ThumbnailWidth = vg.Points(30)
	p.Legend.Padding = vg.Points(4)
	p.Legend.YOffs = vg.Points(-4)

	return p
}

// Title sets the plot title.
func (r *Renderer) Title(text string) {
	r.p.Title.Text = text
}

// Axis adds one vertical axis.
func (r *Renderer) Axis(a render.Axis) {
	r.p.Add(axisPlotter{Axis: a})
	r.names = append(r.names, plot.Tick{Value: a.X, Label: a.Name})
	r.p.X.Tick.Marker = plot.ConstantTicks(r.names)
	r.maxX = math.Max(r.maxX, a.X)

	// Leave room right of the last axis for its tick labels.
	r.p.X.Min = -0.05 * math.Max(r.maxX, 1)
	r.p.X.Max = r.maxX + 0.15*math.Max(r.maxX, 1)
}

// Curve adds one curve.
func (r *Renderer) Curve(p geom.Path, s render.Style) {
	r.p.Add(curvePlotter{path: p, style: s})
}

// Legend adds a legend entry with a line thumbnail.
func (r *Renderer) Legend(label string, s render.Style) {
	r.p.Legend.Add(label, curvePlotter{style: s})
}

// Plot returns the underlying plot for further styling.
func (r *Renderer) Plot() *plot.Plot {
	return r.p
}

// Save writes the figure to path; see figio.Save.
func (r *Renderer) Save(path string) ([]string, error) {
	return figio.Save(r.p, r.width, r.height, path)
}

func lineStyle(s render.Style) draw.LineStyle {
	return draw.LineStyle{Color: s.RGBA(), Width: vg.Points(s.Width)}
}

// curvePlotter strokes a geom.Path in data coordinates. The transform
// from data to canvas is affine, so mapping the control points maps the
// curve.
type curvePlotter struct {
	path  geom.Path
	style render.Style
}

func (cp curvePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	if cp.path.Len() == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)
	pt := func(p geom.Point) vg.Point {
		return vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}

	var path vg.Path
	path.Move(pt(cp.path.Start()))
	for i := 0; i < cp.path.Len(); i++ {
		seg := cp.path.Segment(i)
		path.CubeTo(pt(seg.P1), pt(seg.P2), pt(seg.P3))
	}

	c.SetLineStyle(lineStyle(cp.style))
	c.Stroke(path)
}

func (cp curvePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, v := range cp.path.Vertices {
		xmin, xmax = math.Min(xmin, v.X), math.Max(xmax, v.X)
		ymin, ymax = math.Min(ymin, v.Y), math.Max(ymax, v.Y)
	}
	return xmin, xmax, ymin, ymax
}

func (cp curvePlotter) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(lineStyle(cp.style), c.Min.X, y, c.Max.X, y)
}

// axisPlotter draws one vertical axis with ticks and labels on its
// right-hand side.
type axisPlotter struct {
	render.Axis
}

func (a axisPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := trX(a.X)

	line := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	c.StrokeLine2(line, x, trY(0), x, trY(1))

	sty := plt.Y.Tick.Label
	sty.XAlign = text.XLeft
	sty.YAlign = text.YCenter
	tick := vg.Points(4)
	for _, t := range a.Ticks {
		y := trY(t.Pos)
		c.StrokeLine2(line, x, y, x+tick, y)
		c.FillText(sty, vg.Point{X: x + tick + vg.Points(2), Y: y}, t.Label)
	}
}

func (a axisPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return a.X, a.X, 0, 1
}
