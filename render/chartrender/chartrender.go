// Package chartrender implements render.Renderer on go-chart. go-chart
// has no cubic path primitive, so curves are flattened to polylines
// before they become series.
package chartrender

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/render"
)

// Steps is the number of line segments each cubic segment is flattened to.
const Steps = 16

type legendEntry struct {
	label string
	style chart.Style
}

// Renderer collects a parallel-coordinate figure into a go-chart chart.
type Renderer struct {
	width, height int
	title         string
	ticks         []chart.Tick
	axes          []chart.Series
	labels        []chart.Value2
	curves        []chart.Series
	legend        []legendEntry
	maxX          float64
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a renderer for a width x height pixel chart.
func New(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

func toColor(s render.Style) drawing.Color {
	c := s.RGBA()
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func seriesStyle(s render.Style) chart.Style {
	return chart.Style{StrokeColor: toColor(s), StrokeWidth: s.Width}
}

// Title sets the chart title.
func (r *Renderer) Title(text string) {
	r.title = text
}

// Axis adds one vertical axis as a line series with annotated ticks.
func (r *Renderer) Axis(a render.Axis) {
	r.ticks = append(r.ticks, chart.Tick{Value: a.X, Label: a.Name})
	r.axes = append(r.axes, chart.ContinuousSeries{
		Style:   chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 1},
		XValues: []float64{a.X, a.X},
		YValues: []float64{0, 1},
	})
	for _, t := range a.Ticks {
		r.labels = append(r.labels, chart.Value2{XValue: a.X, YValue: t.Pos, Label: t.Label})
	}
	r.maxX = max(r.maxX, a.X)
}

// Curve adds a flattened curve.
func (r *Renderer) Curve(p geom.Path, s render.Style) {
	pts := p.Flatten(Steps)
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	r.curves = append(r.curves, chart.ContinuousSeries{
		Style:   seriesStyle(s),
		XValues: xs,
		YValues: ys,
	})
}

// Legend adds a legend entry.
func (r *Renderer) Legend(label string, s render.Style) {
	r.legend = append(r.legend, legendEntry{label: label, style: seriesStyle(s)})
}

// Chart assembles the collected figure.
func (r *Renderer) Chart() chart.Chart {
	span := max(r.maxX, 1)

	series := make([]chart.Series, 0, len(r.axes)+len(r.curves)+1)
	series = append(series, r.curves...)
	series = append(series, r.axes...)
	if len(r.labels) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: r.labels})
	}

	ch := chart.Chart{
		Title:  r.title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Ticks: r.ticks,
			Range: &chart.ContinuousRange{Min: -0.05 * span, Max: r.maxX + 0.15*span},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{r.drawLegend}
	return ch
}

func (r *Renderer) drawLegend(cr chart.Renderer, box chart.Box, defaults chart.Style) {
	if len(r.legend) == 0 {
		return
	}

	cr.SetFont(defaults.Font)
	cr.SetFontColor(drawing.ColorBlack)
	cr.SetFontSize(10)

	x, y := box.Right-130, box.Top+14
	for _, e := range r.legend {
		cr.SetStrokeColor(e.style.StrokeColor)
		cr.SetStrokeWidth(e.style.StrokeWidth)
		cr.MoveTo(x, y)
		cr.LineTo(x+24, y)
		cr.Stroke()
		cr.Text(e.label, x+30, y+4)
		y += 16
	}
}

// Render writes the chart in the given format ("png" or "svg").
func (r *Renderer) Render(w io.Writer, format string) error {
	var provider chart.RendererProvider
	switch format {
	case "png":
		provider = chart.PNG
	case "svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("chartrender: unsupported format %q", format)
	}
	ch := r.Chart()
	return ch.Render(provider, w)
}

// Save writes the chart to path; the extension picks png or svg.
func (r *Renderer) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" && format != "svg" {
		return fmt.Errorf("chartrender: unsupported format %q", format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, format); err != nil {
		f.Close()
		return fmt.Errorf("chartrender: %s: %w", path, err)
	}
	return f.Close()
}
