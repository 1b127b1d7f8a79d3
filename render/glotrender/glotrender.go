//go:build gnuplot

// Package glotrender implements render.Renderer on glot, which drives a
// gnuplot process. It is the backend for showing a figure on screen.
//
// gnuplot draws one line per point group, so curves sharing a legend
// label are joined into a single group with NaN rows between them; a
// NaN point breaks the line.
//
// glot looks gnuplot up when it is loaded and panics if it is missing,
// so the package only builds with the gnuplot tag.
package glotrender

import (
	"fmt"
	"math"

	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/render"
)

// Steps is the number of line segments each cubic segment is flattened to.
const Steps = 12

// AxesGroup names the point group holding the vertical axes.
const AxesGroup = "axes"

// Group is one gnuplot point group: column 0 holds x, column 1 holds y.
type Group struct {
	Name string
	Data [][]float64
}

// Renderer collects a figure as gnuplot point groups.
type Renderer struct {
	title  string
	axes   [][]float64
	maxX   float64
	styles []render.Style
	curves map[render.Style][][]float64
	names  map[render.Style]string
}

var _ render.Renderer = (*Renderer)(nil)

// New returns an empty renderer.
func New() *Renderer {
	return &Renderer{
		axes:   [][]float64{nil, nil},
		curves: map[render.Style][][]float64{},
		names:  map[render.Style]string{},
	}
}

func appendBreak(data [][]float64) [][]float64 {
	if len(data[0]) == 0 {
		return data
	}
	data[0] = append(data[0], math.NaN())
	data[1] = append(data[1], math.NaN())
	return data
}

// Title sets the window title.
func (r *Renderer) Title(text string) {
	r.title = text
}

// Axis adds a vertical line at a.X. gnuplot has no per-line tick
// labels, so only the line is kept.
func (r *Renderer) Axis(a render.Axis) {
	r.axes = appendBreak(r.axes)
	r.axes[0] = append(r.axes[0], a.X, a.X)
	r.axes[1] = append(r.axes[1], 0, 1)
	r.maxX = math.Max(r.maxX, a.X)
}

// Curve adds a flattened curve to the group of its style.
func (r *Renderer) Curve(p geom.Path, s render.Style) {
	data, ok := r.curves[s]
	if !ok {
		r.styles = append(r.styles, s)
		data = [][]float64{nil, nil}
	}
	data = appendBreak(data)
	for _, pt := range p.Flatten(Steps) {
		data[0] = append(data[0], pt.X)
		data[1] = append(data[1], pt.Y)
	}
	r.curves[s] = data
}

// Legend names the group of curves drawn with s.
func (r *Renderer) Legend(label string, s render.Style) {
	r.names[s] = label
}

// Groups returns the point groups in drawing order: the axes, then one
// group per curve style in first-use order.
func (r *Renderer) Groups() []Group {
	var groups []Group
	if len(r.axes[0]) > 0 {
		groups = append(groups, Group{Name: AxesGroup, Data: r.axes})
	}
	for i, s := range r.styles {
		name, ok := r.names[s]
		if !ok {
			name = fmt.Sprintf("curves %d", i)
		}
		groups = append(groups, Group{Name: name, Data: r.curves[s]})
	}
	return groups
}

func (r *Renderer) plot() (*glot.Plot, error) {
	dimensions := 2
	persist := true
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return nil, fmt.Errorf("glotrender: %w", err)
	}

	if r.title != "" {
		plot.SetTitle(r.title)
	}
	for _, g := range r.Groups() {
		if err := plot.AddPointGroup(g.Name, "lines", g.Data); err != nil {
			plot.Close()
			return nil, fmt.Errorf("glotrender: group %q: %w", g.Name, err)
		}
	}
	plot.SetXrange(-1, int(math.Ceil(r.maxX))+1)
	plot.SetYrange(0, 1)

	return plot, nil
}

// Show opens a gnuplot window that stays open after the program exits.
// Closing the plot ends the gnuplot session and removes its data files;
// the persistent window keeps what it has drawn.
func (r *Renderer) Show() error {
	plot, err := r.plot()
	if err != nil {
		return err
	}
	if err := plot.Close(); err != nil {
		return fmt.Errorf("glotrender: close: %w", err)
	}
	return nil
}

// Save renders through gnuplot's own terminal for the extension of path.
func (r *Renderer) Save(path string) error {
	plot, err := r.plot()
	if err != nil {
		return err
	}
	defer plot.Close()

	if err := plot.SavePlot(path); err != nil {
		return fmt.Errorf("glotrender: save %s: %w", path, err)
	}
	return nil
}
