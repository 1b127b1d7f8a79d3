package condmeans

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/render"
)

const (
	// bandWidth is the share of the space between two measurements
	// taken by their strips.
	bandWidth = 0.8
	// meanDodge is the distance between the means of the first and
	// last class of one measurement.
	meanDodge  = 0.532
	stripAlpha = 0.25
)

// Options configure Plot. The zero value plots without jitter under
// the class column name "class".
type Options struct {
	Title string
	// ClassColumn titles the legend.
	ClassColumn string
	// XLabel and YLabel title the value and measurement axes. They
	// default to "value" and "measurement".
	XLabel, YLabel string
	// Variance of the normal noise added to every measurement, which
	// separates observations of integer data with few distinct values.
	Variance float64
	// Rand drives the noise and the strip jitter. Nil uses the
	// math/rand/v2 global source.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.ClassColumn == "" {
		o.ClassColumn = "class"
	}
	if o.XLabel == "" {
		o.XLabel = "value"
	}
	if o.YLabel == "" {
		o.YLabel = "measurement"
	}
	return o
}

// Plot draws ds as one horizontal strip of observations per
// measurement and class, with the class means as diamonds.
// Measurements are listed top to bottom in feature order.
func Plot(ds *dataset.Dataset, opts Options) (*plot.Plot, error) {
	if ds == nil {
		return nil, fmt.Errorf("condmeans: nil dataset")
	}
	opts = opts.withDefaults()

	jittered, err := Jitter(ds, opts.Variance, opts.Rand)
	if err != nil {
		return nil, err
	}
	long, err := Melt(jittered, opts.ClassColumn, opts.YLabel, opts.XLabel)
	if err != nil {
		return nil, err
	}
	means, err := Means(long, opts.ClassColumn, opts.YLabel, opts.XLabel)
	if err != nil {
		return nil, err
	}

	features := ds.FeatureNames()
	var classes []string
	for _, l := range ds.Labels() {
		classes = append(classes, ds.TargetName(l))
	}

	// The first feature sits at the top.
	ypos := func(measurement string) float64 {
		return float64(len(features) - 1 - slices.Index(features, measurement))
	}
	stripOffs := make([]float64, len(classes))
	for c := range stripOffs {
		stripOffs[c] = -bandWidth/2 + (float64(c)+0.5)*bandWidth/float64(len(classes))
	}
	meanOffs := vec.Linspace(-meanDodge/2, meanDodge/2, len(classes))
	if len(classes) == 1 {
		meanOffs[0] = 0
	}
	jitter := 0.1 / float64(len(classes))
	uniform := rand.Float64
	if opts.Rand != nil {
		uniform = opts.Rand.Float64
	}

	strips := make([]plotter.XYs, len(classes))
	for _, gid := range long.Tables() {
		t := long.Table(gid)
		class := t.MustColumn(opts.ClassColumn).([]string)
		vars := t.MustColumn(opts.YLabel).([]string)
		vals := t.MustColumn(opts.XLabel).([]float64)
		for i := range class {
			c := slices.Index(classes, class[i])
			y := ypos(vars[i]) + stripOffs[c] + (2*uniform()-1)*jitter
			strips[c] = append(strips[c], plotter.XY{X: vals[i], Y: y})
		}
	}

	p := prepPlot(opts, features)
	var meanMarks []*plotter.Scatter
	for c, name := range classes {
		if len(strips[c]) > 0 {
			s, err := plotter.NewScatter(strips[c])
			if err != nil {
				return nil, fmt.Errorf("condmeans: strip %q: %w", name, err)
			}
			s.GlyphStyle = draw.GlyphStyle{
				Color:  render.Style{Color: render.Color(c, false), Alpha: stripAlpha}.RGBA(),
				Radius: vg.Points(2.5),
				Shape:  draw.CircleGlyph{},
			}
			p.Add(s)
		}

		var pts plotter.XYs
		for _, f := range features {
			m, ok := means[Key{Class: name, Measurement: f}]
			if !ok {
				continue
			}
			pts = append(pts, plotter.XY{X: m, Y: ypos(f) + meanOffs[c]})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("condmeans: means %q: %w", name, err)
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  render.Color(c, true),
			Radius: vg.Points(5),
			Shape:  diamondGlyph{},
		}
		meanMarks = append(meanMarks, s)
	}

	// Means go on top of every strip.
	p.Legend.Add(opts.ClassColumn)
	for c, s := range meanMarks {
		p.Add(s)
		p.Legend.Add(classes[c], s)
	}

	return p, nil
}

// LongRows returns the number of rows of a long table.
func LongRows(long table.Grouping) int {
	n := 0
	for _, gid := range long.Tables() {
		n += long.Table(gid).Len()
	}
	return n
}

func prepPlot(opts Options, features []string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = 16

	p.X.Label.Text = opts.XLabel
	p.X.Label.TextStyle.Font.Size = 14
	p.Y.Label.Text = opts.YLabel
	p.Y.Label.TextStyle.Font.Size = 14

	// Whitegrid look: vertical grid lines, no axis lines.
	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = color.Gray{Y: 224}
	p.Add(grid)
	p.X.LineStyle.Width = 0

	names := slices.Clone(features)
	slices.Reverse(names)
	p.NominalY(names...)
	p.Y.Min = -0.5
	p.Y.Max = float64(len(features)) - 0.5

	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.TextStyle.Font.Size = 11
	p.Legend.Padding = vg.Points(2)

	return p
}

type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	w := r * 0.7

	var path vg.Path
	path.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	path.Line(vg.Point{X: pt.X + w, Y: pt.Y})
	path.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	path.Line(vg.Point{X: pt.X - w, Y: pt.Y})
	path.Close()

	c.SetColor(sty.Color)
	c.Fill(path)
}
