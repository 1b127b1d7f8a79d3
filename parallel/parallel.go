// Package parallel builds parallel-coordinate plots: every row of a
// labeled dataset becomes a smooth curve that crosses one vertical axis
// per feature at the row's value for that feature.
//
// Build does all the geometry and returns a Figure; Draw hands a Figure
// to any render.Renderer; Plot is the one-call version that saves and/or
// shows the result.
package parallel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/aclements/go-moremath/vec"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/render"
)

var (
	// ErrShape is returned for data that cannot form a plot, such as
	// fewer than two displayed axes.
	ErrShape = errors.New("parallel: shape mismatch")
	// ErrIndex is returned when a reverse, axis or row index does not
	// exist in the dataset.
	ErrIndex = errors.New("parallel: index out of range")
)

// Options control which parts of a dataset are drawn and how. The zero
// value draws every row on every axis with no axis reversed.
type Options struct {
	// Reverse lists columns whose axis is drawn upside down, which can
	// remove crossings between negatively correlated features.
	Reverse []int
	// Axes lists the columns to display, in display order. Nil means
	// all columns in dataset order.
	Axes []int
	// Rows lists the rows to draw. Nil means all rows. Together with
	// Axes it replaces a single display list: Axes picks and orders the
	// columns, Rows is the allow-list of observations that get a curve.
	Rows []int
	// Noise is the variance of normal noise added to the rescaled
	// values to separate overlapping curves of low-resolution data.
	Noise float64
	// Rand is the noise source. Nil uses the math/rand/v2 global source.
	Rand *rand.Rand
}

// Curve is the path of one dataset row.
type Curve struct {
	Row   int
	Label int
	// Values are the row's values on each displayed axis after
	// rescaling onto the first axis.
	Values []float64
	Path   geom.Path
	Style  render.Style
}

// LegendEntry names one label that appears among the curves.
type LegendEntry struct {
	Label int
	Name  string
	Style render.Style
}

// Figure is the finished geometry of a parallel-coordinate plot.
// Curve coordinates are (axis index, value on the first axis' scale).
type Figure struct {
	Names  []string
	Bounds []Bounds
	Curves []Curve
	Legend []LegendEntry
}

// curveStyle is the stroke every curve of label l is drawn with.
func curveStyle(l int) render.Style {
	return render.Style{Color: render.Color(l, false), Width: 2, Alpha: 0.7}
}

// Build computes the curves of ds.
func Build(ds *dataset.Dataset, opts Options) (*Figure, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrShape)
	}
	nrows, ncols := ds.Dims()

	if err := checkIndices("reverse axis", opts.Reverse, ncols); err != nil {
		return nil, err
	}
	if err := checkIndices("display axis", opts.Axes, ncols); err != nil {
		return nil, err
	}
	if err := checkIndices("row", opts.Rows, nrows); err != nil {
		return nil, err
	}
	if opts.Noise < 0 || math.IsNaN(opts.Noise) {
		return nil, fmt.Errorf("parallel: noise variance %v is negative", opts.Noise)
	}

	axes := opts.Axes
	if axes == nil {
		axes = make([]int, ncols)
		for j := range axes {
			axes[j] = j
		}
	}
	if len(axes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 axes to connect, have %d", ErrShape, len(axes))
	}

	// Bounds come from every column, then reversal, then selection.
	all := PadBounds(ds.Rows())
	for _, j := range opts.Reverse {
		all[j] = all[j].Reversed()
	}

	names := ds.FeatureNames()
	fig := &Figure{
		Names:  make([]string, len(axes)),
		Bounds: make([]Bounds, len(axes)),
	}
	for k, j := range axes {
		fig.Names[k] = names[j]
		fig.Bounds[k] = all[j]
	}

	ys := make([][]float64, nrows)
	for i := range ys {
		row := ds.Row(i)
		ys[i] = make([]float64, len(axes))
		for k, j := range axes {
			ys[i][k] = row[j]
		}
	}
	zs := Rescale(ys, fig.Bounds)

	if opts.Noise > 0 {
		normal := rand.NormFloat64
		if opts.Rand != nil {
			normal = opts.Rand.NormFloat64
		}
		sigma := math.Sqrt(opts.Noise)
		for _, z := range zs {
			for k := range z {
				z[k] += normal() * sigma
			}
		}
	}

	xs := vec.Linspace(0, float64(len(axes)-1), 3*len(axes)-2)
	seen := map[int]bool{}
	for i, z := range zs {
		if opts.Rows != nil && !slices.Contains(opts.Rows, i) {
			continue
		}

		path, err := curvePath(xs, z)
		if err != nil {
			return nil, err
		}
		l := ds.Label(i)
		fig.Curves = append(fig.Curves, Curve{
			Row:    i,
			Label:  l,
			Values: z,
			Path:   path,
			Style:  curveStyle(l),
		})
		seen[l] = true
	}

	for _, l := range ds.Labels() {
		if seen[l] {
			fig.Legend = append(fig.Legend, LegendEntry{
				Label: l,
				Name:  ds.TargetName(l),
				Style: curveStyle(l),
			})
		}
	}

	return fig, nil
}

// curvePath places a vertex on every axis and two more at the thirds
// between neighbouring axes. Each value is repeated three times except
// at the two ends, so the curve leaves and enters every axis flat.
func curvePath(xs, z []float64) (geom.Path, error) {
	ys := make([]float64, 0, 3*len(z))
	for _, v := range z {
		ys = append(ys, v, v, v)
	}
	ys = ys[1 : len(ys)-1]

	vs := make([]geom.Point, len(xs))
	for i := range vs {
		vs[i] = geom.Point{X: xs[i], Y: ys[i]}
	}
	return geom.NewPath(vs)
}

func checkIndices(what string, idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndex, what, i, n)
		}
	}
	return nil
}
