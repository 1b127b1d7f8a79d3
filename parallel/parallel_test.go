package parallel

import (
	"errors"
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/render"
)

func mustDataset(t *testing.T, data [][]float64, target []int) *dataset.Dataset {
	t.Helper()
	names := make([]string, len(data[0]))
	for j := range names {
		names[j] = string(rune('a' + j))
	}
	ds, err := dataset.New(names, data, target, nil)
	require.NoError(t, err)
	return ds
}

func TestBuildCurveCount(t *testing.T) {
	ds := dataset.Iris()
	rows, cols := ds.Dims()

	fig, err := Build(ds, Options{})
	require.NoError(t, err)
	require.Len(t, fig.Curves, rows)
	for _, c := range fig.Curves {
		assert.Len(t, c.Path.Vertices, 3*(cols-1)+1)
		assert.Equal(t, 0.0, c.Path.Start().X)
		assert.Equal(t, float64(cols-1), c.Path.End().X)
	}
	assert.Equal(t, ds.FeatureNames(), fig.Names)

	require.Len(t, fig.Legend, 3)
	for l, e := range fig.Legend {
		assert.Equal(t, l, e.Label)
		assert.Equal(t, ds.TargetNames()[l], e.Name)
		assert.Equal(t, render.Color(l, false), e.Style.Color)
	}
}

func TestBuildVertexLayout(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0, 10, 5}, {1, 20, 6}}, []int{0, 1})

	fig, err := Build(ds, Options{})
	require.NoError(t, err)

	c := fig.Curves[0]
	xs := make([]float64, len(c.Path.Vertices))
	ys := make([]float64, len(c.Path.Vertices))
	for i, v := range c.Path.Vertices {
		xs[i], ys[i] = v.X, v.Y
	}
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1, 4.0 / 3, 5.0 / 3, 2}, xs, 1e-12)
	z := c.Values
	assert.Equal(t, []float64{z[0], z[0], z[1], z[1], z[1], z[2], z[2]}, ys)
}

func TestPadBoundsEnclose(t *testing.T) {
	rows := [][]float64{{1, 5, 3}, {4, 5, -2}, {2, 5, 7}}
	bounds := PadBounds(rows)
	require.Len(t, bounds, 3)

	for j, b := range bounds {
		for _, row := range rows {
			assert.LessOrEqual(t, b.Min, row[j])
			assert.GreaterOrEqual(t, b.Max, row[j])
		}
	}
	assert.InDelta(t, 0.85, bounds[0].Min, 1e-12)
	assert.InDelta(t, 4.15, bounds[0].Max, 1e-12)
	assert.Equal(t, Bounds{Min: 5, Max: 5}, bounds[1])
	assert.Less(t, bounds[2].Min, -2.0)
}

func TestReversedTwice(t *testing.T) {
	b := Bounds{Min: -0.05, Max: 1.05}
	r := b.Reversed()
	assert.Equal(t, Bounds{Min: 1.05, Max: -0.05}, r)
	assert.Less(t, r.Span(), 0.0)
	assert.Equal(t, -0.05, r.Lo())
	assert.Equal(t, 1.05, r.Hi())
	assert.Equal(t, b, r.Reversed())
}

func TestFirstAxisUnchanged(t *testing.T) {
	ds := dataset.Iris()
	axes := []int{2, 0, 3}

	fig, err := Build(ds, Options{Axes: axes, Reverse: []int{0, 2}})
	require.NoError(t, err)
	for _, c := range fig.Curves {
		assert.Equal(t, ds.At(c.Row, 2), c.Values[0])
		assert.Equal(t, ds.At(c.Row, 2), c.Path.Start().Y)
	}
	assert.Equal(t, []string{"petal length (cm)", "sepal length (cm)", "petal width (cm)"}, fig.Names)
}

func TestConstantAxisIsFinite(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 7, 3}, {2, 7, 9}, {3, 7, 4}}, []int{0, 0, 1})

	fig, err := Build(ds, Options{})
	require.NoError(t, err)
	for _, c := range fig.Curves {
		for _, v := range c.Path.Vertices {
			assert.True(t, v.IsFinite())
		}
		// A constant column lands on the first axis' minimum.
		assert.InDelta(t, fig.Bounds[0].Min, c.Values[1], 1e-12)
	}

	// Every column constant: the first axis sits in the middle and the
	// second at the bottom of the unit range around it.
	flat := mustDataset(t, [][]float64{{2, 2}, {2, 2}}, []int{0, 1})
	fig, err = Build(flat, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0.5, fig.FrameY(fig.Curves[0].Values[0]))
	assert.Equal(t, 0.0, fig.FrameY(fig.Curves[0].Values[1]))

	var r fakeRenderer
	Draw(fig, &r, "")
	require.Len(t, r.axes, 2)
	for k, want := range []float64{0.5, 0} {
		require.Len(t, r.axes[k].Ticks, 1)
		assert.Equal(t, want, r.axes[k].Ticks[0].Pos)
		assert.Equal(t, "2", r.axes[k].Ticks[0].Label)
	}
}

func TestConstantFirstAxisKeepsOthers(t *testing.T) {
	ds := mustDataset(t, [][]float64{{5, 0, 10}, {5, 1, 20}, {5, 2, 30}}, []int{0, 0, 0})

	fig, err := Build(ds, Options{})
	require.NoError(t, err)
	require.Len(t, fig.Curves, 3)

	pos := map[string]float64{}
	for _, tk := range fig.axisTicks(1) {
		pos[tk.Label] = tk.Pos
	}
	for i, c := range fig.Curves {
		assert.Equal(t, 5.0, c.Values[0])
		assert.Equal(t, 0.5, fig.FrameY(c.Values[0]))

		want := (float64(i) + 0.1) / 2.2
		assert.InDelta(t, want, fig.FrameY(c.Values[1]), 1e-12)
		label := tickLabel(float64(i))
		require.Contains(t, pos, label)
		assert.InDelta(t, pos[label], fig.FrameY(c.Values[1]), 1e-12)
	}
	assert.Less(t, fig.FrameY(fig.Curves[0].Values[2]), fig.FrameY(fig.Curves[2].Values[2]))
}

func TestStraightCurves(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, []int{0, 1, 2})

	fig, err := Build(ds, Options{})
	require.NoError(t, err)
	require.Len(t, fig.Curves, 3)
	for i, c := range fig.Curves {
		v := float64(i)
		assert.Equal(t, geom.Point{X: 0, Y: v}, c.Path.Start())
		assert.InDelta(t, 2, c.Path.End().X, 1e-12)
		for _, p := range c.Path.Flatten(8) {
			assert.InDelta(t, v, p.Y, 1e-12)
		}
	}
}

func TestReverseFlipsRescale(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0, 0}, {1, 1}}, []int{0, 1})

	fig, err := Build(ds, Options{Reverse: []int{1}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fig.Curves[0].Values[1], 1e-12)
	assert.InDelta(t, 0.0, fig.Curves[1].Values[1], 1e-12)
	assert.Greater(t, fig.Bounds[1].Min, fig.Bounds[1].Max)
}

func TestRowsFilter(t *testing.T) {
	ds := dataset.Iris()

	fig, err := Build(ds, Options{Rows: []int{120, 0, 1}})
	require.NoError(t, err)
	require.Len(t, fig.Curves, 3)
	assert.Equal(t, []int{0, 1, 120}, []int{fig.Curves[0].Row, fig.Curves[1].Row, fig.Curves[2].Row})

	// Legend entries only for labels that were drawn.
	require.Len(t, fig.Legend, 2)
	assert.Equal(t, "setosa", fig.Legend[0].Name)
	assert.Equal(t, "virginica", fig.Legend[1].Name)
	assert.Equal(t, render.Color(2, false), fig.Curves[2].Style.Color)
}

func TestNoise(t *testing.T) {
	ds := dataset.Iris()

	plain, err := Build(ds, Options{})
	require.NoError(t, err)

	noisy := func(seed uint64) *Figure {
		fig, err := Build(ds, Options{Noise: 0.01, Rand: rand.New(rand.NewPCG(seed, seed))})
		require.NoError(t, err)
		return fig
	}
	a, b := noisy(1), noisy(1)
	assert.Equal(t, a.Curves[7].Values, b.Curves[7].Values)
	assert.NotEqual(t, plain.Curves[7].Values, a.Curves[7].Values)
	assert.Equal(t, plain.Bounds, a.Bounds)

	var sum float64
	var n int
	for i, c := range a.Curves {
		for k, v := range c.Values {
			d := v - plain.Curves[i].Values[k]
			sum += d * d
			n++
		}
	}
	assert.InDelta(t, 0.01, sum/float64(n), 0.003)
}

func TestBuildErrors(t *testing.T) {
	ds := dataset.Iris()

	tests := []struct {
		name string
		ds   *dataset.Dataset
		opts Options
		err  error
	}{
		{"nil dataset", nil, Options{}, ErrShape},
		{"one axis", ds, Options{Axes: []int{1}}, ErrShape},
		{"reverse out of range", ds, Options{Reverse: []int{4}}, ErrIndex},
		{"negative axis", ds, Options{Axes: []int{0, -1}}, ErrIndex},
		{"row out of range", ds, Options{Rows: []int{150}}, ErrIndex},
		{"negative noise", ds, Options{Noise: -1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Build(tt.ds, tt.opts)
			require.Error(t, err)
			assert.Nil(t, fig)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	single := mustDataset(t, [][]float64{{1}, {2}}, []int{0, 1})
	_, err := Build(single, Options{})
	assert.ErrorIs(t, err, ErrShape)
}

type fakeRenderer struct {
	title  string
	axes   []render.Axis
	curves []geom.Path
	legend []string
}

func (r *fakeRenderer) Title(text string)                 { r.title = text }
func (r *fakeRenderer) Axis(a render.Axis)                { r.axes = append(r.axes, a) }
func (r *fakeRenderer) Curve(p geom.Path, s render.Style) { r.curves = append(r.curves, p) }
func (r *fakeRenderer) Legend(l string, s render.Style)   { r.legend = append(r.legend, l) }

func TestDraw(t *testing.T) {
	ds := dataset.Iris()
	fig, err := Build(ds, Options{Reverse: []int{1}})
	require.NoError(t, err)

	var r fakeRenderer
	Draw(fig, &r, "Iris")

	assert.Equal(t, "Iris", r.title)
	require.Len(t, r.axes, 4)
	for k, a := range r.axes {
		assert.Equal(t, float64(k), a.X)
		assert.Equal(t, fig.Names[k], a.Name)
		assert.NotEmpty(t, a.Ticks)
		for _, tk := range a.Ticks {
			assert.GreaterOrEqual(t, tk.Pos, 0.0)
			assert.LessOrEqual(t, tk.Pos, 1.0)
		}
	}

	// The reversed axis has its largest tick at the bottom.
	ticks := r.axes[1].Ticks
	assert.Greater(t, ticks[0].Pos, ticks[len(ticks)-1].Pos)

	require.Len(t, r.curves, 150)
	for _, p := range r.curves {
		for _, v := range p.Vertices {
			assert.Greater(t, v.Y, 0.0)
			assert.Less(t, v.Y, 1.0)
		}
	}
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, r.legend)
}

func TestAxisTicksMatchValues(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0, 100}, {10, 200}}, []int{0, 1})
	fig, err := Build(ds, Options{})
	require.NoError(t, err)

	// The tick labeled 200 on the second axis sits where a row with
	// value 200 crosses it.
	ticks := fig.axisTicks(1)
	var found bool
	for _, tk := range ticks {
		if tk.Label == "200" {
			found = true
			assert.InDelta(t, fig.FrameY(fig.Curves[1].Values[1]), tk.Pos, 1e-12)
			assert.InDelta(t, 105.0/110, tk.Pos, 1e-12)
		}
	}
	assert.True(t, found, "ticks %v", ticks)
}

func TestPlotSavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.png")

	fig, paths, err := Plot(dataset.Iris(), Options{Reverse: []int{1}}, PlotOptions{Title: "Iris", File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
	assert.Len(t, fig.Curves, 150)

	_, _, err = Plot(dataset.Iris(), Options{Axes: []int{0}}, PlotOptions{File: path})
	assert.ErrorIs(t, err, ErrShape)
}

func TestRescaleMath(t *testing.T) {
	bounds := []Bounds{{Min: 0, Max: 10}, {Min: 100, Max: 200}, {Min: 3, Max: 3}}
	zs := Rescale([][]float64{{4, 150, 3}}, bounds)
	assert.Equal(t, 4.0, zs[0][0])
	assert.InDelta(t, 5, zs[0][1], 1e-12)
	assert.InDelta(t, 0, zs[0][2], 1e-12)
	assert.False(t, math.IsNaN(zs[0][2]))

	// A constant first column is widened to [3.5, 4.5].
	zs = Rescale([][]float64{{4, 150}}, []Bounds{{Min: 4, Max: 4}, {Min: 100, Max: 200}})
	assert.Equal(t, 4.0, zs[0][0])
	assert.InDelta(t, 4, zs[0][1], 1e-12)
}

func TestPlotShowHook(t *testing.T) {
	var shown *Figure
	var shownTitle string
	fig, paths, err := Plot(dataset.Iris(), Options{}, PlotOptions{
		Title: "Iris",
		Show: func(f *Figure, title string) error {
			shown, shownTitle = f, title
			return nil
		},
	})
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Same(t, fig, shown)
	assert.Equal(t, "Iris", shownTitle)

	errShow := errors.New("no display")
	_, _, err = Plot(dataset.Iris(), Options{}, PlotOptions{
		Show: func(*Figure, string) error { return errShow },
	})
	assert.ErrorIs(t, err, errShow)
}
