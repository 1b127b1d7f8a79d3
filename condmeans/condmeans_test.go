package condmeans

import (
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/internal/figio"
)

func small(t *testing.T) *dataset.Dataset {
	ds, err := dataset.New(
		[]string{"x", "y"},
		[][]float64{{1, 10}, {3, 20}, {5, 30}, {7, 40}},
		[]int{0, 0, 1, 1},
		[]string{"lo", "hi"},
	)
	require.NoError(t, err)
	return ds
}

func TestJitter(t *testing.T) {
	ds := small(t)

	same, err := Jitter(ds, 0, nil)
	require.NoError(t, err)
	assert.Same(t, ds, same)

	_, err = Jitter(ds, -1, nil)
	assert.ErrorIs(t, err, ErrVariance)
	_, err = Jitter(ds, math.NaN(), nil)
	assert.ErrorIs(t, err, ErrVariance)

	rng := rand.New(rand.NewPCG(3, 4))
	noisy, err := Jitter(ds, 0.5, rng)
	require.NoError(t, err)
	assert.Equal(t, ds.Target(), noisy.Target())
	assert.Equal(t, ds.TargetNames(), noisy.TargetNames())
	assert.NotEqual(t, ds.Rows(), noisy.Rows())
	assert.Equal(t, []float64{1, 10}, ds.Row(0), "input must not change")
}

func TestJitterVariance(t *testing.T) {
	ds := dataset.Iris()
	noisy, err := Jitter(ds, 0.04, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	rows, cols := ds.Dims()
	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := noisy.At(i, j) - ds.At(i, j)
			sum += d * d
		}
	}
	assert.InDelta(t, 0.04, sum/float64(rows*cols), 0.012)
}

func TestMelt(t *testing.T) {
	long, err := Melt(small(t), "class", "measurement", "value")
	require.NoError(t, err)
	assert.Equal(t, 8, LongRows(long))

	tab := long.Table(long.Tables()[0])
	assert.ElementsMatch(t, []string{"lo", "lo", "lo", "lo", "hi", "hi", "hi", "hi"}, tab.MustColumn("class").([]string))
	assert.ElementsMatch(t, []string{"x", "x", "x", "x", "y", "y", "y", "y"}, tab.MustColumn("measurement").([]string))
	assert.ElementsMatch(t, []float64{1, 3, 5, 7, 10, 20, 30, 40}, tab.MustColumn("value").([]float64))
}

func TestMeltNameClash(t *testing.T) {
	ds := small(t)

	_, err := Melt(ds, "x", "measurement", "value")
	assert.Error(t, err)
	_, err = Melt(ds, "class", "value", "value")
	assert.Error(t, err)
	_, err = Melt(ds, "class", "y", "value")
	assert.Error(t, err)
}

func TestMeans(t *testing.T) {
	long, err := Melt(small(t), "class", "measurement", "value")
	require.NoError(t, err)

	means, err := Means(long, "class", "measurement", "value")
	require.NoError(t, err)
	assert.Equal(t, map[Key]float64{
		{Class: "lo", Measurement: "x"}: 2,
		{Class: "lo", Measurement: "y"}: 15,
		{Class: "hi", Measurement: "x"}: 6,
		{Class: "hi", Measurement: "y"}: 35,
	}, means)
}

func TestMeansMatchProfiles(t *testing.T) {
	ds := dataset.Iris()
	long, err := Melt(ds, "species", "measurement", "value")
	require.NoError(t, err)
	means, err := Means(long, "species", "measurement", "value")
	require.NoError(t, err)
	require.Len(t, means, 12)

	prof := ds.ClassProfiles()
	for k, name := range prof.Names {
		for j, f := range ds.FeatureNames() {
			assert.InDelta(t, prof.Means[k][j], means[Key{Class: name, Measurement: f}], 1e-9)
		}
	}
	assert.InDelta(t, 5.006, means[Key{Class: "setosa", Measurement: "sepal length (cm)"}], 1e-9)
}

func TestPlot(t *testing.T) {
	ds := dataset.Iris()
	p, err := Plot(ds, Options{
		Title:       "Iris",
		ClassColumn: "species",
		Variance:    0.01,
		Rand:        rand.New(rand.NewPCG(5, 6)),
	})
	require.NoError(t, err)

	assert.Equal(t, "value", p.X.Label.Text)
	assert.Equal(t, "measurement", p.Y.Label.Text)
	assert.Equal(t, -0.5, p.Y.Min)
	assert.Equal(t, 3.5, p.Y.Max)

	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	require.Len(t, ticks, 4)
	assert.Equal(t, "sepal length (cm)", ticks[3].Label)
	assert.Equal(t, "petal width (cm)", ticks[0].Label)

	path := filepath.Join(t.TempDir(), "condmeans.png")
	_, err = figio.Save(p, 8*vg.Inch, 6*vg.Inch, path)
	require.NoError(t, err)
}

func TestPlotErrors(t *testing.T) {
	_, err := Plot(nil, Options{})
	assert.Error(t, err)

	_, err = Plot(small(t), Options{Variance: -2})
	assert.ErrorIs(t, err, ErrVariance)

	_, err = Plot(small(t), Options{ClassColumn: "x"})
	assert.Error(t, err)
}

func TestDiamondGlyphScatter(t *testing.T) {
	p, err := Plot(small(t), Options{})
	require.NoError(t, err)
	_, err = figio.Save(p, 4*vg.Inch, 3*vg.Inch, filepath.Join(t.TempDir(), "small.svg"))
	require.NoError(t, err)
}
