package radar

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/statplot/internal/figio"
)

const (
	circleSteps = 120
	seriesWidth = 1.5
	fillAlpha   = 0.25
	// labelGap is how far outside the frame spoke labels sit, as a
	// fraction of the outer radius.
	labelGap = 0.1
)

var circleAngles = vec.Linspace(0, 2*math.Pi, circleSteps+1)

// DefaultColors are used for series added without a color.
var DefaultColors = []color.Color{
	color.RGBA{B: 255, A: 255},
	color.RGBA{R: 255, A: 255},
	color.RGBA{G: 128, A: 255},
	color.RGBA{R: 191, B: 191, A: 255},
	color.RGBA{R: 191, G: 191, A: 255},
}

var (
	gridColor  = color.Gray{Y: 176}
	frameColor = color.Gray{Y: 64}
)

func fillColor(c color.Color) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(float64(nc.A) * fillAlpha)
	return nc
}

func prepPlot(title string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = 14
	p.Title.Padding = vg.Points(14)
	p.HideAxes()

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = 9
	p.Legend.Padding = vg.Points(1)
	p.Legend.ThumbnailWidth = vg.Points(14)
	p.Legend.XOffs = vg.Points(8)

	return p
}

// framePlotter draws the outline, grid rings, spokes and their labels.
type framePlotter struct {
	chart *Chart
	rmax  float64
}

func (fp *framePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pts := func(xys plotter.XYs) []vg.Point {
		out := make([]vg.Point, len(xys))
		for i, xy := range xys {
			out[i] = vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
		}
		return out
	}
	ch := fp.chart

	grid := draw.LineStyle{Color: gridColor, Width: vg.Points(0.5)}
	frame := draw.LineStyle{Color: frameColor, Width: vg.Points(1)}

	sty := plt.X.Tick.Label
	sty.Font.Size = vg.Points(8)
	sty.Color = color.Gray{Y: 96}
	sty.XAlign = text.XLeft
	sty.YAlign = text.YBottom

	for _, g := range ch.grids {
		if g <= 0 || g > fp.rmax {
			continue
		}
		c.StrokeLines(grid, pts(ch.ring(g)))
		x, y := project(ch.theta[0], g)
		c.FillText(sty, vg.Point{X: trX(x) + vg.Points(2), Y: trY(y)}, fmt.Sprintf("%g", g))
	}

	for _, theta := range ch.theta {
		x, y := project(theta, fp.rmax)
		c.StrokeLine2(grid, trX(0), trY(0), trX(x), trY(y))
	}
	c.StrokeLines(frame, pts(ch.ring(fp.rmax)))

	sty = plt.X.Tick.Label
	sty.Font.Size = vg.Points(10)
	for k, theta := range ch.theta {
		if ch.labels[k] == "" {
			continue
		}
		x, y := project(theta, fp.rmax*(1+labelGap))
		sty.XAlign, sty.YAlign = labelAlign(theta)
		c.FillText(sty, vg.Point{X: trX(x), Y: trY(y)}, ch.labels[k])
	}
}

// labelAlign anchors a spoke label so it grows away from the chart.
func labelAlign(theta float64) (text.XAlignment, text.YAlignment) {
	const eps = 1e-9
	xa, ya := text.XCenter, text.YCenter

	s, c := math.Sin(theta), math.Cos(theta)
	switch {
	case s > eps:
		xa = text.XRight
	case s < -eps:
		xa = text.XLeft
	}
	if math.Abs(s) < 0.5 {
		if c > 0 {
			ya = text.YBottom
		} else {
			ya = text.YTop
		}
	}
	return xa, ya
}

func (fp *framePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	r := fp.rmax * (1 + 3*labelGap)
	return -r, r, -r, r
}

// Figure lays several charts out in a grid under one title.
type Figure struct {
	Title      string
	Rows, Cols int
	// Charts fill the grid row by row.
	Charts []*Chart
}

// Save draws every chart and writes the figure to path; see
// figio.SaveTiles.
func (f *Figure) Save(
	path string,
	width, height vg.Length,
) (
	[]string, error,
) {

	rows, cols := f.Rows, f.Cols
	if rows <= 0 && cols <= 0 {
		rows, cols = 1, len(f.Charts)
	} else if rows <= 0 {
		rows = (len(f.Charts) + cols - 1) / cols
	} else if cols <= 0 {
		cols = (len(f.Charts) + rows - 1) / rows
	}
	if len(f.Charts) == 0 || rows*cols < len(f.Charts) {
		return nil, fmt.Errorf("radar: %d charts do not fit a %dx%d grid", len(f.Charts), rows, cols)
	}

	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
	}
	for k, ch := range f.Charts {
		p, err := ch.Plot()
		if err != nil {
			return nil, err
		}
		grid[k/cols][k%cols] = p
	}

	return figio.SaveTiles(grid, f.Title, width, height, path)
}
