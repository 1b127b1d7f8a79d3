package parallel

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"

	"github.com/HamletTheHamster/statplot/geom"
	"github.com/HamletTheHamster/statplot/render"
)

// maxTicks bounds the number of labeled ticks on each axis.
const maxTicks = 8

// Draw sends fig to r. Values are converted from the first axis' scale
// to the renderer frame, so a reversed first axis is drawn upside down
// like any other reversed axis.
func Draw(fig *Figure, r render.Renderer, title string) {
	if title != "" {
		r.Title(title)
	}

	for k := range fig.Names {
		r.Axis(render.Axis{
			X:     float64(k),
			Name:  fig.Names[k],
			Ticks: fig.axisTicks(k),
		})
	}

	for _, c := range fig.Curves {
		r.Curve(c.Path.Map(fig.toFrame), c.Style)
	}

	for _, e := range fig.Legend {
		r.Legend(e.Name, e.Style)
	}
}

// FrameY converts a value on the first axis' scale to the [0, 1] frame.
func (fig *Figure) FrameY(z float64) float64 {
	b := scaleBounds(fig.Bounds[0])
	return (z - b.Min) / b.Span()
}

func (fig *Figure) toFrame(p geom.Point) geom.Point {
	return geom.Point{X: p.X, Y: fig.FrameY(p.Y)}
}

// axisTicks labels axis k in its own units and places the labels where
// values of axis k land in the frame.
func (fig *Figure) axisTicks(k int) []render.Tick {
	b := fig.Bounds[k]

	if b.Span() == 0 {
		// Every value on a constant axis is drawn at one height.
		pos := fig.FrameY(b.Min)
		if k > 0 {
			pos = fig.FrameY(scaleBounds(fig.Bounds[0]).Min)
		}
		return []render.Tick{{Pos: pos, Label: tickLabel(b.Min)}}
	}

	s := scale.Linear{Min: b.Lo(), Max: b.Hi()}
	major, _ := s.Ticks(scale.TickOptions{Max: maxTicks})

	var ticks []render.Tick
	for _, v := range major {
		if v < b.Lo() || v > b.Hi() {
			continue
		}
		ticks = append(ticks, render.Tick{
			Pos:   (v - b.Min) / b.Span(),
			Label: tickLabel(v),
		})
	}
	return ticks
}

func tickLabel(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
