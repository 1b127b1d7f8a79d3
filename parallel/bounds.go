package parallel

import "gonum.org/v1/gonum/floats"

// Padding is the fraction of an axis' data span added below its minimum
// and above its maximum, so points at the extremes are not drawn on the
// frame edge.
const Padding = 0.05

// Bounds is the value range shown on one axis, from the bottom (Min) to
// the top (Max) of the plot. A reversed axis has Min > Max.
type Bounds struct {
	Min, Max float64
}

// Span returns Max - Min. It is negative for a reversed axis and zero
// for an axis whose values are all equal.
func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// Reversed returns b drawn upside down.
func (b Bounds) Reversed() Bounds {
	return Bounds{Min: b.Max, Max: b.Min}
}

// Lo and Hi return the numeric extent regardless of direction.
func (b Bounds) Lo() float64 { return min(b.Min, b.Max) }
func (b Bounds) Hi() float64 { return max(b.Min, b.Max) }

// scaleBounds returns the range values are rescaled onto when b is the
// first axis: b itself, or a unit range centered on a constant axis.
func scaleBounds(b Bounds) Bounds {
	if b.Span() == 0 {
		return Bounds{Min: b.Min - 0.5, Max: b.Min + 0.5}
	}
	return b
}

// PadBounds returns the padded column-wise bounds of rows. All rows must
// have the same length.
func PadBounds(rows [][]float64) []Bounds {
	if len(rows) == 0 {
		return nil
	}

	col := make([]float64, len(rows))
	bounds := make([]Bounds, len(rows[0]))
	for j := range bounds {
		for i, row := range rows {
			col[i] = row[j]
		}
		lo, hi := floats.Min(col), floats.Max(col)
		pad := (hi - lo) * Padding
		bounds[j] = Bounds{Min: lo - pad, Max: hi + pad}
	}
	return bounds
}

// Rescale maps every column but the first onto the first column's
// bounds, keeping each value's fractional position within its own
// bounds. The first column is copied unchanged. A zero-span column is
// treated as having span 1, which puts all its values at the bottom of
// the first column's range. A zero-span first column is widened to a
// unit range centered on its value.
func Rescale(
	ys [][]float64,
	bounds []Bounds,
) (
	[][]float64,
) {

	zs := make([][]float64, len(ys))
	b0 := scaleBounds(bounds[0])
	for i, row := range ys {
		z := make([]float64, len(row))
		z[0] = row[0]
		for j := 1; j < len(row); j++ {
			span := bounds[j].Span()
			if span == 0 {
				span = 1
			}
			z[j] = (row[j]-bounds[j].Min)/span*b0.Span() + b0.Min
		}
		zs[i] = z
	}
	return zs
}
