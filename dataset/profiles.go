package dataset

import "github.com/aclements/go-moremath/stats"

// Profiles holds per-class summary statistics of every feature.
// Means[k][j] and Variances[k][j] describe feature j over the rows with
// the k'th label returned by Labels.
type Profiles struct {
	Labels    []int
	Names     []string
	Means     [][]float64
	Variances [][]float64
}

// ClassProfiles computes the mean and sample variance of every feature
// within each class. A class with a single row has variance 0.
func (d *Dataset) ClassProfiles() Profiles {
	_, cols := d.Dims()
	labels := d.Labels()

	p := Profiles{Labels: labels}
	for _, l := range labels {
		p.Names = append(p.Names, d.TargetName(l))

		means := make([]float64, cols)
		vars := make([]float64, cols)
		for j := 0; j < cols; j++ {
			s := stats.Sample{Xs: d.classColumn(l, j)}
			means[j] = s.Mean()
			if len(s.Xs) > 1 {
				vars[j] = s.Variance()
			}
		}
		p.Means = append(p.Means, means)
		p.Variances = append(p.Variances, vars)
	}
	return p
}

func (d *Dataset) classColumn(label, j int) []float64 {
	var xs []float64
	for i, l := range d.target {
		if l == label {
			xs = append(xs, d.data.At(i, j))
		}
	}
	return xs
}
