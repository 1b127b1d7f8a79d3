// Package dataset provides the labeled feature matrix every plot in this
// module consumes, plus the sample data the demo programs draw.
package dataset

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when names, rows and labels disagree in length.
	ErrShape = errors.New("dataset: shape mismatch")
	// ErrLabel is returned for a negative label or one with no name.
	ErrLabel = errors.New("dataset: invalid label")
)

// Dataset is an immutable table of feature vectors with one integer
// class (or cluster) label per row. All accessors return copies.
type Dataset struct {
	featureNames []string
	data         *mat.Dense
	target       []int
	targetNames  []string
}

// New validates its arguments and builds a Dataset. targetNames may be
// empty, in which case labels are shown by number.
func New(
	featureNames []string,
	data [][]float64,
	target []int,
	targetNames []string,
) (
	*Dataset, error,
) {

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	if len(featureNames) == 0 {
		return nil, fmt.Errorf("%w: no feature names", ErrShape)
	}

	cols := len(featureNames)
	flat := make([]float64, 0, len(data)*cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d (one per feature name)",
				ErrShape, i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	if len(target) != len(data) {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrShape, len(target), len(data))
	}
	for i, l := range target {
		if l < 0 {
			return nil, fmt.Errorf("%w: row %d has label %d", ErrLabel, i, l)
		}
		if len(targetNames) > 0 && l >= len(targetNames) {
			return nil, fmt.Errorf("%w: row %d has label %d but only %d target names",
				ErrLabel, i, l, len(targetNames))
		}
	}

	return &Dataset{
		featureNames: append([]string(nil), featureNames...),
		data:         mat.NewDense(len(data), cols, flat),
		target:       append([]int(nil), target...),
		targetNames:  append([]string(nil), targetNames...),
	}, nil
}

// Dims returns the number of rows and features.
func (d *Dataset) Dims() (rows, cols int) {
	return d.data.Dims()
}

// FeatureNames returns the feature (axis) names in column order.
func (d *Dataset) FeatureNames() []string {
	return append([]string(nil), d.featureNames...)
}

// At returns the value of feature j in row i.
func (d *Dataset) At(i, j int) float64 {
	return d.data.At(i, j)
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) []float64 {
	return append([]float64(nil), d.data.RawRowView(i)...)
}

// Col returns a copy of column j.
func (d *Dataset) Col(j int) []float64 {
	rows, _ := d.data.Dims()
	return mat.Col(make([]float64, rows), j, d.data)
}

// Rows returns a copy of the whole matrix, one slice per row.
func (d *Dataset) Rows() [][]float64 {
	rows, _ := d.data.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = d.Row(i)
	}
	return out
}

// Matrix returns a copy of the data as a gonum matrix.
func (d *Dataset) Matrix() *mat.Dense {
	return mat.DenseCopyOf(d.data)
}

// Target returns a copy of the per-row labels.
func (d *Dataset) Target() []int {
	return append([]int(nil), d.target...)
}

// Label returns the label of row i.
func (d *Dataset) Label(i int) int {
	return d.target[i]
}

// TargetNames returns a copy of the label names.
func (d *Dataset) TargetNames() []string {
	return append([]string(nil), d.targetNames...)
}

// TargetName returns the display name of label l.
func (d *Dataset) TargetName(l int) string {
	if l >= 0 && l < len(d.targetNames) {
		return d.targetNames[l]
	}
	return fmt.Sprintf("%d", l)
}

// Labels returns the distinct labels in increasing order.
func (d *Dataset) Labels() []int {
	if len(d.target) == 0 {
		return nil
	}
	labels := slices.Clone(d.target)
	slices.Sort(labels)
	return slices.Compact(labels)
}

// Select returns a dataset restricted to the given columns, in the given
// order.
func (d *Dataset) Select(cols []int) (*Dataset, error) {
	rows, ncols := d.Dims()
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns selected", ErrShape)
	}

	names := make([]string, len(cols))
	for k, j := range cols {
		if j < 0 || j >= ncols {
			return nil, fmt.Errorf("%w: column %d out of range [0, %d)", ErrShape, j, ncols)
		}
		names[k] = d.featureNames[j]
	}

	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, len(cols))
		for k, j := range cols {
			data[i][k] = d.data.At(i, j)
		}
	}

	return New(names, data, d.target, d.targetNames)
}

// WithData returns a dataset with the same names and labels and new
// values. data must have the same shape as d.
func (d *Dataset) WithData(data [][]float64) (*Dataset, error) {
	rows, _ := d.Dims()
	if len(data) != rows {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShape, len(data), rows)
	}
	return New(d.featureNames, data, d.target, d.targetNames)
}
