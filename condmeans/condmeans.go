// Package condmeans draws every observation of a labeled dataset as a
// strip per measurement and class, with the class-conditional mean of
// each measurement marked on top.
//
// The wide dataset is melted into a long table with go-gg, one row per
// (observation, measurement) pair, and the means are aggregated from
// that table.
package condmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/HamletTheHamster/statplot/dataset"
)

// ErrVariance is returned for a negative or NaN jitter variance.
var ErrVariance = errors.New("condmeans: invalid variance")

// Jitter returns ds with normal noise of the given variance added to
// every measurement. Labels are untouched. A zero variance returns ds.
func Jitter(ds *dataset.Dataset, variance float64, rng *rand.Rand) (*dataset.Dataset, error) {
	if variance < 0 || math.IsNaN(variance) {
		return nil, fmt.Errorf("%w: %v", ErrVariance, variance)
	}
	if variance == 0 {
		return ds, nil
	}

	normal := rand.NormFloat64
	if rng != nil {
		normal = rng.NormFloat64
	}
	sigma := math.Sqrt(variance)

	rows := ds.Rows()
	for _, row := range rows {
		for j := range row {
			row[j] += normal() * sigma
		}
	}
	return ds.WithData(rows)
}

// Wide returns ds as a go-gg table: a string column named classColumn
// holding each row's class name, then one float64 column per feature.
func Wide(ds *dataset.Dataset, classColumn string) (*table.Table, error) {
	names := ds.FeatureNames()
	if slices.Contains(names, classColumn) {
		return nil, fmt.Errorf("condmeans: class column %q is also a feature", classColumn)
	}

	rows, _ := ds.Dims()
	class := make([]string, rows)
	for i := range class {
		class[i] = ds.TargetName(ds.Label(i))
	}

	b := new(table.Builder).Add(classColumn, class)
	for j, name := range names {
		b.Add(name, ds.Col(j))
	}
	return b.Done(), nil
}

// Melt reshapes ds to long form. The result has the columns
// classColumn, varName (the feature name) and valueName, and one row
// per observation and feature.
func Melt(ds *dataset.Dataset, classColumn, varName, valueName string) (table.Grouping, error) {
	cols := []string{classColumn, varName, valueName}
	for i, c := range cols {
		if slices.Contains(cols[i+1:], c) {
			return nil, fmt.Errorf("condmeans: column name %q used twice", c)
		}
		if i > 0 && slices.Contains(ds.FeatureNames(), c) {
			return nil, fmt.Errorf("condmeans: column name %q is also a feature", c)
		}
	}

	wide, err := Wide(ds, classColumn)
	if err != nil {
		return nil, err
	}
	return table.Unpivot(wide, varName, valueName, ds.FeatureNames()...), nil
}

// Key identifies one class-conditional mean.
type Key struct {
	Class       string
	Measurement string
}

// Means returns the mean of valueName for every (class, measurement)
// pair in a long table produced by Melt.
func Means(long table.Grouping, classColumn, varName, valueName string) (map[Key]float64, error) {
	agg := ggstat.Agg(classColumn, varName)(ggstat.AggMean(valueName)).F(long)
	meanCol := "mean " + valueName

	means := map[Key]float64{}
	for _, gid := range agg.Tables() {
		t := agg.Table(gid)
		class, ok := t.Column(classColumn).([]string)
		if !ok {
			return nil, fmt.Errorf("condmeans: column %q is not a string column", classColumn)
		}
		vars, ok := t.Column(varName).([]string)
		if !ok {
			return nil, fmt.Errorf("condmeans: column %q is not a string column", varName)
		}
		vals, ok := t.Column(meanCol).([]float64)
		if !ok {
			return nil, fmt.Errorf("condmeans: column %q is not a float column", meanCol)
		}
		for i := range class {
			means[Key{Class: class[i], Measurement: vars[i]}] = vals[i]
		}
	}
	return means, nil
}
