package dataset

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// ReadCSV loads a wide table with a header row. classColumn holds the
// class or cluster of each row; every other column not named in drop
// must be numeric and becomes a feature.
//
// Class values that are all integers (cluster numbers) are ordered
// numerically and named "<classColumn> <n>"; anything else is ordered by
// first appearance and keeps its own text as the name.
func ReadCSV(
	r io.Reader,
	classColumn string,
	drop ...string,
) (
	*Dataset, error,
) {

	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", df.Err)
	}

	names := df.Names()
	if !slices.Contains(names, classColumn) {
		return nil, fmt.Errorf("%w: no class column %q in %v", ErrShape, classColumn, names)
	}

	var features []string
	var cols [][]float64
	for _, name := range names {
		if name == classColumn || slices.Contains(drop, name) {
			continue
		}
		vals := df.Col(name).Float()
		for i, v := range vals {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("dataset: column %q row %d is not numeric", name, i+1)
			}
		}
		features = append(features, name)
		cols = append(cols, vals)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: no feature columns besides %q", ErrShape, classColumn)
	}

	target, targetNames := encodeLabels(df.Col(classColumn).Records(), classColumn)

	data := make([][]float64, df.Nrow())
	for i := range data {
		data[i] = make([]float64, len(cols))
		for j := range cols {
			data[i][j] = cols[j][i]
		}
	}

	return New(features, data, target, targetNames)
}

func encodeLabels(
	class []string,
	classColumn string,
) (
	[]int, []string,
) {

	nums := make([]int, len(class))
	numeric := true
	for i, c := range class {
		n, err := strconv.Atoi(c)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = n
	}

	target := make([]int, len(class))
	var names []string
	if numeric {
		var sorted []int
		for _, n := range nums {
			if !slices.Contains(sorted, n) {
				sorted = append(sorted, n)
			}
		}
		sort.Ints(sorted)
		for _, n := range sorted {
			names = append(names, fmt.Sprintf("%s %d", classColumn, n))
		}
		for i, n := range nums {
			target[i] = slices.Index(sorted, n)
		}
		return target, names
	}

	index := map[string]int{}
	for i, c := range class {
		l, ok := index[c]
		if !ok {
			l = len(names)
			index[c] = l
			names = append(names, c)
		}
		target[i] = l
	}
	return target, names
}
