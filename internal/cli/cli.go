// Package cli holds flag helpers shared by the demo programs.
package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/HamletTheHamster/statplot/dataset"
)

// Ints parses a comma-separated list of integers. An empty string is a
// nil list.
func Ints(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad integer list %q: %w", s, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Floats parses a comma-separated list of numbers.
func Floats(s string) ([]float64, error) {
	var out []float64
	for _, f := range Strings(s) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Strings splits a comma-separated list, dropping empty entries.
func Strings(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Rand returns a seeded source, or nil for seed 0 so callers fall back
// to the global source.
func Rand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Load reads the dataset in path, or returns the iris sample when path
// is empty.
func Load(path, classColumn string, drop []string) (*dataset.Dataset, error) {
	if path == "" {
		return dataset.Iris(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := dataset.ReadCSV(f, classColumn, drop...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
