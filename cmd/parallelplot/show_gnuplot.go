//go:build gnuplot

package main

import (
	"github.com/HamletTheHamster/statplot/parallel"
	"github.com/HamletTheHamster/statplot/render/glotrender"
)

func init() {
	showFigure = func(fig *parallel.Figure, title string) error {
		r := glotrender.New()
		parallel.Draw(fig, r, title)
		return r.Show()
	}
}
