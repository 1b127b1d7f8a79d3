package parallel

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/render/plotrender"
)

// PlotOptions say where a plot goes. With neither File nor Show set,
// Plot only builds the figure.
// The package links no on-screen backend; Show is supplied by the caller.
type PlotOptions struct {
	Title string
	// File is written through gonum/plot; the extension picks the
	// format and a path without one is written as png, svg and pdf.
	File string
	// Show, when set, is called with the figure and title after any
	// file is written.
	Show func(fig *Figure, title string) error
	// Width and Height default to 2 inches per axis by 10 inches.
	Width, Height vg.Length
}

// Plot builds the parallel-coordinate plot of ds, then saves and/or
// shows it. It returns the figure and the files written.
func Plot(
	ds *dataset.Dataset,
	opts Options,
	po PlotOptions,
) (
	*Figure, []string, error,
) {

	fig, err := Build(ds, opts)
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	if po.File != "" {
		w, h := po.Width, po.Height
		if w == 0 {
			w = vg.Length(2*len(fig.Names)) * vg.Inch
		}
		if h == 0 {
			h = 10 * vg.Inch
		}

		r := plotrender.New(w, h)
		Draw(fig, r, po.Title)
		if paths, err = r.Save(po.File); err != nil {
			return nil, nil, fmt.Errorf("parallel: %w", err)
		}
	}

	if po.Show != nil {
		if err := po.Show(fig, po.Title); err != nil {
			return nil, paths, fmt.Errorf("parallel: show: %w", err)
		}
	}

	return fig, paths, nil
}
