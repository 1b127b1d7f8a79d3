// Command parallelplot draws a parallel-coordinate plot of the iris
// sample or of a CSV file with a class column.
//
// The -show flag needs gnuplot and a binary built with -tags gnuplot.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/HamletTheHamster/statplot/internal/cli"
	"github.com/HamletTheHamster/statplot/internal/figio"
	"github.com/HamletTheHamster/statplot/parallel"
	"github.com/HamletTheHamster/statplot/render/chartrender"
)

// showFigure is set by the gnuplot build.
var showFigure func(fig *parallel.Figure, title string) error

func main() {
	log.SetPrefix("parallelplot: ")
	log.SetFlags(0)

	var (
		out     = flag.String("o", "", "output `file`; the extension picks the format (default plots/<date>/<time>/parallel.{png,svg,pdf})")
		show    = flag.Bool("show", false, "show the plot in a gnuplot window (needs -tags gnuplot)")
		title   = flag.String("title", "Parallel Coordinates Plot - Iris", "plot title")
		reverse = flag.String("reverse", "", "comma-separated `columns` whose axis is reversed")
		axes    = flag.String("axes", "", "comma-separated `columns` to display, in order")
		rows    = flag.String("rows", "", "comma-separated `rows` to draw")
		noise   = flag.Float64("noise", 0, "`variance` of noise added to separate overlapping curves")
		seed    = flag.Uint64("seed", 0, "noise seed; 0 picks one at random")
		csvPath = flag.String("csv", "", "read the dataset from a CSV `file` instead of iris")
		class   = flag.String("class", "species", "class `column` of the CSV file")
		drop    = flag.String("drop", "", "comma-separated CSV `columns` to ignore")
		backend = flag.String("backend", "gonum", "file renderer: gonum or chart")
	)
	flag.Parse()

	ds, err := cli.Load(*csvPath, *class, cli.Strings(*drop))
	if err != nil {
		log.Fatal(err)
	}

	opts := parallel.Options{Noise: *noise, Rand: cli.Rand(*seed)}
	if opts.Reverse, err = cli.Ints(*reverse); err != nil {
		log.Fatal(err)
	}
	if opts.Axes, err = cli.Ints(*axes); err != nil {
		log.Fatal(err)
	}
	if opts.Rows, err = cli.Ints(*rows); err != nil {
		log.Fatal(err)
	}

	var showFn func(*parallel.Figure, string) error
	if *show {
		if showFigure == nil {
			log.Fatal("-show: built without gnuplot support; rebuild with -tags gnuplot")
		}
		showFn = showFigure
	}

	path := *out
	if path == "" {
		path = figio.DefaultPath("parallel", time.Now())
	}

	switch *backend {
	case "gonum":
		_, paths, err := parallel.Plot(ds, opts, parallel.PlotOptions{Title: *title, File: path, Show: showFn})
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range paths {
			log.Printf("wrote %s", p)
		}

	case "chart":
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		fig, _, err := parallel.Plot(ds, opts, parallel.PlotOptions{Title: *title, Show: showFn})
		if err != nil {
			log.Fatal(err)
		}
		r := chartrender.New(240*len(fig.Names), 1000)
		parallel.Draw(fig, r, *title)
		if err := r.Save(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)

	default:
		log.Fatalf("unknown backend %q", *backend)
	}
}
