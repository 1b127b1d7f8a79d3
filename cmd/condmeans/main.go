// Command condmeans plots every observation of the iris sample (or of a
// CSV file) per measurement and class, with the class means on top.
package main

import (
	"flag"
	"log"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/statplot/condmeans"
	"github.com/HamletTheHamster/statplot/internal/cli"
	"github.com/HamletTheHamster/statplot/internal/figio"
)

func main() {
	log.SetPrefix("condmeans: ")
	log.SetFlags(0)

	var (
		out     = flag.String("o", "", "output `file`; the extension picks the format (default plots/<date>/<time>/condmeans.{png,svg,pdf})")
		title   = flag.String("title", "", "plot title")
		csvPath = flag.String("csv", "", "read the dataset from a CSV `file` instead of iris")
		class   = flag.String("class", "species", "class `column`; also titles the legend")
		drop    = flag.String("drop", "", "comma-separated CSV `columns` to ignore")
		xlabel  = flag.String("x", "value", "value axis title")
		ylabel  = flag.String("y", "measurement", "measurement axis title")
		noise   = flag.Float64("noise", 0, "`variance` of noise added to every measurement")
		seed    = flag.Uint64("seed", 0, "noise seed; 0 picks one at random")
		width   = flag.Float64("width", 8, "figure width in inches")
		height  = flag.Float64("height", 6, "figure height in inches")
	)
	flag.Parse()

	ds, err := cli.Load(*csvPath, *class, cli.Strings(*drop))
	if err != nil {
		log.Fatal(err)
	}

	p, err := condmeans.Plot(ds, condmeans.Options{
		Title:       *title,
		ClassColumn: *class,
		XLabel:      *xlabel,
		YLabel:      *ylabel,
		Variance:    *noise,
		Rand:        cli.Rand(*seed),
	})
	if err != nil {
		log.Fatal(err)
	}

	path := *out
	if path == "" {
		path = figio.DefaultPath("condmeans", time.Now())
	}
	paths, err := figio.Save(p, vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch, path)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		log.Printf("wrote %s", p)
	}
}
