// Command radarchart draws radar charts of pollution source profiles,
// or of per-cluster means and variances read from a CSV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/statplot/dataset"
	"github.com/HamletTheHamster/statplot/internal/cli"
	"github.com/HamletTheHamster/statplot/internal/figio"
	"github.com/HamletTheHamster/statplot/radar"
)

func main() {
	log.SetPrefix("radarchart: ")
	log.SetFlags(0)

	var (
		out     = flag.String("o", "", "output `file`; the extension picks the format (default plots/<date>/<time>/radar.{png,svg,pdf})")
		frame   = flag.String("frame", "polygon", "chart frame: polygon or circle")
		csvPath = flag.String("csv", "", "plot cluster profiles of a CSV `file` instead of the pollution example")
		class   = flag.String("class", "Cluster", "cluster `column` of the CSV file")
		drop    = flag.String("drop", "INDEX,EDAT,FORMACIO", "comma-separated CSV `columns` to ignore")
		grids   = flag.String("grids", "", "comma-separated grid radii (default depends on the data)")
	)
	flag.Parse()

	f, err := radar.ParseFrame(*frame)
	if err != nil {
		log.Fatal(err)
	}
	var rgrids []float64
	if *grids != "" {
		if rgrids, err = cli.Floats(*grids); err != nil {
			log.Fatal(err)
		}
	}

	var fig *radar.Figure
	var width, height vg.Length
	if *csvPath == "" {
		if rgrids == nil {
			rgrids = []float64{0.2, 0.4, 0.6, 0.8}
		}
		fig, err = pollutionFigure(f, rgrids)
		width, height = 9*vg.Inch, 9*vg.Inch
	} else {
		if rgrids == nil {
			rgrids = []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}
		}
		fig, err = clusterFigure(*csvPath, *class, cli.Strings(*drop), f, rgrids)
		width, height = 15*vg.Inch, 6*vg.Inch
	}
	if err != nil {
		log.Fatal(err)
	}

	path := *out
	if path == "" {
		path = figio.DefaultPath("radar", time.Now())
	}
	paths, err := fig.Save(path, width, height)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		log.Printf("wrote %s", p)
	}
}

// pollutionFigure draws the five source profiles of each scenario in a
// 2x2 grid. Only the first panel carries the legend.
func pollutionFigure(frame radar.Frame, grids []float64) (*radar.Figure, error) {
	species, scenarios := dataset.PollutionProfiles()

	fig := &radar.Figure{
		Title: "5-Factor Solution Profiles Across Four Scenarios",
		Rows:  2,
		Cols:  2,
	}
	for i, sc := range scenarios {
		var names []string
		if i == 0 {
			for k := range sc.Factors {
				names = append(names, fmt.Sprintf("Factor %d", k+1))
			}
		}
		c, err := panel(sc.Name, species, frame, grids, sc.Factors, names)
		if err != nil {
			return nil, err
		}
		fig.Charts = append(fig.Charts, c)
	}
	return fig, nil
}

// clusterFigure draws per-cluster means and variances side by side.
func clusterFigure(
	path, class string,
	drop []string,
	frame radar.Frame,
	grids []float64,
) (
	*radar.Figure, error,
) {

	ds, err := cli.Load(path, class, drop)
	if err != nil {
		return nil, err
	}
	prof := ds.ClassProfiles()

	mean, err := panel("Mean", ds.FeatureNames(), frame, grids, prof.Means, prof.Names)
	if err != nil {
		return nil, err
	}
	variance, err := panel("Variance", ds.FeatureNames(), frame, grids, prof.Variances, nil)
	if err != nil {
		return nil, err
	}

	return &radar.Figure{
		Title:  fmt.Sprintf("Cluster profiles, K=%d", len(prof.Labels)),
		Rows:   1,
		Cols:   2,
		Charts: []*radar.Chart{mean, variance},
	}, nil
}

func panel(
	title string,
	labels []string,
	frame radar.Frame,
	grids []float64,
	series [][]float64,
	names []string,
) (
	*radar.Chart, error,
) {

	c, err := radar.New(len(labels), frame)
	if err != nil {
		return nil, err
	}
	c.SetTitle(title)
	if err := c.SetVarLabels(labels); err != nil {
		return nil, err
	}
	if err := c.SetRGrids(grids); err != nil {
		return nil, err
	}
	for k, values := range series {
		name := ""
		if k < len(names) {
			name = names[k]
		}
		if err := c.Add(name, values, nil); err != nil {
			return nil, err
		}
	}
	return c, nil
}
