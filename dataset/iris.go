package dataset

import (
	_ "embed"
	"strings"
)

//go:embed iris.csv
var irisCSV string

// Iris returns Fisher's iris measurements: 150 flowers, four features in
// centimetres, labeled setosa, versicolor and virginica.
func Iris() *Dataset {
	d, err := ReadCSV(strings.NewReader(irisCSV), "species")
	if err != nil {
		panic("dataset: embedded iris data: " + err.Error())
	}
	return d
}
