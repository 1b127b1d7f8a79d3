package dataset

// Scenario is one modelled case of a source-apportionment study: one
// profile (a value per species) for each modelled source factor.
type Scenario struct {
	Name    string
	Factors [][]float64
}

// PollutionProfiles returns the source profile estimates of the Denver
// Aerosol Sources and Health study (doi:10.1016/j.atmosenv.2008.12.017):
// five modelled pollution sources over nine chemical species, under four
// scenarios that add the gas-phase species CO and O3.
func PollutionProfiles() (species []string, scenarios []Scenario) {
	species = []string{"Sulfate", "Nitrate", "EC", "OC1", "OC2", "OC3", "OP", "CO", "O3"}
	scenarios = []Scenario{
		{"Basecase", [][]float64{
			{0.88, 0.01, 0.03, 0.03, 0.00, 0.06, 0.01, 0.00, 0.00},
			{0.07, 0.95, 0.04, 0.05, 0.00, 0.02, 0.01, 0.00, 0.00},
			{0.01, 0.02, 0.85, 0.19, 0.05, 0.10, 0.00, 0.00, 0.00},
			{0.02, 0.01, 0.07, 0.01, 0.21, 0.12, 0.98, 0.00, 0.00},
			{0.01, 0.01, 0.02, 0.71, 0.74, 0.70, 0.00, 0.00, 0.00},
		}},
		{"With CO", [][]float64{
			{0.88, 0.02, 0.02, 0.02, 0.00, 0.05, 0.00, 0.05, 0.00},
			{0.08, 0.94, 0.04, 0.02, 0.00, 0.01, 0.12, 0.04, 0.00},
			{0.01, 0.01, 0.79, 0.10, 0.00, 0.05, 0.00, 0.31, 0.00},
			{0.00, 0.02, 0.03, 0.38, 0.31, 0.31, 0.00, 0.59, 0.00},
			{0.02, 0.02, 0.11, 0.47, 0.69, 0.58, 0.88, 0.00, 0.00},
		}},
		{"With O3", [][]float64{
			{0.89, 0.01, 0.07, 0.00, 0.00, 0.05, 0.00, 0.00, 0.03},
			{0.07, 0.95, 0.05, 0.04, 0.00, 0.02, 0.12, 0.00, 0.00},
			{0.01, 0.02, 0.86, 0.27, 0.16, 0.19, 0.00, 0.00, 0.00},
			{0.01, 0.03, 0.00, 0.32, 0.29, 0.27, 0.00, 0.00, 0.95},
			{0.02, 0.00, 0.03, 0.37, 0.56, 0.47, 0.87, 0.00, 0.00},
		}},
		{"CO & O3", [][]float64{
			{0.87, 0.01, 0.08, 0.00, 0.00, 0.04, 0.00, 0.00, 0.01},
			{0.09, 0.95, 0.02, 0.03, 0.00, 0.01, 0.13, 0.06, 0.00},
			{0.01, 0.02, 0.71, 0.24, 0.13, 0.16, 0.00, 0.50, 0.00},
			{0.01, 0.03, 0.00, 0.28, 0.24, 0.23, 0.00, 0.44, 0.88},
			{0.02, 0.00, 0.18, 0.45, 0.64, 0.55, 0.86, 0.00, 0.16},
		}},
	}
	return species, scenarios
}
