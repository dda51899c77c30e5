package synthetic

// OceanAverage is one bar of the fixed depth-comparison chart.
type OceanAverage struct {
	Ocean   string  `json:"ocean"`
	AvgTemp float64 `json:"avg_temp"`
}

// OceanAverages returns the fixed per-basin mean temperature table.
func OceanAverages() []OceanAverage {
	return []OceanAverage{
		{Ocean: "Pacific", AvgTemp: 18.5},
		{Ocean: "Atlantic", AvgTemp: 16.2},
		{Ocean: "Indian", AvgTemp: 22.1},
		{Ocean: "Southern", AvgTemp: 3.4},
		{Ocean: "Arctic", AvgTemp: -1.2},
	}
}

// Basins lists the ocean basins offered by the filter panel.
func Basins() []string {
	return []string{"Pacific", "Atlantic", "Indian", "Southern", "Arctic"}
}

// Overlays lists the supported map overlay parameters.
func Overlays() []string {
	return []string{"Temperature", "Salinity", "Chlorophyll", "Oxygen"}
}
