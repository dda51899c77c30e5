package synthetic

// SampleRecord is one synthetic row of the export preview.
type SampleRecord struct {
	Date        string  `json:"date"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
	Depth       float64 `json:"depth"`
}

// SampleRecords generates n export rows on consecutive days ending today.
func SampleRecords(n int) []SampleRecord {
	out := make([]SampleRecord, n)
	for i := 0; i < n; i++ {
		out[i] = SampleRecord{
			Date:        dayOffset(i - n + 1),
			Latitude:    uniform(-60, 60),
			Longitude:   uniform(-180, 180),
			Temperature: uniform(0, 30),
			Salinity:    uniform(33, 37),
			Depth:       uniform(0, 2000),
		}
	}
	return out
}
