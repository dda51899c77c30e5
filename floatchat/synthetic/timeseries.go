package synthetic

import (
	"math"
	"math/rand/v2"
	"time"
)

const dateLayout = "2006-01-02"

// TemperaturePoint is one day of the sea-surface temperature chart.
type TemperaturePoint struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
}

// TemperatureSeries synthesizes a daily temperature series ending today.
func TemperatureSeries(days int) []TemperaturePoint {
	out := make([]TemperaturePoint, days)
	for i := 0; i < days; i++ {
		out[i] = TemperaturePoint{
			Date:        dayOffset(i - days + 1),
			Temperature: 20 + 5*math.Sin(float64(i)/5) + 0.5*rand.NormFloat64(),
		}
	}
	return out
}

// TimeSeriesPoint carries both parameters for the combined chart.
type TimeSeriesPoint struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
}

// CombinedSeries synthesizes the slower-cycling temperature and salinity
// series used by the line/area chart, ending today.
func CombinedSeries(days int) []TimeSeriesPoint {
	out := make([]TimeSeriesPoint, days)
	for i := 0; i < days; i++ {
		out[i] = TimeSeriesPoint{
			Date:        dayOffset(i - days + 1),
			Temperature: 20 + 5*math.Sin(float64(i)/10) + 0.8*rand.NormFloat64(),
			Salinity:    35 + 0.5*math.Sin(float64(i)/15) + 0.2*rand.NormFloat64(),
		}
	}
	return out
}

func dayOffset(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(dateLayout)
}
