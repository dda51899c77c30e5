// Package synthetic generates the throwaway demo datasets behind the map,
// charts and export preview. Values are regenerated on every call; nothing
// here is real ARGO data.
package synthetic

import (
	"math/rand/v2"
)

var floatColors = []string{"#ff9e00", "#48cae4", "#9d4edd", "#f72585", "#4cc9f0"}

// FloatPosition is one randomly placed ARGO float marker.
type FloatPosition struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Size  int     `json:"size"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

// FloatPositions generates n random float markers between 60S and 60N.
func FloatPositions(n int) []FloatPosition {
	out := make([]FloatPosition, n)
	for i := range out {
		out[i] = FloatPosition{
			Lat:   uniform(-60, 60),
			Lon:   uniform(-180, 180),
			Size:  5 + rand.IntN(11),
			Color: floatColors[rand.IntN(len(floatColors))],
			Value: uniform(0, 30),
		}
	}
	return out
}

func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}
