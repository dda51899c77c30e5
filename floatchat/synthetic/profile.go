package synthetic

import (
	"math"
	"math/rand/v2"
)

// SalinityPoint pairs a depth with a synthetic salinity reading.
type SalinityPoint struct {
	Depth    float64 `json:"depth"`
	Salinity float64 `json:"salinity"`
}

// SalinityProfile synthesizes a depth profile from the surface down to
// maxDepth meters, one point per step. Salinity oscillates around 35 PSU
// with light gaussian noise.
func SalinityProfile(maxDepth, step float64) []SalinityPoint {
	if step <= 0 {
		step = 10
	}
	var out []SalinityPoint
	for d := 0.0; d < maxDepth; d += step {
		out = append(out, SalinityPoint{
			Depth:    d,
			Salinity: 35 + 0.1*math.Sin(d/50) + 0.05*rand.NormFloat64(),
		})
	}
	return out
}
