package controllers

import (
	"context"
	"fmt"
	"slices"

	"floatchat/floatchat/synthetic"
	"floatchat/floatchat/utils/logging"
	types "floatchat/floatchat/utils/types"
)

const (
	floatCount      = 50
	profileMaxDepth = 1000
	profileStep     = 10
	temperatureDays = 30
	timeSeriesDays  = 90
	maxSeriesDays   = 365
	maxFilterDepth  = 2000
)

// DataController serves the synthetic datasets behind the map and charts.
// Every call regenerates the data; there is no backing store.
type DataController struct{}

func NewDataController() *DataController {
	return &DataController{}
}

func (c *DataController) FloatMap(ctx context.Context) []synthetic.FloatPosition {
	defer logging.LogDuration(ctx, "data_controller_float_map")()
	return synthetic.FloatPositions(floatCount)
}

func (c *DataController) SalinityProfile(ctx context.Context) []synthetic.SalinityPoint {
	return synthetic.SalinityProfile(profileMaxDepth, profileStep)
}

func (c *DataController) TemperatureSeries(ctx context.Context) []synthetic.TemperaturePoint {
	return synthetic.TemperatureSeries(temperatureDays)
}

// TimeSeries returns the combined temperature/salinity series. The window
// is client-supplied, so anything outside 1..maxSeriesDays falls back to
// the default 90 days rather than sizing an allocation from raw input.
func (c *DataController) TimeSeries(ctx context.Context, days int) []synthetic.TimeSeriesPoint {
	if days <= 0 || days > maxSeriesDays {
		days = timeSeriesDays
	}
	return synthetic.CombinedSeries(days)
}

func (c *DataController) OceanAverages(ctx context.Context) []synthetic.OceanAverage {
	return synthetic.OceanAverages()
}

// ApplyFilters validates the filter panel selection and acknowledges it.
// The synthetic datasets ignore filters, matching the prototype behavior.
func (c *DataController) ApplyFilters(ctx context.Context, req types.FilterRequest) (types.FilterResponse, error) {
	if req.Overlay != "" && !slices.Contains(synthetic.Overlays(), req.Overlay) {
		return types.FilterResponse{}, fmt.Errorf("unknown map overlay %q", req.Overlay)
	}
	if req.DepthMin < 0 || req.DepthMax > maxFilterDepth || req.DepthMin > req.DepthMax {
		return types.FilterResponse{}, fmt.Errorf("depth range must satisfy 0 <= min <= max <= %d", maxFilterDepth)
	}
	for _, basin := range req.Basins {
		if !slices.Contains(synthetic.Basins(), basin) {
			return types.FilterResponse{}, fmt.Errorf("unknown ocean basin %q", basin)
		}
	}
	return types.FilterResponse{Message: "Filters applied to all visualizations!"}, nil
}
