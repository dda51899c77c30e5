package controllers

import (
	"context"
	"testing"

	"floatchat/floatchat/utils/logging"
	types "floatchat/floatchat/utils/types"
)

func setupDataTest(t *testing.T) *DataController {
	logging.InitLogger()
	return NewDataController()
}

func TestDataEndpointsShape(t *testing.T) {
	c := setupDataTest(t)
	ctx := context.Background()
	if got := len(c.FloatMap(ctx)); got != floatCount {
		t.Errorf("expected %d float positions, got %d", floatCount, got)
	}
	if got := len(c.SalinityProfile(ctx)); got != profileMaxDepth/profileStep {
		t.Errorf("expected %d profile points, got %d", profileMaxDepth/profileStep, got)
	}
	if got := len(c.TemperatureSeries(ctx)); got != temperatureDays {
		t.Errorf("expected %d temperature points, got %d", temperatureDays, got)
	}
	if got := len(c.TimeSeries(ctx, 0)); got != timeSeriesDays {
		t.Errorf("expected default %d series points, got %d", timeSeriesDays, got)
	}
	if got := len(c.TimeSeries(ctx, 7)); got != 7 {
		t.Errorf("expected 7 series points, got %d", got)
	}
	if got := len(c.TimeSeries(ctx, maxSeriesDays)); got != maxSeriesDays {
		t.Errorf("expected %d series points at the cap, got %d", maxSeriesDays, got)
	}
	if got := len(c.OceanAverages(ctx)); got != 5 {
		t.Errorf("expected 5 ocean averages, got %d", got)
	}
}

// the window is attacker-controlled via the query string; an oversized
// value must not size the allocation
func TestTimeSeriesCapsOversizedWindow(t *testing.T) {
	c := setupDataTest(t)
	for _, days := range []int{maxSeriesDays + 1, 2_000_000, 2_000_000_000} {
		if got := len(c.TimeSeries(context.Background(), days)); got != timeSeriesDays {
			t.Errorf("days=%d: expected fallback to %d points, got %d", days, timeSeriesDays, got)
		}
	}
}

func TestApplyFiltersValidation(t *testing.T) {
	c := setupDataTest(t)
	ctx := context.Background()

	resp, err := c.ApplyFilters(ctx, types.FilterRequest{
		Overlay:  "Temperature",
		DepthMin: 0,
		DepthMax: 1000,
		Basins:   []string{"Pacific", "Atlantic", "Indian"},
	})
	if err != nil {
		t.Fatalf("ApplyFilters: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected confirmation message")
	}

	bad := []types.FilterRequest{
		{Overlay: "Pressure", DepthMax: 100},
		{DepthMin: 500, DepthMax: 100},
		{DepthMin: 0, DepthMax: 5000},
		{DepthMax: 100, Basins: []string{"Mediterranean"}},
	}
	for i, req := range bad {
		if _, err := c.ApplyFilters(ctx, req); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
