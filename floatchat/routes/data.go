package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"floatchat/floatchat/controllers"
	types "floatchat/floatchat/utils/types"

	"github.com/go-chi/chi/v5"
)

func DataRoutes(ctrl *controllers.DataController) chi.Router {
	r := chi.NewRouter()

	r.Get("/floats", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.FloatMap(r.Context()))
	})

	r.Get("/salinity-profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.SalinityProfile(r.Context()))
	})

	r.Get("/temperature", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.TemperatureSeries(r.Context()))
	})

	// GET /data/timeseries?days=N
	r.Get("/timeseries", func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		json.NewEncoder(w).Encode(ctrl.TimeSeries(r.Context(), days))
	})

	r.Get("/ocean-averages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.OceanAverages(r.Context()))
	})

	// POST /data/filters : validate and acknowledge the filter panel
	r.Post("/filters", func(w http.ResponseWriter, r *http.Request) {
		var req types.FilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, err := ctrl.ApplyFilters(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(resp)
	})

	return r
}
