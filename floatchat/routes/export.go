package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"floatchat/floatchat/controllers"
	"floatchat/floatchat/export"
	types "floatchat/floatchat/utils/types"

	"github.com/go-chi/chi/v5"
)

func ExportRoutes(ctrl *controllers.ExportController) chi.Router {
	r := chi.NewRouter()

	// POST /export/generate : produce the download, or a warning for
	// formats that are placeholders
	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		var req types.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		payload, err := ctrl.Generate(r.Context(), req)
		if err != nil {
			if errors.Is(err, export.ErrUnsupportedFormat) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"warning": err.Error()})
			} else {
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="argo_data.csv"`)
		w.Write(payload)
	})

	// GET /export/preview : the rows the export would contain
	r.Get("/preview", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.Preview(r.Context()))
	})

	r.Get("/formats", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ctrl.Formats(r.Context()))
	})

	return r
}
