package routes

import (
	"floatchat/floatchat/controllers"

	"github.com/go-chi/chi/v5"
)

func UIRoutes(ctrl *controllers.UIController) chi.Router {
	r := chi.NewRouter()
	r.Get("/", ctrl.Index)
	r.Get("/style.css", ctrl.Stylesheet)
	return r
}
