package mplookup

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", GetMP)
	r.Post("/", GetMP)

	return r
}
