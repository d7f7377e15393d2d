package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetSession)
	r.Post("/generate", h.Generate)
	r.Post("/answers", h.SelectAnswer)
	r.Post("/submit", h.Submit)
	r.Get("/results", h.GetResults)
	r.Post("/reset", h.Reset)
	return r
}
