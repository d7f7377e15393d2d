package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/quizsession"
	"github.com/quizforge/quizforge/internal/web"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	SessionHandler *quizsession.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/session", quizsession.Routes(cfg.SessionHandler))
	})

	web.MountAssets(r)
	return r
}
