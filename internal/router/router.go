package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quizgen-api/docs"
	"github.com/saulo-duarte/quizgen-api/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-api/internal/middlewares"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
	return r
}
