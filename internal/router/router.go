package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/acervo-api/docs"
	"github.com/saulo-duarte/acervo-api/internal/health"
	"github.com/saulo-duarte/acervo-api/internal/middlewares"
	"github.com/saulo-duarte/acervo-api/internal/movie"
	"github.com/saulo-duarte/acervo-api/internal/question"
)

type RouterConfig struct {
	HealthHandler   *health.Handler
	QuestionHandler *question.Handler
	MovieHandler    *movie.Handler
	AllowedOrigins  []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", cfg.HealthHandler.Status)
	r.Mount("/questoes", question.Routes(cfg.QuestionHandler))
	r.Mount("/filmes", movie.Routes(cfg.MovieHandler))

	return r
}
