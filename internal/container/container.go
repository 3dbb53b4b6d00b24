package container

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/acervo-api/internal/config"
	"github.com/saulo-duarte/acervo-api/internal/database"
	"github.com/saulo-duarte/acervo-api/internal/health"
	"github.com/saulo-duarte/acervo-api/internal/movie"
	"github.com/saulo-duarte/acervo-api/internal/question"
	"github.com/saulo-duarte/acervo-api/internal/router"
)

type Container struct {
	Settings          *config.Settings
	Provider          *database.Provider
	HealthHandler     *health.Handler
	QuestionContainer *question.QuestionContainer
	MovieContainer    *movie.Container
}

// New wires every component around one shared provider. No connection is
// opened here; the first query does that.
func New(settings *config.Settings) *Container {
	return NewWithProvider(settings, database.NewProviderFromSettings(settings))
}

func NewWithProvider(settings *config.Settings, provider *database.Provider) *Container {
	return &Container{
		Settings:          settings,
		Provider:          provider,
		HealthHandler:     health.NewHandler(provider, settings.APIName, settings.APIAuthor),
		QuestionContainer: question.NewQuestionContainer(provider, settings.MergeMode),
		MovieContainer:    movie.NewContainer(provider, settings.MergeMode),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		HealthHandler:   c.HealthHandler,
		QuestionHandler: c.QuestionContainer.Handler,
		MovieHandler:    c.MovieContainer.Handler,
		AllowedOrigins:  c.Settings.AllowedOrigins,
	})
}
