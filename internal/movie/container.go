package movie

import (
	"github.com/saulo-duarte/acervo-api/internal/database"
	"github.com/saulo-duarte/acervo-api/internal/patch"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(conn database.Connector, mode patch.Mode) *Container {
	repo := NewRepository(conn)
	service := NewService(repo, mode)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
