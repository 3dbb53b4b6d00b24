package question

import (
	"github.com/saulo-duarte/acervo-api/internal/database"
	"github.com/saulo-duarte/acervo-api/internal/patch"
)

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
}

func NewQuestionContainer(conn database.Connector, mode patch.Mode) *QuestionContainer {
	repo := NewRepository(conn)
	service := NewService(repo, mode)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
	}
}
