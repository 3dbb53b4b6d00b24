package health

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/acervo-api/internal/config"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusResponse struct {
	Message  string `json:"message" example:"API da Amanda"`
	Author   string `json:"author" example:"Amanda Rodrigues de Sousa"`
	StatusBD string `json:"statusBD" example:"ok"`
}

type Handler struct {
	db     Pinger
	name   string
	author string
}

func NewHandler(db Pinger, name, author string) *Handler {
	return &Handler{db: db, name: name, author: author}
}

// Status godoc
// @Summary      Identificação da API e estado do banco
// @Description  Sempre responde 200; falhas do banco aparecem em statusBD.
// @Tags         health
// @Produce      json
// @Success      200 {object} StatusResponse
// @Router       / [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Banco de dados indisponível")
		status = err.Error()
	}

	config.JSON(w, http.StatusOK, StatusResponse{
		Message:  h.name,
		Author:   h.author,
		StatusBD: status,
	})
}
