package question

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/acervo-api/internal/config"
)

const (
	msgInternal    = "Erro interno do servidor"
	msgNotFound    = "Questão não encontrada"
	msgInvalid     = "Dados inválidos"
	msgRequired    = "Todos os campos (enunciado, disciplina, tema, nivel) são obrigatórios."
	msgListFailure = "Não foi possível buscar as questões"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// List godoc
// @Summary      Lista as questões
// @Tags         questoes
// @Produce      json
// @Success      200 {array}  Question
// @Failure      500 {object} ErrorResponse
// @Router       /questoes [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.List(r.Context())
	if err != nil {
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Erro: msgInternal, Mensagem: msgListFailure})
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// GetByID godoc
// @Summary      Busca uma questão
// @Description  A questão é devolvida dentro de um array de um elemento.
// @Tags         questoes
// @Produce      json
// @Param        id path int true "ID da questão"
// @Success      200 {array}  Question
// @Failure      404 {object} MensagemResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questoes/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.JSON(w, http.StatusNotFound, MensagemResponse{Mensagem: msgNotFound})
			return
		}
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Erro: msgInternal})
		return
	}

	config.JSON(w, http.StatusOK, []Question{*q})
}

// Create godoc
// @Summary      Cria uma questão
// @Tags         questoes
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionDTO true "Dados da questão"
// @Success      201 {object} CreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questoes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para criar questão")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Erro: msgInvalid, Mensagem: msgRequired})
		return
	}

	q, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			config.JSON(w, http.StatusBadRequest, ErrorResponse{Erro: msgInvalid, Mensagem: msgRequired})
			return
		}
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Erro: msgInternal})
		return
	}

	config.JSON(w, http.StatusCreated, CreatedResponse{Mensagem: "Questão criada com sucesso!", ID: q.ID})
}

// Update godoc
// @Summary      Atualiza parcialmente uma questão
// @Description  Campos ausentes mantêm o valor gravado.
// @Tags         questoes
// @Accept       json
// @Produce      json
// @Param        id path int true "ID da questão"
// @Param        request body UpdateQuestionDTO false "Campos a alterar"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questoes/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateQuestionDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para atualizar questão")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Erro: msgInvalid})
		return
	}

	if _, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.JSON(w, http.StatusNotFound, MessageResponse{Message: msgNotFound})
			return
		}
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Erro: msgInternal})
		return
	}

	config.JSON(w, http.StatusOK, MessageResponse{Message: "Questão atualizada com sucesso!"})
}

// Delete godoc
// @Summary      Exclui uma questão
// @Tags         questoes
// @Produce      json
// @Param        id path int true "ID da questão"
// @Success      200 {object} MensagemResponse
// @Failure      404 {object} MensagemResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questoes/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.JSON(w, http.StatusNotFound, MensagemResponse{Mensagem: msgNotFound})
			return
		}
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Erro: msgInternal})
		return
	}

	config.JSON(w, http.StatusOK, MensagemResponse{Mensagem: "Questão excluida com sucesso!!"})
}
