package movie

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/acervo-api/internal/config"
)

var (
	internalError = ErrorResponse{Erro: "Erro interno do servidor"}
	notFound      = MensagemResponse{Mensagem: "Filme não encontrado"}
	missingFields = ErrorResponse{
		Erro:     "Campos obrigatórios ausentes",
		Mensagem: "Informe título, ano_lancamento e diretor.",
	}
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      Lista os filmes ordenados por id
// @Tags         filmes
// @Produce      json
// @Success      200 {array}  Movie
// @Failure      500 {object} ErrorResponse
// @Router       /filmes [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context())
	if err != nil {
		config.JSON(w, http.StatusInternalServerError, internalError)
		return
	}

	config.JSON(w, http.StatusOK, movies)
}

// Get godoc
// @Summary      Busca um filme
// @Tags         filmes
// @Produce      json
// @Param        id path int true "ID do filme"
// @Success      200 {object} Movie
// @Failure      404 {object} MensagemResponse
// @Failure      500 {object} ErrorResponse
// @Router       /filmes/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, m)
}

// Create godoc
// @Summary      Cadastra um filme
// @Tags         filmes
// @Accept       json
// @Produce      json
// @Param        request body CreateMovieDTO true "Dados do filme"
// @Success      201 {object} CreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /filmes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateMovieDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.JSON(w, http.StatusBadRequest, missingFields)
		return
	}

	m, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, CreatedResponse{
		Mensagem: "Filme cadastrado com sucesso!",
		IDFilme:  m.ID,
	})
}

// Update godoc
// @Summary      Atualiza os campos informados de um filme
// @Tags         filmes
// @Accept       json
// @Produce      json
// @Param        id path int true "ID do filme"
// @Param        request body UpdateMovieDTO false "Campos a alterar"
// @Success      200 {object} MensagemResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MensagemResponse
// @Failure      500 {object} ErrorResponse
// @Router       /filmes/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateMovieDTO
	if err := config.DecodeJSON(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Erro: "Corpo da requisição inválido"})
		return
	}

	if _, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto); err != nil {
		h.writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, MensagemResponse{Mensagem: "Filme atualizado com sucesso!"})
}

// Delete godoc
// @Summary      Remove um filme
// @Tags         filmes
// @Produce      json
// @Param        id path int true "ID do filme"
// @Success      200 {object} MensagemResponse
// @Failure      404 {object} MensagemResponse
// @Failure      500 {object} ErrorResponse
// @Router       /filmes/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, MensagemResponse{Mensagem: "Filme excluído com sucesso!"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMovieNotFound):
		config.JSON(w, http.StatusNotFound, notFound)
	case errors.Is(err, ErrInvalidMovie):
		config.JSON(w, http.StatusBadRequest, missingFields)
	default:
		config.JSON(w, http.StatusInternalServerError, internalError)
	}
}
