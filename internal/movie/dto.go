package movie

import "github.com/saulo-duarte/acervo-api/internal/patch"

// Numeric fields accept either JSON numbers or numeric strings.
type CreateMovieDTO struct {
	Titulo         string       `json:"titulo" validate:"required"`
	Descricao      *string      `json:"descricao"`
	AnoLancamento  patch.Int    `json:"ano_lancamento" validate:"required" swaggertype:"integer"`
	DuracaoMin     *patch.Int   `json:"duracao_min" swaggertype:"integer"`
	Diretor        string       `json:"diretor" validate:"required"`
	AvaliacaoMedia *patch.Float `json:"avaliacao_media" swaggertype:"number"`
	PosterURL      *string      `json:"poster_url"`
}

type UpdateMovieDTO struct {
	Titulo         *string      `json:"titulo"`
	Descricao      *string      `json:"descricao"`
	AnoLancamento  *patch.Int   `json:"ano_lancamento" swaggertype:"integer"`
	DuracaoMin     *patch.Int   `json:"duracao_min" swaggertype:"integer"`
	Diretor        *string      `json:"diretor"`
	AvaliacaoMedia *patch.Float `json:"avaliacao_media" swaggertype:"number"`
	PosterURL      *string      `json:"poster_url"`
}

type MensagemResponse struct {
	Mensagem string `json:"mensagem" example:"Filme não encontrado"`
}

type CreatedResponse struct {
	Mensagem string `json:"mensagem" example:"Filme cadastrado com sucesso!"`
	IDFilme  int64  `json:"id_filme" example:"7"`
}

type ErrorResponse struct {
	Erro     string `json:"erro" example:"Erro interno do servidor"`
	Mensagem string `json:"mensagem,omitempty"`
}
