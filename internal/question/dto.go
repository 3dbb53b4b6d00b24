package question

type CreateQuestionDTO struct {
	Enunciado  string `json:"enunciado" validate:"required"`
	Disciplina string `json:"disciplina" validate:"required"`
	Tema       string `json:"tema" validate:"required"`
	Nivel      string `json:"nivel" validate:"required"`
}

type UpdateQuestionDTO struct {
	Enunciado  *string `json:"enunciado"`
	Disciplina *string `json:"disciplina"`
	Tema       *string `json:"tema"`
	Nivel      *string `json:"nivel"`
}

// The questoes routes answer with two key spellings: "mensagem" on most
// routes and "message" on PUT. Clients depend on both.

type MensagemResponse struct {
	Mensagem string `json:"mensagem" example:"Questão não encontrada"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Questão atualizada com sucesso!"`
}

type CreatedResponse struct {
	Mensagem string `json:"mensagem" example:"Questão criada com sucesso!"`
	ID       int64  `json:"id" example:"42"`
}

type ErrorResponse struct {
	Erro     string `json:"erro" example:"Erro interno do servidor"`
	Mensagem string `json:"mensagem,omitempty"`
}
