package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/acervo-api/internal/config"
	"github.com/saulo-duarte/acervo-api/internal/database"
	"github.com/saulo-duarte/acervo-api/internal/patch"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionNotFound = errors.New("questão não encontrada")
	ErrInvalidQuestion  = errors.New("dados da questão inválidos")
)

type QuestionService interface {
	List(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id string) (*Question, error)
	Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	Update(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error)
	Delete(ctx context.Context, id string) error
}

type questionService struct {
	repo     QuestionRepository
	validate *validator.Validate
	mode     patch.Mode
}

func NewService(repo QuestionRepository, mode patch.Mode) QuestionService {
	return &questionService{
		repo:     repo,
		validate: validator.New(),
		mode:     mode,
	}
}

func (s *questionService) List(ctx context.Context) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.List()
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões")
		return nil, err
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *questionService) GetByID(ctx context.Context, id string) (*Question, error) {
	return s.find(config.WithContext(ctx), id)
}

func (s *questionService) Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Tentativa de criar questão com campos obrigatórios ausentes")
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	q := &Question{
		Enunciado:  dto.Enunciado,
		Disciplina: dto.Disciplina,
		Tema:       dto.Tema,
		Nivel:      dto.Nivel,
	}
	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Erro ao inserir questão")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Questão criada com sucesso")
	return q, nil
}

// Update fetches the stored row, merges the body over it and writes every
// column back. The read and the write are separate statements.
func (s *questionService) Update(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	existing, err := s.find(log, id)
	if err != nil {
		return nil, err
	}

	existing.Enunciado = patch.Value(s.mode, dto.Enunciado, existing.Enunciado)
	existing.Disciplina = patch.Value(s.mode, dto.Disciplina, existing.Disciplina)
	existing.Tema = patch.Value(s.mode, dto.Tema, existing.Tema)
	existing.Nivel = patch.Value(s.mode, dto.Nivel, existing.Nivel)

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar questão")
		return nil, err
	}

	log.WithField("question_id", existing.ID).Info("Questão atualizada com sucesso")
	return existing, nil
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	existing, err := s.find(log, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		log.WithError(err).Error("Erro ao excluir questão")
		return err
	}

	log.WithField("question_id", existing.ID).Info("Questão excluída com sucesso")
	return nil
}

func (s *questionService) find(log logrus.FieldLogger, id string) (*Question, error) {
	qid, ok := database.ParseID(id)
	if !ok {
		log.WithField("question_id", id).Warn("ID de questão inválido")
		return nil, ErrQuestionNotFound
	}

	q, err := s.repo.GetByID(qid)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar questão")
		return nil, err
	}
	if q == nil {
		log.WithField("question_id", qid).Warn("Questão não encontrada")
		return nil, ErrQuestionNotFound
	}
	return q, nil
}
