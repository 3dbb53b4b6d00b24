package movie

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
	ErrMovieNotFound = errors.New("filme não encontrado")
	ErrInvalidMovie  = errors.New("campos obrigatórios ausentes")
)

type Service interface {
	List(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id string) (*Movie, error)
	Create(ctx context.Context, dto CreateMovieDTO) (*Movie, error)
	Update(ctx context.Context, id string, dto UpdateMovieDTO) (*Movie, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
	mode     patch.Mode
}

func NewService(repo Repository, mode patch.Mode) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
		mode:     mode,
	}
}

func (s *service) List(ctx context.Context) ([]Movie, error) {
	movies, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list movies")
		return nil, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

func (s *service) Get(ctx context.Context, id string) (*Movie, error) {
	return s.find(config.WithContext(ctx), id)
}

// Create stores absent or falsy optional fields as NULL, except
// avaliacao_media which falls back to 0.
func (s *service) Create(ctx context.Context, dto CreateMovieDTO) (*Movie, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Movie creation without required fields")
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovie, err)
	}

	m := &Movie{
		Titulo:         dto.Titulo,
		Descricao:      patch.OrNil(dto.Descricao),
		AnoLancamento:  int(dto.AnoLancamento),
		DuracaoMin:     patch.OrNil(patch.IntPtr(dto.DuracaoMin)),
		Diretor:        dto.Diretor,
		AvaliacaoMedia: patch.OrDefault(patch.FloatPtr(dto.AvaliacaoMedia), 0),
		PosterURL:      patch.OrNil(dto.PosterURL),
	}
	if err := s.repo.Create(m); err != nil {
		log.WithError(err).Error("Failed to create movie")
		return nil, err
	}

	log.WithField("id_filme", m.ID).Info("Movie created")
	return m, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateMovieDTO) (*Movie, error) {
	log := config.WithContext(ctx)

	m, err := s.find(log, id)
	if err != nil {
		return nil, err
	}

	m.Titulo = patch.Value(s.mode, dto.Titulo, m.Titulo)
	m.Descricao = patch.Nullable(s.mode, dto.Descricao, m.Descricao)
	m.AnoLancamento = patch.Value(s.mode, patch.IntPtr(dto.AnoLancamento), m.AnoLancamento)
	m.DuracaoMin = patch.Nullable(s.mode, patch.IntPtr(dto.DuracaoMin), m.DuracaoMin)
	m.Diretor = patch.Value(s.mode, dto.Diretor, m.Diretor)
	m.AvaliacaoMedia = patch.Value(s.mode, patch.FloatPtr(dto.AvaliacaoMedia), m.AvaliacaoMedia)
	m.PosterURL = patch.Nullable(s.mode, dto.PosterURL, m.PosterURL)

	if err := s.repo.Update(m); err != nil {
		log.WithError(err).Error("Failed to update movie")
		return nil, err
	}

	log.WithField("id_filme", m.ID).Info("Movie updated")
	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	m, err := s.find(log, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(m.ID); err != nil {
		log.WithError(err).Error("Failed to delete movie")
		return err
	}

	log.WithField("id_filme", m.ID).Info("Movie deleted")
	return nil
}

func (s *service) find(log logrus.FieldLogger, id string) (*Movie, error) {
	mid, ok := database.ParseID(id)
	if !ok {
		log.WithField("id_filme", id).Warn("Invalid movie ID")
		return nil, ErrMovieNotFound
	}

	m, err := s.repo.FindByID(mid)
	if err != nil {
		log.WithError(err).Error("Error finding movie by ID")
		return nil, err
	}
	if m == nil {
		log.WithField("id_filme", mid).Warn("Movie not found")
		return nil, ErrMovieNotFound
	}
	return m, nil
}
