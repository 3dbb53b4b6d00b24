package movie

import (
	"errors"

	"github.com/saulo-duarte/acervo-api/internal/database"
	"gorm.io/gorm"
)

type Repository interface {
	FindAll() ([]Movie, error)
	FindByID(id int64) (*Movie, error)
	Create(m *Movie) error
	Update(m *Movie) error
	Delete(id int64) error
}

type repository struct {
	conn database.Connector
}

func NewRepository(conn database.Connector) Repository {
	return &repository{conn: conn}
}

func (r *repository) FindAll() ([]Movie, error) {
	db, err := r.conn.DB()
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := db.Order("id_filme").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *repository) FindByID(id int64) (*Movie, error) {
	db, err := r.conn.DB()
	if err != nil {
		return nil, err
	}

	var m Movie
	if err := db.First(&m, "id_filme = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) Create(m *Movie) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Create(m).Error
}

// Update overwrites every column of the row, NULLs included.
func (r *repository) Update(m *Movie) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Model(&Movie{}).
		Where("id_filme = ?", m.ID).
		Updates(map[string]interface{}{
			"titulo":          m.Titulo,
			"descricao":       m.Descricao,
			"ano_lancamento":  m.AnoLancamento,
			"duracao_min":     m.DuracaoMin,
			"diretor":         m.Diretor,
			"avaliacao_media": m.AvaliacaoMedia,
			"poster_url":      m.PosterURL,
		}).Error
}

func (r *repository) Delete(id int64) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Delete(&Movie{}, "id_filme = ?", id).Error
}
