package question

import (
	"errors"

	"github.com/saulo-duarte/acervo-api/internal/database"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	List() ([]Question, error)
	GetByID(id int64) (*Question, error)
	Create(q *Question) error
	Update(q *Question) error
	Delete(id int64) error
}

type questionRepository struct {
	conn database.Connector
}

func NewRepository(conn database.Connector) QuestionRepository {
	return &questionRepository{conn: conn}
}

func (r *questionRepository) List() ([]Question, error) {
	db, err := r.conn.DB()
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) GetByID(id int64) (*Question, error) {
	db, err := r.conn.DB()
	if err != nil {
		return nil, err
	}

	var q Question
	if err := db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Create(q *Question) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Create(q).Error
}

func (r *questionRepository) Update(q *Question) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Model(&Question{}).
		Where("id = ?", q.ID).
		Updates(map[string]interface{}{
			"enunciado":  q.Enunciado,
			"disciplina": q.Disciplina,
			"tema":       q.Tema,
			"nivel":      q.Nivel,
		}).Error
}

func (r *questionRepository) Delete(id int64) error {
	db, err := r.conn.DB()
	if err != nil {
		return err
	}
	return db.Delete(&Question{}, "id = ?", id).Error
}
