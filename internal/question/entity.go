package question

type Question struct {
	ID         int64  `gorm:"primaryKey;column:id" json:"id"`
	Enunciado  string `gorm:"type:text;not null" json:"enunciado"`
	Disciplina string `gorm:"type:text;not null" json:"disciplina"`
	Tema       string `gorm:"type:text;not null" json:"tema"`
	Nivel      string `gorm:"type:text;not null" json:"nivel"`
}

func (Question) TableName() string {
	return "questoes"
}
