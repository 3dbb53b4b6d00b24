package movie

type Movie struct {
	ID             int64   `gorm:"primaryKey;column:id_filme" json:"id_filme"`
	Titulo         string  `gorm:"type:text;not null" json:"titulo"`
	Descricao      *string `gorm:"type:text" json:"descricao"`
	AnoLancamento  int     `gorm:"column:ano_lancamento;not null" json:"ano_lancamento"`
	DuracaoMin     *int    `gorm:"column:duracao_min" json:"duracao_min"`
	Diretor        string  `gorm:"type:text;not null" json:"diretor"`
	AvaliacaoMedia float64 `gorm:"column:avaliacao_media;not null;default:0" json:"avaliacao_media"`
	PosterURL      *string `gorm:"column:poster_url;type:text" json:"poster_url"`
}

func (Movie) TableName() string {
	return "filmes"
}
