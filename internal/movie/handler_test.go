package movie_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/acervo-api/internal/database"
	"github.com/saulo-duarte/acervo-api/internal/database/dbtest"
	"github.com/saulo-duarte/acervo-api/internal/movie"
	"github.com/saulo-duarte/acervo-api/internal/patch"
)

type server struct {
	t *testing.T
	h http.Handler
	p *database.Provider
}

func newServer(t *testing.T, mode patch.Mode) *server {
	t.Helper()

	p := dbtest.New(t, &movie.Movie{})
	c := movie.NewContainer(p, mode)

	r := chi.NewRouter()
	r.Mount("/filmes", movie.Routes(c.Handler))
	return &server{t: t, h: r, p: p}
}

func (s *server) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("falha ao serializar corpo: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	return rec
}

func (s *server) create(body map[string]interface{}) int64 {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/filmes", body)
	if rec.Code != http.StatusCreated {
		s.t.Fatalf("POST /filmes esperado 201, recebido %d: %s", rec.Code, rec.Body.String())
	}
	var out movie.CreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		s.t.Fatalf("resposta inválida: %v", err)
	}
	if out.Mensagem != "Filme cadastrado com sucesso!" || out.IDFilme == 0 {
		s.t.Fatalf("resposta de criação inesperada: %s", rec.Body.String())
	}
	return out.IDFilme
}

func (s *server) get(id int64) movie.Movie {
	s.t.Helper()

	rec := s.do(http.MethodGet, fmt.Sprintf("/filmes/%d", id), nil)
	if rec.Code != http.StatusOK {
		s.t.Fatalf("GET /filmes/%d esperado 200, recebido %d", id, rec.Code)
	}
	var m movie.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		s.t.Fatalf("GET por id deveria devolver o objeto sem array: %v (%s)", err, rec.Body.String())
	}
	return m
}

func (s *server) count() int64 {
	s.t.Helper()
	db, err := s.p.DB()
	if err != nil {
		s.t.Fatalf("DB() falhou: %v", err)
	}
	var n int64
	db.Model(&movie.Movie{}).Count(&n)
	return n
}

func matrix() map[string]interface{} {
	return map[string]interface{}{
		"titulo":          "Matrix",
		"descricao":       "Neo descobre a verdade",
		"ano_lancamento":  1999,
		"duracao_min":     136,
		"diretor":         "Wachowski",
		"avaliacao_media": 8.7,
		"poster_url":      "https://img/matrix.jpg",
	}
}

func TestListEmpty(t *testing.T) {
	s := newServer(t, patch.Truthy)

	rec := s.do(http.MethodGet, "/filmes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d", rec.Code)
	}
	if got := bytes.TrimSpace(rec.Body.Bytes()); string(got) != "[]" {
		t.Errorf("esperado [], recebido %s", got)
	}
}

func TestCreateAndGet(t *testing.T) {
	s := newServer(t, patch.Truthy)

	id := s.create(matrix())
	m := s.get(id)

	if m.ID != id || m.Titulo != "Matrix" || m.AnoLancamento != 1999 || m.Diretor != "Wachowski" {
		t.Errorf("filme incorreto: %+v", m)
	}
	if m.Descricao == nil || *m.Descricao != "Neo descobre a verdade" {
		t.Errorf("descricao incorreta: %v", m.Descricao)
	}
	if m.DuracaoMin == nil || *m.DuracaoMin != 136 {
		t.Errorf("duracao_min incorreta: %v", m.DuracaoMin)
	}
	if m.AvaliacaoMedia != 8.7 {
		t.Errorf("avaliacao_media incorreta: %v", m.AvaliacaoMedia)
	}
}

func TestCreateOptionalDefaults(t *testing.T) {
	s := newServer(t, patch.Truthy)

	id := s.create(map[string]interface{}{
		"titulo":         "Central do Brasil",
		"ano_lancamento": 1998,
		"diretor":        "Walter Salles",
		"descricao":      "",
		"duracao_min":    0,
	})
	m := s.get(id)

	if m.Descricao != nil || m.DuracaoMin != nil || m.PosterURL != nil {
		t.Errorf("campos opcionais vazios deveriam ser NULL: %+v", m)
	}
	if m.AvaliacaoMedia != 0 {
		t.Errorf("avaliacao_media padrão deveria ser 0, recebido %v", m.AvaliacaoMedia)
	}
}

func TestCreateMissingRequired(t *testing.T) {
	s := newServer(t, patch.Truthy)

	bodies := []map[string]interface{}{
		{"ano_lancamento": 1999, "diretor": "X"},
		{"titulo": "Y", "ano_lancamento": 0, "diretor": "X"},
		{"titulo": "Y", "ano_lancamento": 1999},
	}
	for _, body := range bodies {
		rec := s.do(http.MethodPost, "/filmes", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("corpo %v: esperado 400, recebido %d", body, rec.Code)
			continue
		}
		var out movie.ErrorResponse
		json.Unmarshal(rec.Body.Bytes(), &out)
		if out.Erro != "Campos obrigatórios ausentes" || out.Mensagem != "Informe título, ano_lancamento e diretor." {
			t.Errorf("corpo de erro inesperado: %s", rec.Body.String())
		}
	}

	if n := s.count(); n != 0 {
		t.Errorf("nenhum filme deveria ser inserido, encontrados %d", n)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newServer(t, patch.Truthy)
	id := s.create(matrix())

	rec := s.do(http.MethodGet, fmt.Sprintf("/filmes/%d", id+1), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("esperado 404, recebido %d", rec.Code)
	}
	var out movie.MensagemResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Mensagem != "Filme não encontrado" {
		t.Errorf("mensagem incorreta: %s", rec.Body.String())
	}
}

func TestUpdate(t *testing.T) {
	t.Run("EmptyBodyKeepsEverything", func(t *testing.T) {
		s := newServer(t, patch.Truthy)
		id := s.create(matrix())
		before := s.get(id)

		rec := s.do(http.MethodPut, fmt.Sprintf("/filmes/%d", id), map[string]interface{}{})
		if rec.Code != http.StatusOK {
			t.Fatalf("esperado 200, recebido %d", rec.Code)
		}

		after := s.get(id)
		if after.Titulo != before.Titulo || *after.Descricao != *before.Descricao ||
			*after.DuracaoMin != *before.DuracaoMin || after.AvaliacaoMedia != before.AvaliacaoMedia ||
			*after.PosterURL != *before.PosterURL {
			t.Errorf("atualização vazia alterou o filme. Antes: %+v, Depois: %+v", before, after)
		}
	})

	t.Run("TruthyKeepsZeroRating", func(t *testing.T) {
		s := newServer(t, patch.Truthy)
		id := s.create(matrix())

		rec := s.do(http.MethodPut, fmt.Sprintf("/filmes/%d", id), map[string]interface{}{
			"avaliacao_media": 0,
			"titulo":          "Matrix Reloaded",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("esperado 200, recebido %d", rec.Code)
		}
		var out movie.MensagemResponse
		json.Unmarshal(rec.Body.Bytes(), &out)
		if out.Mensagem != "Filme atualizado com sucesso!" {
			t.Errorf("mensagem incorreta: %s", rec.Body.String())
		}

		m := s.get(id)
		if m.AvaliacaoMedia != 8.7 {
			t.Errorf("avaliacao_media 0 não deveria sobrescrever no modo truthy, recebido %v", m.AvaliacaoMedia)
		}
		if m.Titulo != "Matrix Reloaded" {
			t.Errorf("titulo deveria ser atualizado, recebido %q", m.Titulo)
		}
	})

	t.Run("PresenceWritesZeroRating", func(t *testing.T) {
		s := newServer(t, patch.Presence)
		id := s.create(matrix())

		s.do(http.MethodPut, fmt.Sprintf("/filmes/%d", id), map[string]interface{}{"avaliacao_media": 0})

		m := s.get(id)
		if m.AvaliacaoMedia != 0 {
			t.Errorf("modo presence deveria gravar 0, recebido %v", m.AvaliacaoMedia)
		}
		if m.Titulo != "Matrix" {
			t.Errorf("campos ausentes não deveriam mudar, titulo %q", m.Titulo)
		}
	})

	t.Run("FillsNullColumn", func(t *testing.T) {
		s := newServer(t, patch.Truthy)
		id := s.create(map[string]interface{}{"titulo": "Cidade de Deus", "ano_lancamento": 2002, "diretor": "Fernando Meirelles"})

		s.do(http.MethodPut, fmt.Sprintf("/filmes/%d", id), map[string]interface{}{"duracao_min": 130})

		m := s.get(id)
		if m.DuracaoMin == nil || *m.DuracaoMin != 130 {
			t.Errorf("duracao_min deveria ser preenchida, recebido %v", m.DuracaoMin)
		}
		if m.Descricao != nil {
			t.Errorf("descricao deveria continuar NULL, recebido %v", *m.Descricao)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newServer(t, patch.Truthy)

		rec := s.do(http.MethodPut, "/filmes/1", matrix())
		if rec.Code != http.StatusNotFound {
			t.Fatalf("esperado 404, recebido %d", rec.Code)
		}
		if n := s.count(); n != 0 {
			t.Errorf("PUT em id inexistente não deveria gravar, encontrados %d", n)
		}
	})
}

func TestDeleteTwice(t *testing.T) {
	s := newServer(t, patch.Truthy)
	id := s.create(matrix())
	path := fmt.Sprintf("/filmes/%d", id)

	rec := s.do(http.MethodDelete, path, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("primeiro DELETE esperado 200, recebido %d", rec.Code)
	}
	var out movie.MensagemResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Mensagem != "Filme excluído com sucesso!" {
		t.Errorf("mensagem incorreta: %s", rec.Body.String())
	}

	if rec := s.do(http.MethodDelete, path, nil); rec.Code != http.StatusNotFound {
		t.Errorf("segundo DELETE esperado 404, recebido %d", rec.Code)
	}
}

func TestListOrderedByID(t *testing.T) {
	s := newServer(t, patch.Truthy)

	var ids []int64
	for i := 0; i < 3; i++ {
		body := matrix()
		body["titulo"] = fmt.Sprintf("Filme %d", i)
		ids = append(ids, s.create(body))
	}

	rec := s.do(http.MethodGet, "/filmes", nil)
	var movies []movie.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("esperados 3 filmes, recebidos %d", len(movies))
	}
	for i, m := range movies {
		if m.ID != ids[i] {
			t.Errorf("posição %d: esperado id %d, recebido %d", i, ids[i], m.ID)
		}
	}
}

func TestDatabaseUnavailable(t *testing.T) {
	c := movie.NewContainer(database.NewProvider("", database.PoolSettings{}), patch.Truthy)
	r := chi.NewRouter()
	r.Mount("/filmes", movie.Routes(c.Handler))
	s := &server{t: t, h: r}

	for _, tc := range []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodGet, "/filmes", nil},
		{http.MethodGet, "/filmes/1", nil},
		{http.MethodPost, "/filmes", matrix()},
		{http.MethodPut, "/filmes/1", matrix()},
		{http.MethodDelete, "/filmes/1", nil},
	} {
		rec := s.do(tc.method, tc.path, tc.body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: esperado 500, recebido %d", tc.method, tc.path, rec.Code)
			continue
		}
		var out movie.ErrorResponse
		json.Unmarshal(rec.Body.Bytes(), &out)
		if out.Erro != "Erro interno do servidor" || out.Mensagem != "" {
			t.Errorf("%s %s: corpo de erro inesperado: %s", tc.method, tc.path, rec.Body.String())
		}
	}
}

func TestCreateAcceptsNumericStrings(t *testing.T) {
	s := newServer(t, patch.Truthy)

	id := s.create(map[string]interface{}{
		"titulo":          "Bacurau",
		"ano_lancamento":  "2019",
		"duracao_min":     "131",
		"diretor":         "Kleber Mendonça Filho",
		"avaliacao_media": "4.5",
	})

	m := s.get(id)
	if m.AnoLancamento != 2019 {
		t.Errorf("ano_lancamento em texto deveria ser gravado como 2019, recebido %d", m.AnoLancamento)
	}
	if m.DuracaoMin == nil || *m.DuracaoMin != 131 {
		t.Errorf("duracao_min em texto deveria ser gravada, recebido %v", m.DuracaoMin)
	}
	if m.AvaliacaoMedia != 4.5 {
		t.Errorf("avaliacao_media em texto deveria ser 4.5, recebido %v", m.AvaliacaoMedia)
	}
}

func TestCreateRejectsBadNumbers(t *testing.T) {
	cases := map[string]interface{}{
		"EmptyYear":      "",
		"ZeroYearText":   "0",
		"NonNumericYear": "dois mil",
		"FractionalYear": "2019.5",
	}

	for name, year := range cases {
		t.Run(name, func(t *testing.T) {
			s := newServer(t, patch.Truthy)

			rec := s.do(http.MethodPost, "/filmes", map[string]interface{}{
				"titulo":         "Bacurau",
				"ano_lancamento": year,
				"diretor":        "Kleber Mendonça Filho",
			})
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("esperado 400, recebido %d (%s)", rec.Code, rec.Body.String())
			}
			if n := s.count(); n != 0 {
				t.Errorf("nenhum filme deveria ser gravado, encontrados %d", n)
			}
		})
	}
}

func TestUpdateAcceptsNumericStrings(t *testing.T) {
	s := newServer(t, patch.Truthy)
	id := s.create(matrix())
	path := fmt.Sprintf("/filmes/%d", id)

	rec := s.do(http.MethodPut, path, map[string]interface{}{
		"duracao_min":     "120",
		"ano_lancamento":  "2003",
		"avaliacao_media": "7.2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d (%s)", rec.Code, rec.Body.String())
	}

	m := s.get(id)
	if m.DuracaoMin == nil || *m.DuracaoMin != 120 {
		t.Errorf("duracao_min deveria ser 120, recebido %v", m.DuracaoMin)
	}
	if m.AnoLancamento != 2003 || m.AvaliacaoMedia != 7.2 {
		t.Errorf("campos numéricos em texto não foram gravados: %+v", m)
	}

	rec = s.do(http.MethodPut, path, map[string]interface{}{"duracao_min": "duas horas"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("texto não numérico esperado 400, recebido %d", rec.Code)
	}
	if m := s.get(id); m.DuracaoMin == nil || *m.DuracaoMin != 120 {
		t.Errorf("PUT rejeitado não deveria alterar o filme, duracao_min %v", m.DuracaoMin)
	}
}
