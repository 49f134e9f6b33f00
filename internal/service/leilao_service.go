package service

import (
	"context"
	"log"
	"time"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

// Source identifica quem respondeu uma operação de leilão.
type Source string

const (
	SourceAPI  Source = "api"
	SourceMock Source = "mock"
)

// LeilaoService é a fachada sobre as duas implementações de leilão: a API
// real e o store local em arquivo. Com preferência "api", toda operação
// tenta a API primeiro e repete no mock com os mesmos argumentos quando ela
// falha; com preferência "mock", a API nunca é consultada. Cada retorno vem
// etiquetado com a fonte que respondeu, então o chamador pode exibir o aviso
// de dados locais sem adivinhar.
type LeilaoService struct {
	preferred Source
	api       repository.LeilaoRepository
	mock      repository.LeilaoRepository
	notifier  notify.Notifier
}

func NewLeilaoService(preferred Source, api, mock repository.LeilaoRepository, notifier notify.Notifier) *LeilaoService {
	if preferred != SourceAPI {
		preferred = SourceMock
	}
	return &LeilaoService{preferred: preferred, api: api, mock: mock, notifier: notifier}
}

// useAPI informa se a API deve ser tentada nesta chamada.
func (s *LeilaoService) useAPI() bool {
	return s.preferred == SourceAPI && s.api != nil
}

func fallbackLog(op string, err error) {
	log.Printf("leiloes: api indisponível em %s, usando dados locais: %v", op, err)
}

func (s *LeilaoService) List(ctx context.Context, filtro entity.FiltroLeilao) (entity.ListaLeiloes, Source, error) {
	if s.useAPI() {
		lista, err := s.api.List(ctx, filtro)
		if err == nil {
			return lista, SourceAPI, nil
		}
		fallbackLog("list", err)
	}
	lista, err := s.mock.List(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar leilões")
		return entity.ListaLeiloes{}, SourceMock, err
	}
	return lista, SourceMock, nil
}

func (s *LeilaoService) GetByID(ctx context.Context, id string) (*entity.Leilao, Source, error) {
	if s.useAPI() {
		leilao, err := s.api.GetByID(ctx, id)
		if err == nil {
			return leilao, SourceAPI, nil
		}
		fallbackLog("get", err)
	}
	leilao, err := s.mock.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar leilão")
		return nil, SourceMock, err
	}
	return leilao, SourceMock, nil
}

func (s *LeilaoService) Create(ctx context.Context, input entity.CreateLeilaoInput) (*entity.Leilao, Source, error) {
	if input.Titulo == "" {
		s.notifier.Validation("Informe o título do leilão")
		return nil, s.preferred, ErrTituloObrigatorio
	}
	if input.PrecoInicial < 0.01 {
		s.notifier.Validation("Preço inicial mínimo é 0,01")
		return nil, s.preferred, ErrPrecoInvalido
	}
	if termino, err := time.Parse(time.RFC3339, input.TerminaEm); err != nil || !termino.After(time.Now()) {
		s.notifier.Validation("Data de término deve ser futura")
		return nil, s.preferred, ErrTerminoInvalido
	}

	if s.useAPI() {
		leilao, err := s.api.Create(ctx, input)
		if err == nil {
			s.notifier.Success("Leilão criado com sucesso!")
			return leilao, SourceAPI, nil
		}
		fallbackLog("create", err)
	}
	leilao, err := s.mock.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar leilão")
		return nil, SourceMock, err
	}
	s.notifier.Success("Leilão criado com sucesso!")
	return leilao, SourceMock, nil
}

func (s *LeilaoService) Update(ctx context.Context, id string, input entity.UpdateLeilaoInput) (*entity.Leilao, Source, error) {
	if input.Titulo != nil && *input.Titulo == "" {
		s.notifier.Validation("Informe o título do leilão")
		return nil, s.preferred, ErrTituloObrigatorio
	}
	if input.PrecoInicial != nil && *input.PrecoInicial < 0.01 {
		s.notifier.Validation("Preço inicial mínimo é 0,01")
		return nil, s.preferred, ErrPrecoInvalido
	}

	if s.useAPI() {
		leilao, err := s.api.Update(ctx, id, input)
		if err == nil {
			s.notifier.Success("Leilão atualizado com sucesso!")
			return leilao, SourceAPI, nil
		}
		fallbackLog("update", err)
	}
	leilao, err := s.mock.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar leilão")
		return nil, SourceMock, err
	}
	s.notifier.Success("Leilão atualizado com sucesso!")
	return leilao, SourceMock, nil
}

func (s *LeilaoService) Delete(ctx context.Context, id string) (Source, error) {
	if s.useAPI() {
		err := s.api.Delete(ctx, id)
		if err == nil {
			s.notifier.Success("Leilão removido com sucesso!")
			return SourceAPI, nil
		}
		fallbackLog("delete", err)
	}
	if err := s.mock.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover leilão")
		return SourceMock, err
	}
	s.notifier.Success("Leilão removido com sucesso!")
	return SourceMock, nil
}

func (s *LeilaoService) PlaceBid(ctx context.Context, id string, valor float64) (*entity.Leilao, Source, error) {
	if valor <= 0 {
		s.notifier.Validation("Valor do lance deve ser maior que zero")
		return nil, s.preferred, ErrLanceInvalido
	}

	if s.useAPI() {
		leilao, err := s.api.PlaceBid(ctx, id, valor)
		if err == nil {
			s.notifier.Success("Lance registrado!")
			return leilao, SourceAPI, nil
		}
		fallbackLog("lance", err)
	}
	leilao, err := s.mock.PlaceBid(ctx, id, valor)
	if err != nil {
		s.notifier.Error("Erro ao registrar lance")
		return nil, SourceMock, err
	}
	s.notifier.Success("Lance registrado!")
	return leilao, SourceMock, nil
}

func (s *LeilaoService) Close(ctx context.Context, id string) (*entity.Leilao, Source, error) {
	if s.useAPI() {
		leilao, err := s.api.Close(ctx, id)
		if err == nil {
			s.notifier.Success("Leilão encerrado")
			return leilao, SourceAPI, nil
		}
		fallbackLog("encerrar", err)
	}
	leilao, err := s.mock.Close(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao encerrar leilão")
		return nil, SourceMock, err
	}
	s.notifier.Success("Leilão encerrado")
	return leilao, SourceMock, nil
}

// CanEdit aplica a regra de permissão compartilhada entre os dois caminhos.
func (s *LeilaoService) CanEdit(leilao entity.Leilao, isAdmin bool, userID string) bool {
	return leilao.CanEdit(isAdmin, userID)
}
