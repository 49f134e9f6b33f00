package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

// taxaVenda é a fração retida pela plataforma sobre o preço anunciado.
const taxaVenda = 0.10

// CalcularTaxaVenda devolve a taxa da plataforma para um preço de venda.
func CalcularTaxaVenda(preco float64) float64 {
	return preco * taxaVenda
}

// CalcularPrecoFinal devolve preço + taxa, o valor exibido ao comprador.
func CalcularPrecoFinal(preco float64) float64 {
	return preco + CalcularTaxaVenda(preco)
}

type AnuncioVendaService struct {
	repo     repository.AnuncioVendaRepository
	notifier notify.Notifier
}

func NewAnuncioVendaService(repo repository.AnuncioVendaRepository, notifier notify.Notifier) *AnuncioVendaService {
	return &AnuncioVendaService{repo: repo, notifier: notifier}
}

func (s *AnuncioVendaService) GetAll(ctx context.Context, filtro entity.FiltroAnuncioVenda) (entity.Page[entity.AnuncioVenda], error) {
	page, err := s.repo.GetAll(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar anúncios de venda")
		return entity.Page[entity.AnuncioVenda]{}, err
	}
	return page, nil
}

func (s *AnuncioVendaService) GetByID(ctx context.Context, id int) (*entity.AnuncioVenda, error) {
	anuncio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar anúncio")
		return nil, err
	}
	return anuncio, nil
}

func (s *AnuncioVendaService) Create(ctx context.Context, input entity.CreateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	if input.Titulo == "" {
		s.notifier.Validation("Informe o título do anúncio")
		return nil, ErrTituloObrigatorio
	}
	if input.PrecoTotal <= 0 {
		s.notifier.Validation("Preço deve ser maior que zero")
		return nil, ErrPrecoInvalido
	}
	if input.QuantidadeDisponivel <= 0 {
		s.notifier.Validation("Quantidade deve ser maior que zero")
		return nil, ErrQuantidadeInvalida
	}

	anuncio, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar anúncio")
		return nil, err
	}
	s.notifier.Success("Anúncio criado com sucesso!")
	return anuncio, nil
}

func (s *AnuncioVendaService) Update(ctx context.Context, id int, input entity.UpdateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	if input.PrecoTotal != nil && *input.PrecoTotal <= 0 {
		s.notifier.Validation("Preço deve ser maior que zero")
		return nil, ErrPrecoInvalido
	}
	if input.QuantidadeDisponivel != nil && *input.QuantidadeDisponivel <= 0 {
		s.notifier.Validation("Quantidade deve ser maior que zero")
		return nil, ErrQuantidadeInvalida
	}

	anuncio, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar anúncio")
		return nil, err
	}
	s.notifier.Success("Anúncio atualizado com sucesso!")
	return anuncio, nil
}

func (s *AnuncioVendaService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover anúncio")
		return err
	}
	s.notifier.Success("Anúncio removido com sucesso!")
	return nil
}
