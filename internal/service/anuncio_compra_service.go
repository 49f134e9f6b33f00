package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type AnuncioCompraService struct {
	repo     repository.AnuncioCompraRepository
	notifier notify.Notifier
}

func NewAnuncioCompraService(repo repository.AnuncioCompraRepository, notifier notify.Notifier) *AnuncioCompraService {
	return &AnuncioCompraService{repo: repo, notifier: notifier}
}

func (s *AnuncioCompraService) GetAll(ctx context.Context, filtro entity.FiltroAnuncioCompra) (entity.Page[entity.AnuncioCompra], error) {
	page, err := s.repo.GetAll(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar anúncios de compra")
		return entity.Page[entity.AnuncioCompra]{}, err
	}
	return page, nil
}

func (s *AnuncioCompraService) GetByID(ctx context.Context, id int) (*entity.AnuncioCompra, error) {
	anuncio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar anúncio")
		return nil, err
	}
	return anuncio, nil
}

func (s *AnuncioCompraService) Create(ctx context.Context, input entity.CreateAnuncioCompraInput) (*entity.AnuncioCompra, error) {
	if input.NomeCarta == "" {
		s.notifier.Validation("Informe o nome da carta procurada")
		return nil, ErrNomeObrigatorio
	}
	if input.Quantidade <= 0 {
		s.notifier.Validation("Quantidade deve ser maior que zero")
		return nil, ErrQuantidadeInvalida
	}

	anuncio, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar anúncio de compra")
		return nil, err
	}
	s.notifier.Success("Anúncio de compra criado com sucesso!")
	return anuncio, nil
}

func (s *AnuncioCompraService) Update(ctx context.Context, id int, input entity.UpdateAnuncioCompraInput) (*entity.AnuncioCompra, error) {
	if input.Quantidade != nil && *input.Quantidade <= 0 {
		s.notifier.Validation("Quantidade deve ser maior que zero")
		return nil, ErrQuantidadeInvalida
	}

	anuncio, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar anúncio de compra")
		return nil, err
	}
	s.notifier.Success("Anúncio de compra atualizado com sucesso!")
	return anuncio, nil
}

func (s *AnuncioCompraService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover anúncio de compra")
		return err
	}
	s.notifier.Success("Anúncio de compra removido com sucesso!")
	return nil
}
