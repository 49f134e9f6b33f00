package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type CartaService struct {
	repo     repository.CartaRepository
	notifier notify.Notifier
}

func NewCartaService(repo repository.CartaRepository, notifier notify.Notifier) *CartaService {
	return &CartaService{repo: repo, notifier: notifier}
}

func (s *CartaService) GetAll(ctx context.Context, filtro entity.FiltroCarta) (entity.Page[entity.Carta], error) {
	page, err := s.repo.GetAll(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar cartas")
		return entity.Page[entity.Carta]{}, err
	}
	return page, nil
}

func (s *CartaService) GetByID(ctx context.Context, id int) (*entity.Carta, error) {
	carta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar carta")
		return nil, err
	}
	return carta, nil
}

func (s *CartaService) Create(ctx context.Context, input entity.CreateCartaInput) (*entity.Carta, error) {
	if input.Nome == "" {
		s.notifier.Validation("Informe o nome da carta")
		return nil, ErrNomeObrigatorio
	}

	carta, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar carta")
		return nil, err
	}
	s.notifier.Success("Carta criada com sucesso!")
	return carta, nil
}

func (s *CartaService) Update(ctx context.Context, id int, input entity.UpdateCartaInput) (*entity.Carta, error) {
	if input.Nome != nil && *input.Nome == "" {
		s.notifier.Validation("Informe o nome da carta")
		return nil, ErrNomeObrigatorio
	}

	carta, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar carta")
		return nil, err
	}
	s.notifier.Success("Carta atualizada com sucesso!")
	return carta, nil
}

func (s *CartaService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover carta")
		return err
	}
	s.notifier.Success("Carta removida com sucesso!")
	return nil
}
