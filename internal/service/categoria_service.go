package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

// CategoriaCartasService e CategoriaLeilaoService são gêmeos: mesmas regras,
// recursos diferentes. Mantidos separados porque os repositórios devolvem
// tipos distintos.
type CategoriaCartasService struct {
	repo     repository.CategoriaCartasRepository
	notifier notify.Notifier
}

func NewCategoriaCartasService(repo repository.CategoriaCartasRepository, notifier notify.Notifier) *CategoriaCartasService {
	return &CategoriaCartasService{repo: repo, notifier: notifier}
}

func (s *CategoriaCartasService) GetAll(ctx context.Context) ([]entity.CategoriaCartas, error) {
	categorias, err := s.repo.GetAll(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar categorias de cartas")
		return nil, err
	}
	return categorias, nil
}

func (s *CategoriaCartasService) GetByID(ctx context.Context, id int) (*entity.CategoriaCartas, error) {
	categoria, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar categoria")
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaCartasService) Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaCartas, error) {
	if input.Nome == "" {
		s.notifier.Validation("Informe o nome da categoria")
		return nil, ErrNomeObrigatorio
	}

	categoria, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar categoria")
		return nil, err
	}
	s.notifier.Success("Categoria criada com sucesso!")
	return categoria, nil
}

func (s *CategoriaCartasService) Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaCartas, error) {
	if input.Nome != nil && *input.Nome == "" {
		s.notifier.Validation("Informe o nome da categoria")
		return nil, ErrNomeObrigatorio
	}

	categoria, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar categoria")
		return nil, err
	}
	s.notifier.Success("Categoria atualizada com sucesso!")
	return categoria, nil
}

func (s *CategoriaCartasService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover categoria")
		return err
	}
	s.notifier.Success("Categoria removida com sucesso!")
	return nil
}

type CategoriaLeilaoService struct {
	repo     repository.CategoriaLeilaoRepository
	notifier notify.Notifier
}

func NewCategoriaLeilaoService(repo repository.CategoriaLeilaoRepository, notifier notify.Notifier) *CategoriaLeilaoService {
	return &CategoriaLeilaoService{repo: repo, notifier: notifier}
}

func (s *CategoriaLeilaoService) GetAll(ctx context.Context) ([]entity.CategoriaLeilao, error) {
	categorias, err := s.repo.GetAll(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar categorias de leilão")
		return nil, err
	}
	return categorias, nil
}

func (s *CategoriaLeilaoService) GetByID(ctx context.Context, id int) (*entity.CategoriaLeilao, error) {
	categoria, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar categoria")
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaLeilaoService) Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaLeilao, error) {
	if input.Nome == "" {
		s.notifier.Validation("Informe o nome da categoria")
		return nil, ErrNomeObrigatorio
	}

	categoria, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar categoria")
		return nil, err
	}
	s.notifier.Success("Categoria criada com sucesso!")
	return categoria, nil
}

func (s *CategoriaLeilaoService) Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaLeilao, error) {
	if input.Nome != nil && *input.Nome == "" {
		s.notifier.Validation("Informe o nome da categoria")
		return nil, ErrNomeObrigatorio
	}

	categoria, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar categoria")
		return nil, err
	}
	s.notifier.Success("Categoria atualizada com sucesso!")
	return categoria, nil
}

func (s *CategoriaLeilaoService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover categoria")
		return err
	}
	s.notifier.Success("Categoria removida com sucesso!")
	return nil
}
