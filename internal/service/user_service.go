package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type UserService struct {
	repo     repository.UserRepository
	notifier notify.Notifier
}

func NewUserService(repo repository.UserRepository, notifier notify.Notifier) *UserService {
	return &UserService{repo: repo, notifier: notifier}
}

func (s *UserService) GetAll(ctx context.Context, filtro entity.FiltroUser) (entity.Page[entity.User], error) {
	page, err := s.repo.GetAll(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar usuários")
		return entity.Page[entity.User]{}, err
	}
	return page, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar usuário")
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input entity.CreateUserInput) (*entity.User, error) {
	if input.Nome == "" || input.Username == "" {
		s.notifier.Validation("Informe nome e username")
		return nil, ErrNomeObrigatorio
	}
	if input.Senha == "" {
		s.notifier.Validation("Informe a senha")
		return nil, ErrCredenciaisInvalidas
	}

	user, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar usuário")
		return nil, err
	}
	s.notifier.Success("Usuário criado com sucesso!")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int, input entity.UpdateUserInput) (*entity.User, error) {
	if input.Nome != nil && *input.Nome == "" {
		s.notifier.Validation("Informe o nome")
		return nil, ErrNomeObrigatorio
	}

	user, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar usuário")
		return nil, err
	}
	s.notifier.Success("Usuário atualizado com sucesso!")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover usuário")
		return err
	}
	s.notifier.Success("Usuário removido com sucesso!")
	return nil
}
