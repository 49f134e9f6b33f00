package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type NivelUsuarioService struct {
	repo     repository.NivelUsuarioRepository
	notifier notify.Notifier
}

func NewNivelUsuarioService(repo repository.NivelUsuarioRepository, notifier notify.Notifier) *NivelUsuarioService {
	return &NivelUsuarioService{repo: repo, notifier: notifier}
}

func (s *NivelUsuarioService) GetAll(ctx context.Context) ([]entity.NivelUsuario, error) {
	niveis, err := s.repo.GetAll(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar níveis de usuário")
		return nil, err
	}
	return niveis, nil
}

func (s *NivelUsuarioService) GetByID(ctx context.Context, id int) (*entity.NivelUsuario, error) {
	nivel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar nível")
		return nil, err
	}
	return nivel, nil
}

func (s *NivelUsuarioService) Create(ctx context.Context, input entity.CreateNivelUsuarioInput) (*entity.NivelUsuario, error) {
	if input.Nome == "" {
		s.notifier.Validation("Informe o nome do nível")
		return nil, ErrNomeObrigatorio
	}

	nivel, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao criar nível")
		return nil, err
	}
	s.notifier.Success("Nível criado com sucesso!")
	return nivel, nil
}

func (s *NivelUsuarioService) Update(ctx context.Context, id int, input entity.UpdateNivelUsuarioInput) (*entity.NivelUsuario, error) {
	if input.Nome != nil && *input.Nome == "" {
		s.notifier.Validation("Informe o nome do nível")
		return nil, ErrNomeObrigatorio
	}

	nivel, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar nível")
		return nil, err
	}
	s.notifier.Success("Nível atualizado com sucesso!")
	return nivel, nil
}

func (s *NivelUsuarioService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover nível")
		return err
	}
	s.notifier.Success("Nível removido com sucesso!")
	return nil
}
