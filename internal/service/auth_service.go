package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type AuthService struct {
	repo     repository.AuthRepository
	notifier notify.Notifier
}

func NewAuthService(repo repository.AuthRepository, notifier notify.Notifier) *AuthService {
	return &AuthService{repo: repo, notifier: notifier}
}

func (s *AuthService) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	if input.Username == "" || input.Senha == "" {
		s.notifier.Validation("Informe username e senha")
		return nil, ErrCredenciaisInvalidas
	}

	resp, err := s.repo.Login(ctx, input)
	if err != nil {
		s.notifier.Error("Usuário ou senha inválidos")
		return nil, err
	}
	s.notifier.Success("Login realizado com sucesso!")
	return resp, nil
}

func (s *AuthService) Profile(ctx context.Context) (*entity.User, error) {
	user, err := s.repo.Profile(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar perfil")
		return nil, err
	}
	return user, nil
}
