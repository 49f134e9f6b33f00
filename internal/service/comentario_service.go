package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type ComentarioService struct {
	repo     repository.ComentarioRepository
	notifier notify.Notifier
}

func NewComentarioService(repo repository.ComentarioRepository, notifier notify.Notifier) *ComentarioService {
	return &ComentarioService{repo: repo, notifier: notifier}
}

func (s *ComentarioService) GetByAnuncio(ctx context.Context, anuncioID int, filtro entity.FiltroComentario) ([]entity.Comentario, error) {
	comentarios, err := s.repo.GetByAnuncio(ctx, anuncioID, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar comentários")
		return nil, err
	}
	return comentarios, nil
}

func (s *ComentarioService) Create(ctx context.Context, input entity.CreateComentarioInput) (*entity.Comentario, error) {
	if input.AnuncioID <= 0 {
		s.notifier.Validation("Anúncio inválido")
		return nil, ErrAnuncioObrigatorio
	}
	if input.Texto == "" {
		s.notifier.Validation("Escreva o comentário")
		return nil, ErrTextoObrigatorio
	}

	comentario, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao publicar comentário")
		return nil, err
	}
	s.notifier.Success("Comentário publicado!")
	return comentario, nil
}

func (s *ComentarioService) Update(ctx context.Context, id int, input entity.UpdateComentarioInput) (*entity.Comentario, error) {
	if input.Texto != nil && *input.Texto == "" {
		s.notifier.Validation("Escreva o comentário")
		return nil, ErrTextoObrigatorio
	}

	comentario, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar comentário")
		return nil, err
	}
	s.notifier.Success("Comentário atualizado!")
	return comentario, nil
}

func (s *ComentarioService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover comentário")
		return err
	}
	s.notifier.Success("Comentário removido")
	return nil
}
