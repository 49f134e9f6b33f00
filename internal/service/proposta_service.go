package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type PropostaService struct {
	repo     repository.PropostaRepository
	notifier notify.Notifier
}

func NewPropostaService(repo repository.PropostaRepository, notifier notify.Notifier) *PropostaService {
	return &PropostaService{repo: repo, notifier: notifier}
}

func (s *PropostaService) GetAll(ctx context.Context, filtro entity.FiltroProposta) (entity.Page[entity.Proposta], error) {
	page, err := s.repo.GetAll(ctx, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar propostas")
		return entity.Page[entity.Proposta]{}, err
	}
	return page, nil
}

func (s *PropostaService) GetByID(ctx context.Context, id int) (*entity.Proposta, error) {
	proposta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar proposta")
		return nil, err
	}
	return proposta, nil
}

func (s *PropostaService) GetByAnuncio(ctx context.Context, tipo string, anuncioID int, filtro entity.FiltroProposta) ([]entity.Proposta, error) {
	propostas, err := s.repo.GetByAnuncio(ctx, tipo, anuncioID, filtro)
	if err != nil {
		s.notifier.Error("Erro ao carregar propostas do anúncio")
		return nil, err
	}
	return propostas, nil
}

func (s *PropostaService) Create(ctx context.Context, input entity.CreatePropostaInput) (*entity.Proposta, error) {
	if input.AnuncioID <= 0 {
		s.notifier.Validation("Anúncio inválido")
		return nil, ErrAnuncioObrigatorio
	}
	if input.UsuarioID <= 0 {
		s.notifier.Validation("Usuário inválido")
		return nil, ErrUsuarioObrigatorio
	}
	if input.ValorOferta <= 0 {
		s.notifier.Validation("Valor da proposta deve ser maior que zero")
		return nil, ErrValorOfertaInvalido
	}

	proposta, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao enviar proposta")
		return nil, err
	}
	s.notifier.Success("Proposta enviada com sucesso!")
	return proposta, nil
}

func (s *PropostaService) Update(ctx context.Context, id int, input entity.UpdatePropostaInput) (*entity.Proposta, error) {
	if input.ValorOferta != nil && *input.ValorOferta <= 0 {
		s.notifier.Validation("Valor da proposta deve ser maior que zero")
		return nil, ErrValorOfertaInvalido
	}

	proposta, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error("Erro ao atualizar proposta")
		return nil, err
	}
	s.notifier.Success("Proposta atualizada com sucesso!")
	return proposta, nil
}

func (s *PropostaService) Accept(ctx context.Context, id int) (*entity.Proposta, error) {
	proposta, err := s.repo.Accept(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao aceitar proposta")
		return nil, err
	}
	s.notifier.Success("Proposta aceita com sucesso!")
	return proposta, nil
}

func (s *PropostaService) Reject(ctx context.Context, id int) (*entity.Proposta, error) {
	proposta, err := s.repo.Reject(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao recusar proposta")
		return nil, err
	}
	s.notifier.Success("Proposta recusada")
	return proposta, nil
}

func (s *PropostaService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Erro ao cancelar proposta")
		return err
	}
	s.notifier.Success("Proposta cancelada")
	return nil
}
