package service

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

type CarrinhoService struct {
	repo     repository.CarrinhoRepository
	notifier notify.Notifier
}

func NewCarrinhoService(repo repository.CarrinhoRepository, notifier notify.Notifier) *CarrinhoService {
	return &CarrinhoService{repo: repo, notifier: notifier}
}

func (s *CarrinhoService) Ver(ctx context.Context) (*entity.Carrinho, error) {
	carrinho, err := s.repo.Ver(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar carrinho")
		return nil, err
	}
	return carrinho, nil
}

func (s *CarrinhoService) Adicionar(ctx context.Context, input entity.AdicionarCarrinhoInput) (*entity.CarrinhoItem, error) {
	if input.AnuncioVendaID <= 0 {
		s.notifier.Validation("Anúncio inválido")
		return nil, ErrAnuncioObrigatorio
	}
	if input.Quantidade <= 0 {
		s.notifier.Validation("Quantidade deve ser maior que zero")
		return nil, ErrQuantidadeInvalida
	}

	item, err := s.repo.Adicionar(ctx, input)
	if err != nil {
		s.notifier.Error("Erro ao adicionar ao carrinho")
		return nil, err
	}
	s.notifier.Success("Item adicionado ao carrinho!")
	return item, nil
}

func (s *CarrinhoService) Remover(ctx context.Context, itemID int) error {
	if err := s.repo.Remover(ctx, itemID); err != nil {
		s.notifier.Error("Erro ao remover item do carrinho")
		return err
	}
	s.notifier.Success("Item removido do carrinho")
	return nil
}

func (s *CarrinhoService) Checkout(ctx context.Context) error {
	if err := s.repo.Checkout(ctx); err != nil {
		s.notifier.Error("Erro ao finalizar compra")
		return err
	}
	s.notifier.Success("Compra finalizada com sucesso!")
	return nil
}
