package rest

import (
	"context"
	"fmt"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// CarrinhoREST fala com /carrinho. O carrinho é sempre o do usuário do
// token; não há id de carrinho na rota.
type CarrinhoREST struct {
	c *Client
}

func NewCarrinhoREST(c *Client) *CarrinhoREST {
	return &CarrinhoREST{c: c}
}

func (r *CarrinhoREST) Ver(ctx context.Context) (*entity.Carrinho, error) {
	raw, err := r.c.get(ctx, "/carrinho", nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Carrinho](raw)
}

func (r *CarrinhoREST) Adicionar(ctx context.Context, input entity.AdicionarCarrinhoInput) (*entity.CarrinhoItem, error) {
	raw, err := r.c.post(ctx, "/carrinho", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CarrinhoItem](raw)
}

func (r *CarrinhoREST) Remover(ctx context.Context, itemID int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/carrinho/%d", itemID))
	return err
}

func (r *CarrinhoREST) Checkout(ctx context.Context) error {
	_, err := r.c.post(ctx, "/carrinho/checkout", nil)
	return err
}
