package rest

import (
	"context"
	"fmt"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// CategoriaCartasREST e CategoriaLeilaoREST cobrem as duas tabelas de
// referência nome/descrição, cada uma com CRUD completo nas telas de admin.

type CategoriaCartasREST struct {
	c *Client
}

func NewCategoriaCartasREST(c *Client) *CategoriaCartasREST {
	return &CategoriaCartasREST{c: c}
}

func (r *CategoriaCartasREST) GetAll(ctx context.Context) ([]entity.CategoriaCartas, error) {
	raw, err := r.c.get(ctx, "/categoria-cartas", nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[entity.CategoriaCartas](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *CategoriaCartasREST) GetByID(ctx context.Context, id int) (*entity.CategoriaCartas, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/categoria-cartas/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaCartas](raw)
}

func (r *CategoriaCartasREST) Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaCartas, error) {
	raw, err := r.c.post(ctx, "/categoria-cartas", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaCartas](raw)
}

func (r *CategoriaCartasREST) Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaCartas, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/categoria-cartas/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaCartas](raw)
}

func (r *CategoriaCartasREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/categoria-cartas/%d", id))
	return err
}

type CategoriaLeilaoREST struct {
	c *Client
}

func NewCategoriaLeilaoREST(c *Client) *CategoriaLeilaoREST {
	return &CategoriaLeilaoREST{c: c}
}

func (r *CategoriaLeilaoREST) GetAll(ctx context.Context) ([]entity.CategoriaLeilao, error) {
	raw, err := r.c.get(ctx, "/categoria-leilao", nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[entity.CategoriaLeilao](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *CategoriaLeilaoREST) GetByID(ctx context.Context, id int) (*entity.CategoriaLeilao, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/categoria-leilao/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaLeilao](raw)
}

func (r *CategoriaLeilaoREST) Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaLeilao, error) {
	raw, err := r.c.post(ctx, "/categoria-leilao", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaLeilao](raw)
}

func (r *CategoriaLeilaoREST) Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaLeilao, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/categoria-leilao/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.CategoriaLeilao](raw)
}

func (r *CategoriaLeilaoREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/categoria-leilao/%d", id))
	return err
}
