package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// CartaREST fala com /cartas (catálogo).
type CartaREST struct {
	c *Client
}

func NewCartaREST(c *Client) *CartaREST {
	return &CartaREST{c: c}
}

func (r *CartaREST) GetAll(ctx context.Context, filtro entity.FiltroCarta) (entity.Page[entity.Carta], error) {
	q := url.Values{}
	setStr(q, "nome", filtro.Nome)
	setStr(q, "tipo", filtro.Tipo)
	setStr(q, "raridade", filtro.Raridade)
	setStr(q, "elemento", filtro.Elemento)
	setStr(q, "expansao", filtro.Expansao)
	setInt(q, "categoria_id", filtro.CategoriaID)
	setFloat(q, "preco_min", filtro.PrecoMin)
	setFloat(q, "preco_max", filtro.PrecoMax)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, "/cartas", q)
	if err != nil {
		return entity.Page[entity.Carta]{}, err
	}
	return decodePage[entity.Carta](raw)
}

func (r *CartaREST) GetByID(ctx context.Context, id int) (*entity.Carta, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/cartas/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Carta](raw)
}

func (r *CartaREST) Create(ctx context.Context, input entity.CreateCartaInput) (*entity.Carta, error) {
	raw, err := r.c.post(ctx, "/cartas", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Carta](raw)
}

func (r *CartaREST) Update(ctx context.Context, id int, input entity.UpdateCartaInput) (*entity.Carta, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/cartas/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Carta](raw)
}

func (r *CartaREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/cartas/%d", id))
	return err
}
