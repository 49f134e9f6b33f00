package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// AnuncioCompraREST fala com /anuncios-compra.
type AnuncioCompraREST struct {
	c *Client
}

func NewAnuncioCompraREST(c *Client) *AnuncioCompraREST {
	return &AnuncioCompraREST{c: c}
}

func (r *AnuncioCompraREST) GetAll(ctx context.Context, filtro entity.FiltroAnuncioCompra) (entity.Page[entity.AnuncioCompra], error) {
	q := url.Values{}
	setStr(q, "nome_carta", filtro.NomeCarta)
	setInt(q, "usuario_id", filtro.UsuarioID)
	setStr(q, "status", filtro.Status)
	setFloat(q, "preco_min", filtro.PrecoMin)
	setFloat(q, "preco_max", filtro.PrecoMax)
	setStr(q, "raridade", filtro.Raridade)
	setStr(q, "edicao", filtro.Edicao)
	setStr(q, "condicao_minima", filtro.CondicaoMinima)
	setStr(q, "data_inicio", filtro.DataInicio)
	setStr(q, "data_fim", filtro.DataFim)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, "/anuncios-compra", q)
	if err != nil {
		return entity.Page[entity.AnuncioCompra]{}, err
	}
	return decodePage[entity.AnuncioCompra](raw)
}

func (r *AnuncioCompraREST) GetByID(ctx context.Context, id int) (*entity.AnuncioCompra, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/anuncios-compra/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioCompra](raw)
}

func (r *AnuncioCompraREST) Create(ctx context.Context, input entity.CreateAnuncioCompraInput) (*entity.AnuncioCompra, error) {
	raw, err := r.c.post(ctx, "/anuncios-compra", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioCompra](raw)
}

func (r *AnuncioCompraREST) Update(ctx context.Context, id int, input entity.UpdateAnuncioCompraInput) (*entity.AnuncioCompra, error) {
	raw, err := r.c.put(ctx, fmt.Sprintf("/anuncios-compra/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioCompra](raw)
}

func (r *AnuncioCompraREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/anuncios-compra/%d", id))
	return err
}
