package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// AnuncioVendaREST fala com /anuncios-venda.
type AnuncioVendaREST struct {
	c *Client
}

func NewAnuncioVendaREST(c *Client) *AnuncioVendaREST {
	return &AnuncioVendaREST{c: c}
}

func (r *AnuncioVendaREST) GetAll(ctx context.Context, filtro entity.FiltroAnuncioVenda) (entity.Page[entity.AnuncioVenda], error) {
	q := url.Values{}
	setFloat(q, "preco_min", filtro.PrecoMin)
	setFloat(q, "preco_max", filtro.PrecoMax)
	setStr(q, "nome_carta", filtro.NomeCarta)
	setStr(q, "condicao", filtro.Condicao)
	setStr(q, "raridade", filtro.Raridade)
	setStr(q, "status", filtro.Status)
	setStr(q, "data_inicio", filtro.DataInicio)
	setStr(q, "data_fim", filtro.DataFim)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, "/anuncios-venda", q)
	if err != nil {
		return entity.Page[entity.AnuncioVenda]{}, err
	}
	return decodePage[entity.AnuncioVenda](raw)
}

func (r *AnuncioVendaREST) GetByID(ctx context.Context, id int) (*entity.AnuncioVenda, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/anuncios-venda/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioVenda](raw)
}

func (r *AnuncioVendaREST) Create(ctx context.Context, input entity.CreateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	raw, err := r.c.post(ctx, "/anuncios-venda", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioVenda](raw)
}

func (r *AnuncioVendaREST) Update(ctx context.Context, id int, input entity.UpdateAnuncioVendaInput) (*entity.AnuncioVenda, error) {
	raw, err := r.c.put(ctx, fmt.Sprintf("/anuncios-venda/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.AnuncioVenda](raw)
}

func (r *AnuncioVendaREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/anuncios-venda/%d", id))
	return err
}
