package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// PropostaREST fala com /propostas e com a rota aninhada
// /anuncios/{tipo}/{id}/propostas.
type PropostaREST struct {
	c *Client
}

func NewPropostaREST(c *Client) *PropostaREST {
	return &PropostaREST{c: c}
}

func propostaQuery(filtro entity.FiltroProposta) url.Values {
	q := url.Values{}
	setInt(q, "usuario_id", filtro.UsuarioID)
	setInt(q, "anuncio_id", filtro.AnuncioID)
	setStr(q, "status", filtro.Status)
	setFloat(q, "valor_min", filtro.ValorMin)
	setFloat(q, "valor_max", filtro.ValorMax)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)
	return q
}

func (r *PropostaREST) GetAll(ctx context.Context, filtro entity.FiltroProposta) (entity.Page[entity.Proposta], error) {
	raw, err := r.c.get(ctx, "/propostas", propostaQuery(filtro))
	if err != nil {
		return entity.Page[entity.Proposta]{}, err
	}
	return decodePage[entity.Proposta](raw)
}

func (r *PropostaREST) GetByID(ctx context.Context, id int) (*entity.Proposta, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/propostas/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Proposta](raw)
}

func (r *PropostaREST) GetByAnuncio(ctx context.Context, tipo string, anuncioID int, filtro entity.FiltroProposta) ([]entity.Proposta, error) {
	path := fmt.Sprintf("/anuncios/%s/%d/propostas", tipo, anuncioID)
	raw, err := r.c.get(ctx, path, propostaQuery(filtro))
	if err != nil {
		return nil, err
	}
	page, err := decodePage[entity.Proposta](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *PropostaREST) Create(ctx context.Context, input entity.CreatePropostaInput) (*entity.Proposta, error) {
	raw, err := r.c.post(ctx, "/propostas", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Proposta](raw)
}

func (r *PropostaREST) Update(ctx context.Context, id int, input entity.UpdatePropostaInput) (*entity.Proposta, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/propostas/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Proposta](raw)
}

func (r *PropostaREST) Accept(ctx context.Context, id int) (*entity.Proposta, error) {
	raw, err := r.c.put(ctx, fmt.Sprintf("/propostas/%d/aceitar", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Proposta](raw)
}

func (r *PropostaREST) Reject(ctx context.Context, id int) (*entity.Proposta, error) {
	raw, err := r.c.put(ctx, fmt.Sprintf("/propostas/%d/recusar", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Proposta](raw)
}

func (r *PropostaREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/propostas/%d", id))
	return err
}
