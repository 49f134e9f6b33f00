package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// ComentarioREST fala com /anuncios/{id}/comentarios e /comentarios/{id}.
type ComentarioREST struct {
	c *Client
}

func NewComentarioREST(c *Client) *ComentarioREST {
	return &ComentarioREST{c: c}
}

func (r *ComentarioREST) GetByAnuncio(ctx context.Context, anuncioID int, filtro entity.FiltroComentario) ([]entity.Comentario, error) {
	q := url.Values{}
	setInt(q, "usuario_id", filtro.UsuarioID)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, fmt.Sprintf("/anuncios/%d/comentarios", anuncioID), q)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[entity.Comentario](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *ComentarioREST) Create(ctx context.Context, input entity.CreateComentarioInput) (*entity.Comentario, error) {
	raw, err := r.c.post(ctx, fmt.Sprintf("/anuncios/%d/comentarios", input.AnuncioID), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Comentario](raw)
}

func (r *ComentarioREST) Update(ctx context.Context, id int, input entity.UpdateComentarioInput) (*entity.Comentario, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/comentarios/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.Comentario](raw)
}

func (r *ComentarioREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/comentarios/%d", id))
	return err
}
