package rest

import (
	"context"
	"fmt"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// NivelUsuarioREST fala com /niveis-usuario.
type NivelUsuarioREST struct {
	c *Client
}

func NewNivelUsuarioREST(c *Client) *NivelUsuarioREST {
	return &NivelUsuarioREST{c: c}
}

func (r *NivelUsuarioREST) GetAll(ctx context.Context) ([]entity.NivelUsuario, error) {
	raw, err := r.c.get(ctx, "/niveis-usuario", nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[entity.NivelUsuario](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *NivelUsuarioREST) GetByID(ctx context.Context, id int) (*entity.NivelUsuario, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/niveis-usuario/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.NivelUsuario](raw)
}

func (r *NivelUsuarioREST) Create(ctx context.Context, input entity.CreateNivelUsuarioInput) (*entity.NivelUsuario, error) {
	raw, err := r.c.post(ctx, "/niveis-usuario", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.NivelUsuario](raw)
}

func (r *NivelUsuarioREST) Update(ctx context.Context, id int, input entity.UpdateNivelUsuarioInput) (*entity.NivelUsuario, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/niveis-usuario/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.NivelUsuario](raw)
}

func (r *NivelUsuarioREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/niveis-usuario/%d", id))
	return err
}
