package rest

import (
	"context"
	"fmt"
	"net/url"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// UserREST fala com /users (telas de admin).
type UserREST struct {
	c *Client
}

func NewUserREST(c *Client) *UserREST {
	return &UserREST{c: c}
}

func (r *UserREST) GetAll(ctx context.Context, filtro entity.FiltroUser) (entity.Page[entity.User], error) {
	q := url.Values{}
	setStr(q, "nome", filtro.Nome)
	setStr(q, "username", filtro.Username)
	setStr(q, "email", filtro.Email)
	setStr(q, "status", filtro.Status)
	setInt(q, "nivel_usuario_id", filtro.NivelUsuarioID)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, "/users", q)
	if err != nil {
		return entity.Page[entity.User]{}, err
	}
	return decodePage[entity.User](raw)
}

func (r *UserREST) GetByID(ctx context.Context, id int) (*entity.User, error) {
	raw, err := r.c.get(ctx, fmt.Sprintf("/users/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.User](raw)
}

func (r *UserREST) Create(ctx context.Context, input entity.CreateUserInput) (*entity.User, error) {
	raw, err := r.c.post(ctx, "/users", input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.User](raw)
}

func (r *UserREST) Update(ctx context.Context, id int, input entity.UpdateUserInput) (*entity.User, error) {
	raw, err := r.c.patch(ctx, fmt.Sprintf("/users/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.User](raw)
}

func (r *UserREST) Delete(ctx context.Context, id int) error {
	_, err := r.c.delete(ctx, fmt.Sprintf("/users/%d", id))
	return err
}
