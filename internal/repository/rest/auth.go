package rest

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// AuthREST fala com /auth/login e /auth/profile.
type AuthREST struct {
	c *Client
}

func NewAuthREST(c *Client) *AuthREST {
	return &AuthREST{c: c}
}

func (r *AuthREST) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	raw, err := r.c.post(ctx, "/auth/login", input)
	if err != nil {
		return nil, err
	}
	resp, err := decodeEntity[entity.LoginResponse](raw)
	if err != nil {
		return nil, err
	}
	// Sem provedor externo, o token vai para o arquivo local para as
	// próximas requisições saírem autenticadas.
	if saver, ok := r.c.tokens.(FileTokenSource); ok && resp.Token != "" {
		if err := saver.Save(resp.Token); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (r *AuthREST) Profile(ctx context.Context) (*entity.User, error) {
	raw, err := r.c.get(ctx, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[entity.User](raw)
}
