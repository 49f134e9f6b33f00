package rest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// O backend nunca padronizou o envelope: módulos antigos respondem
// {dados}, os novos {data, meta} ou {data, total, page, ...}, e alguns
// endpoints devolvem a entidade/array puro. Este arquivo colapsa as três
// formas em um único tipo canônico ANTES de qualquer coisa chegar à camada
// de serviço; divergência nova de formato deve ser tratada como defeito.

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Dados json.RawMessage `json:"dados"`
	Items json.RawMessage `json:"items"`

	Meta *pageMeta `json:"meta"`

	// Variante achatada ({data, total, page, limit, totalPages}).
	Total      *int `json:"total"`
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	TotalPages *int `json:"totalPages"`
	Pages      *int `json:"pages"`
}

type pageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func (e envelope) payload() json.RawMessage {
	switch {
	case len(e.Data) > 0 && string(e.Data) != "null":
		return e.Data
	case len(e.Dados) > 0 && string(e.Dados) != "null":
		return e.Dados
	case len(e.Items) > 0 && string(e.Items) != "null":
		return e.Items
	}
	return nil
}

// decodePage aceita array puro, {data|dados|items: [...]} com ou sem
// metadados e devolve sempre uma Page canônica.
func decodePage[T any](raw []byte) (entity.Page[T], error) {
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return entity.SinglePage(bare), nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return entity.Page[T]{}, fmt.Errorf("rest: resposta de lista inesperada: %w", err)
	}

	payload := env.payload()
	if payload == nil {
		// Lista vazia sem payload explícito.
		return entity.SinglePage[T](nil), nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return entity.Page[T]{}, fmt.Errorf("rest: itens da lista inesperados: %w", err)
	}

	page := entity.SinglePage(items)
	switch {
	case env.Meta != nil:
		page.Total = env.Meta.Total
		page.Page = env.Meta.Page
		page.Limit = env.Meta.Limit
		page.TotalPages = env.Meta.TotalPages
	case env.Total != nil:
		page.Total = *env.Total
		if env.Page != nil {
			page.Page = *env.Page
		}
		if env.Limit != nil {
			page.Limit = *env.Limit
		}
		if env.TotalPages != nil {
			page.TotalPages = *env.TotalPages
		} else if env.Pages != nil {
			page.TotalPages = *env.Pages
		}
	}
	return page, nil
}

// decodeEntity aceita {data: {...}}, {dados: {...}} ou a entidade pura.
func decodeEntity[T any](raw []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if payload := env.payload(); payload != nil {
			var out T
			if err := json.Unmarshal(payload, &out); err != nil {
				return nil, fmt.Errorf("rest: entidade inesperada no envelope: %w", err)
			}
			return &out, nil
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("rest: entidade inesperada: %w", err)
	}
	return &out, nil
}

// Helpers de query string: campo ausente no filtro não vira parâmetro.

func setStr(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value != 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setFloat(q url.Values, key string, value float64) {
	if value != 0 {
		q.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
}
