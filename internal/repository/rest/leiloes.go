package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

// LeilaoREST fala com /leiloes. O backend de leilões passou por várias mãos
// e os nomes de campo divergem entre instalações (camelCase, snake_case,
// aliases antigos); o wire struct abaixo aceita todos e normaliza para o
// registro canônico antes de sair deste pacote.
type LeilaoREST struct {
	c *Client
}

func NewLeilaoREST(c *Client) *LeilaoREST {
	return &LeilaoREST{c: c}
}

type leilaoWire struct {
	ID   json.RawMessage `json:"id"`
	UUID string          `json:"uuid"`

	Titulo string `json:"titulo"`
	Title  string `json:"title"`
	Nome   string `json:"nome"`

	Descricao   string `json:"descricao"`
	Description string `json:"description"`

	PrecoInicial      *float64 `json:"precoInicial"`
	PrecoInicialSnake *float64 `json:"preco_inicial"`
	ValorInicial      *float64 `json:"valor_inicial"`
	Preco             *float64 `json:"preco"`

	PrecoAtual      *float64 `json:"precoAtual"`
	PrecoAtualSnake *float64 `json:"preco_atual"`
	ValorAtual      *float64 `json:"valor_atual"`

	Status string `json:"status"`

	TerminaEm      string `json:"terminaEm"`
	TerminaEmSnake string `json:"termina_em"`
	DataFim        string `json:"data_fim"`
	DataFimCamel   string `json:"dataFim"`
	Fim            string `json:"fim"`

	OwnerID        json.RawMessage `json:"ownerId"`
	UsuarioID      json.RawMessage `json:"usuario_id"`
	UserID         json.RawMessage `json:"userId"`
	VendedorID     json.RawMessage `json:"vendedor_id"`

	OwnerNome   string `json:"ownerNome"`
	UsuarioNome string `json:"usuarioNome"`
	Username    string `json:"username"`
	Usuario     *struct {
		Nome     string `json:"nome"`
		Username string `json:"username"`
	} `json:"usuario"`

	CriadoEm       string `json:"criadoEm"`
	CreatedAtCamel string `json:"createdAt"`
	CreatedAtSnake string `json:"created_at"`

	AtualizadoEm   string `json:"atualizadoEm"`
	UpdatedAtCamel string `json:"updatedAt"`
	UpdatedAtSnake string `json:"updated_at"`
}

func firstStr(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstFloat(values ...*float64) (float64, bool) {
	for _, v := range values {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// rawID aceita id numérico ou string.
func rawID(values ...json.RawMessage) string {
	for _, v := range values {
		if len(v) == 0 || string(v) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// normalizeStatus mapeia os sinônimos do backend para o vocabulário do front.
func normalizeStatus(raw string) string {
	switch strings.ToLower(raw) {
	case "aberto", "ativo", "":
		return entity.LeilaoAtivo
	case "encerrado", "finalizado":
		return entity.LeilaoFinalizado
	case "cancelado":
		return entity.LeilaoCancelado
	}
	return entity.LeilaoAtivo
}

func (w leilaoWire) normalize() entity.Leilao {
	precoInicial, _ := firstFloat(w.PrecoInicial, w.PrecoInicialSnake, w.ValorInicial, w.Preco)
	precoAtual, ok := firstFloat(w.PrecoAtual, w.PrecoAtualSnake, w.ValorAtual)
	if !ok {
		precoAtual = precoInicial
	}

	ownerNome := firstStr(w.OwnerNome, w.UsuarioNome, w.Username)
	if ownerNome == "" && w.Usuario != nil {
		ownerNome = firstStr(w.Usuario.Nome, w.Usuario.Username)
	}
	if ownerNome == "" {
		ownerNome = "Usuário"
	}

	return entity.Leilao{
		ID:           firstStr(rawID(w.ID), w.UUID),
		Titulo:       firstStr(w.Titulo, w.Title, w.Nome, "Leilão"),
		Descricao:    firstStr(w.Descricao, w.Description),
		PrecoInicial: precoInicial,
		PrecoAtual:   precoAtual,
		Status:       normalizeStatus(w.Status),
		TerminaEm:    firstStr(w.TerminaEm, w.TerminaEmSnake, w.DataFim, w.DataFimCamel, w.Fim),
		CriadoEm:     firstStr(w.CriadoEm, w.CreatedAtCamel, w.CreatedAtSnake),
		AtualizadoEm: firstStr(w.AtualizadoEm, w.UpdatedAtCamel, w.UpdatedAtSnake),
		OwnerID:      rawID(w.OwnerID, w.UsuarioID, w.UserID, w.VendedorID),
		OwnerNome:    ownerNome,
	}
}

func (r *LeilaoREST) List(ctx context.Context, filtro entity.FiltroLeilao) (entity.ListaLeiloes, error) {
	q := url.Values{}
	setStr(q, "q", filtro.Q)
	if filtro.Status != "" && filtro.Status != "todos" {
		q.Set("status", filtro.Status)
	}
	setStr(q, "termina_de", filtro.TerminaDe)
	setStr(q, "termina_ate", filtro.TerminaAte)
	setStr(q, "scope", filtro.Scope)
	setStr(q, "owner_id", filtro.OwnerID)
	setInt(q, "page", filtro.Page)
	setInt(q, "limit", filtro.Limit)

	raw, err := r.c.get(ctx, "/leiloes", q)
	if err != nil {
		return entity.ListaLeiloes{}, err
	}

	page, err := decodePage[leilaoWire](raw)
	if err != nil {
		return entity.ListaLeiloes{}, err
	}

	items := make([]entity.Leilao, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.normalize())
	}
	return entity.ListaLeiloes{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.TotalPages,
	}, nil
}

func (r *LeilaoREST) GetByID(ctx context.Context, id string) (*entity.Leilao, error) {
	raw, err := r.c.get(ctx, "/leiloes/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return r.decodeLeilao(raw)
}

func (r *LeilaoREST) Create(ctx context.Context, input entity.CreateLeilaoInput) (*entity.Leilao, error) {
	raw, err := r.c.post(ctx, "/leiloes", input)
	if err != nil {
		return nil, err
	}
	return r.decodeLeilao(raw)
}

func (r *LeilaoREST) Update(ctx context.Context, id string, input entity.UpdateLeilaoInput) (*entity.Leilao, error) {
	raw, err := r.c.put(ctx, "/leiloes/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	return r.decodeLeilao(raw)
}

func (r *LeilaoREST) Delete(ctx context.Context, id string) error {
	_, err := r.c.delete(ctx, "/leiloes/"+url.PathEscape(id))
	return err
}

func (r *LeilaoREST) PlaceBid(ctx context.Context, id string, valor float64) (*entity.Leilao, error) {
	body := map[string]float64{"valor": valor}
	raw, err := r.c.post(ctx, fmt.Sprintf("/leiloes/%s/lance", url.PathEscape(id)), body)
	if err != nil {
		return nil, err
	}
	return r.decodeLeilao(raw)
}

func (r *LeilaoREST) Close(ctx context.Context, id string) (*entity.Leilao, error) {
	raw, err := r.c.post(ctx, fmt.Sprintf("/leiloes/%s/encerrar", url.PathEscape(id)), nil)
	if err != nil {
		return nil, err
	}
	return r.decodeLeilao(raw)
}

func (r *LeilaoREST) decodeLeilao(raw []byte) (*entity.Leilao, error) {
	wire, err := decodeEntity[leilaoWire](raw)
	if err != nil {
		return nil, err
	}
	leilao := wire.normalize()
	return &leilao, nil
}
