package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

func TestNormalizeAceitaOsAliasesDoBackendAntigo(t *testing.T) {
	raw := `{
		"id": 42,
		"nome": "Blastoise Holo",
		"preco_inicial": 12.5,
		"status": "aberto",
		"data_fim": "2026-09-01T12:00:00Z",
		"usuario_id": 7,
		"usuario": {"username": "ash"}
	}`
	var wire leilaoWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	leilao := wire.normalize()
	if leilao.ID != "42" {
		t.Errorf("id numérico deveria virar string: %q", leilao.ID)
	}
	if leilao.Titulo != "Blastoise Holo" {
		t.Errorf("titulo via alias nome: %q", leilao.Titulo)
	}
	if leilao.PrecoInicial != 12.5 {
		t.Errorf("preco via alias preco_inicial: %v", leilao.PrecoInicial)
	}
	if leilao.PrecoAtual != 12.5 {
		t.Errorf("preço atual ausente deveria herdar o inicial: %v", leilao.PrecoAtual)
	}
	if leilao.Status != entity.LeilaoAtivo {
		t.Errorf("aberto deveria normalizar para ativo: %q", leilao.Status)
	}
	if leilao.TerminaEm != "2026-09-01T12:00:00Z" {
		t.Errorf("término via alias data_fim: %q", leilao.TerminaEm)
	}
	if leilao.OwnerID != "7" {
		t.Errorf("dono via alias usuario_id: %q", leilao.OwnerID)
	}
	if leilao.OwnerNome != "ash" {
		t.Errorf("nome do dono via usuario aninhado: %q", leilao.OwnerNome)
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"aberto":     entity.LeilaoAtivo,
		"ATIVO":      entity.LeilaoAtivo,
		"encerrado":  entity.LeilaoFinalizado,
		"finalizado": entity.LeilaoFinalizado,
		"cancelado":  entity.LeilaoCancelado,
		"":           entity.LeilaoAtivo,
		"qualquer":   entity.LeilaoAtivo,
	}
	for raw, want := range cases {
		if got := normalizeStatus(raw); got != want {
			t.Errorf("normalizeStatus(%q) = %q, esperava %q", raw, got, want)
		}
	}
}

func TestNormalizePreencheDefaults(t *testing.T) {
	var wire leilaoWire
	if err := json.Unmarshal([]byte(`{"uuid":"l_9"}`), &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	leilao := wire.normalize()
	if leilao.ID != "l_9" {
		t.Errorf("id via uuid: %q", leilao.ID)
	}
	if leilao.Titulo != "Leilão" {
		t.Errorf("título default: %q", leilao.Titulo)
	}
	if leilao.OwnerNome != "Usuário" {
		t.Errorf("dono default: %q", leilao.OwnerNome)
	}
}

func TestLeilaoListMontaQueryOmitindoTodos(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repo := NewLeilaoREST(NewClient(ClientConfig{BaseURL: server.URL}))
	_, err := repo.List(context.Background(), entity.FiltroLeilao{
		Q:      "charizard",
		Status: "todos",
		Scope:  "mine",
		Page:   2,
		Limit:  20,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got.Get("q") != "charizard" || got.Get("scope") != "mine" {
		t.Fatalf("query incompleta: %v", got)
	}
	if got.Has("status") {
		t.Fatalf("status=todos não deveria ir para a query: %v", got)
	}
	if got.Get("page") != "2" || got.Get("limit") != "20" {
		t.Fatalf("paginação errada: %v", got)
	}
}

func TestLeilaoPlaceBidEnviaValor(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]float64
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data":{"id":"l_1","precoAtual":30}}`))
	}))
	defer server.Close()

	repo := NewLeilaoREST(NewClient(ClientConfig{BaseURL: server.URL}))
	leilao, err := repo.PlaceBid(context.Background(), "l_1", 30)
	if err != nil {
		t.Fatalf("PlaceBid: %v", err)
	}
	if gotPath != "POST /leiloes/l_1/lance" {
		t.Fatalf("rota errada: %q", gotPath)
	}
	if gotBody["valor"] != 30 {
		t.Fatalf("corpo errado: %v", gotBody)
	}
	if leilao.PrecoAtual != 30 {
		t.Fatalf("resposta não normalizada: %+v", leilao)
	}
}
