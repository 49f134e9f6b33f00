package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

func TestPropostaAceitarERecusarUsamPUT(t *testing.T) {
	var rotas []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rotas = append(rotas, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"data":{"id":8,"status":"aceita"}}`))
	}))
	defer server.Close()

	repo := NewPropostaREST(NewClient(ClientConfig{BaseURL: server.URL}))
	ctx := context.Background()

	proposta, err := repo.Accept(ctx, 8)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if proposta.ID != 8 {
		t.Fatalf("proposta errada: %+v", proposta)
	}
	if _, err := repo.Reject(ctx, 8); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	want := []string{"PUT /propostas/8/aceitar", "PUT /propostas/8/recusar"}
	for i, rota := range want {
		if rotas[i] != rota {
			t.Errorf("rota %d: esperava %q, veio %q", i, rota, rotas[i])
		}
	}
}

func TestPropostaGetByAnuncioUsaRotaAninhada(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[{"id":1},{"id":2}]}`))
	}))
	defer server.Close()

	repo := NewPropostaREST(NewClient(ClientConfig{BaseURL: server.URL}))
	propostas, err := repo.GetByAnuncio(context.Background(), entity.AnuncioTipoVenda, 15, entity.FiltroProposta{})
	if err != nil {
		t.Fatalf("GetByAnuncio: %v", err)
	}
	if gotPath != "/anuncios/venda/15/propostas" {
		t.Fatalf("rota errada: %q", gotPath)
	}
	if len(propostas) != 2 {
		t.Fatalf("esperava 2 propostas, veio %d", len(propostas))
	}
}

func TestAnuncioVendaGetAllOmiteFiltrosZerados(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repo := NewAnuncioVendaREST(NewClient(ClientConfig{BaseURL: server.URL}))
	_, err := repo.GetAll(context.Background(), entity.FiltroAnuncioVenda{
		PrecoMin: 10.5,
		Status:   entity.AnuncioAtivo,
	})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if got != "preco_min=10.5&status=ativo" {
		t.Fatalf("query esperada 'preco_min=10.5&status=ativo', veio %q", got)
	}
}
