package state

import (
	"context"
	"errors"
	"testing"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/notify"
	"github.com/r-viana/ProgWebFrontDiego/internal/service"
)

// fakeCarrinhoRepo devolve o carrinho configurado e registra o que o store
// pediu ao servidor.
type fakeCarrinhoRepo struct {
	carrinho     entity.Carrinho
	verCalls     int
	removerIDs   []int
	checkouts    int
	removerErr   error
	adicionarErr error
}

func (f *fakeCarrinhoRepo) Ver(_ context.Context) (*entity.Carrinho, error) {
	f.verCalls++
	c := f.carrinho
	return &c, nil
}

func (f *fakeCarrinhoRepo) Adicionar(_ context.Context, input entity.AdicionarCarrinhoInput) (*entity.CarrinhoItem, error) {
	if f.adicionarErr != nil {
		return nil, f.adicionarErr
	}
	return &entity.CarrinhoItem{ID: 99, AnuncioVendaID: input.AnuncioVendaID, Quantidade: input.Quantidade}, nil
}

func (f *fakeCarrinhoRepo) Remover(_ context.Context, itemID int) error {
	f.removerIDs = append(f.removerIDs, itemID)
	return f.removerErr
}

func (f *fakeCarrinhoRepo) Checkout(_ context.Context) error {
	f.checkouts++
	return nil
}

func carrinhoComDoisItens() entity.Carrinho {
	return entity.Carrinho{
		Itens: []entity.CarrinhoItem{
			{ID: 1, AnuncioVendaID: 10, Quantidade: 2, Anuncio: &entity.CarrinhoAnuncio{ID: 10, Titulo: "Charizard", PrecoTotal: 100}},
			{ID: 2, AnuncioVendaID: 11, Quantidade: 1, Anuncio: &entity.CarrinhoAnuncio{ID: 11, Titulo: "Pikachu", PrecoTotal: 50}},
		},
		Resumo: entity.CarrinhoResumo{TotalItens: 2, ValorTotal: 250},
	}
}

func newCartStore(repo *fakeCarrinhoRepo) *CartStore {
	return NewCartStore(service.NewCarrinhoService(repo, &notify.Recorder{}))
}

func TestFetchSubstituiOEstado(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: carrinhoComDoisItens()}
	store := newCartStore(repo)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(store.Itens()) != 2 {
		t.Fatalf("esperava 2 itens, veio %d", len(store.Itens()))
	}
	resumo := store.Resumo()
	if resumo.TotalItens != 2 || resumo.ValorTotal != 250 {
		t.Fatalf("resumo errado: %+v", resumo)
	}
	if store.Loading() {
		t.Fatal("loading deveria voltar para false")
	}
}

func TestAddRecarregaDoServidor(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: carrinhoComDoisItens()}
	store := newCartStore(repo)

	err := store.Add(context.Background(), entity.AdicionarCarrinhoInput{AnuncioVendaID: 10, Quantidade: 1})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if repo.verCalls != 1 {
		t.Fatalf("Add deveria recarregar o carrinho, Ver foi chamado %d vezes", repo.verCalls)
	}
}

func TestAddValidacaoNaoRecarrega(t *testing.T) {
	repo := &fakeCarrinhoRepo{}
	store := newCartStore(repo)

	err := store.Add(context.Background(), entity.AdicionarCarrinhoInput{AnuncioVendaID: 10, Quantidade: 0})
	if !errors.Is(err, service.ErrQuantidadeInvalida) {
		t.Fatalf("erro esperado de quantidade, veio %v", err)
	}
	if repo.verCalls != 0 {
		t.Fatal("validação não deveria disparar refetch")
	}
}

func TestRemoveFiltraLocalERecalcula(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: carrinhoComDoisItens()}
	store := newCartStore(repo)
	ctx := context.Background()

	if err := store.Fetch(ctx); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := store.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	itens := store.Itens()
	if len(itens) != 1 || itens[0].ID != 2 {
		t.Fatalf("item 1 deveria sair localmente: %+v", itens)
	}
	resumo := store.Resumo()
	if resumo.TotalItens != 1 || resumo.ValorTotal != 50 {
		t.Fatalf("resumo recalculado errado: %+v", resumo)
	}
	// Só o servidor foi avisado; não houve refetch.
	if repo.verCalls != 1 {
		t.Fatalf("Remove não deveria refazer Ver, houve %d chamadas", repo.verCalls)
	}
}

func TestTotalItensContaLinhasNaoQuantidades(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: entity.Carrinho{
		Itens: []entity.CarrinhoItem{
			{ID: 1, AnuncioVendaID: 10, Quantidade: 1, Anuncio: &entity.CarrinhoAnuncio{ID: 10, PrecoTotal: 100}},
			{ID: 2, AnuncioVendaID: 11, Quantidade: 3, Anuncio: &entity.CarrinhoAnuncio{ID: 11, PrecoTotal: 50}},
		},
		Resumo: entity.CarrinhoResumo{TotalItens: 2, ValorTotal: 250},
	}}
	store := newCartStore(repo)
	ctx := context.Background()

	if err := store.Fetch(ctx); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := store.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// Sobra uma linha com quantidade 3: conta 1 linha, soma 3 * 50.
	resumo := store.Resumo()
	if resumo.TotalItens != 1 {
		t.Fatalf("TotalItens deveria contar linhas (1), veio %d", resumo.TotalItens)
	}
	if resumo.ValorTotal != 150 {
		t.Fatalf("ValorTotal esperado 150, veio %v", resumo.ValorTotal)
	}
}

func TestRemoveIdAusenteEIdempotente(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: carrinhoComDoisItens()}
	store := newCartStore(repo)
	ctx := context.Background()

	store.Fetch(ctx)
	if err := store.Remove(ctx, 777); err != nil {
		t.Fatalf("remover id ausente deveria ser no-op, veio %v", err)
	}
	if len(store.Itens()) != 2 {
		t.Fatalf("itens não deveriam mudar: %+v", store.Itens())
	}
	resumo := store.Resumo()
	if resumo.TotalItens != 2 || resumo.ValorTotal != 250 {
		t.Fatalf("resumo não deveria mudar: %+v", resumo)
	}
}

func TestCheckoutLimpaOEstado(t *testing.T) {
	repo := &fakeCarrinhoRepo{carrinho: carrinhoComDoisItens()}
	store := newCartStore(repo)
	ctx := context.Background()

	store.Fetch(ctx)
	if err := store.Checkout(ctx); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if repo.checkouts != 1 {
		t.Fatalf("servidor deveria receber 1 checkout, recebeu %d", repo.checkouts)
	}
	if len(store.Itens()) != 0 {
		t.Fatalf("itens deveriam zerar: %+v", store.Itens())
	}
	if resumo := store.Resumo(); resumo.TotalItens != 0 || resumo.ValorTotal != 0 {
		t.Fatalf("resumo deveria zerar: %+v", resumo)
	}
}
