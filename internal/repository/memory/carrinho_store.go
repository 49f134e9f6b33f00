// Package memory guarda o carrinho do backend de desenvolvimento. Sem
// persistência: reiniciou o processo, o carrinho volta vazio.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

var ErrAnuncioNotFound = errors.New("anúncio não encontrado")

// CarrinhoStore implementa repository.CarrinhoRepository sobre um slice em
// memória. Adicionar o mesmo anúncio de novo soma quantidades em vez de
// duplicar a linha, como o backend real faz.
type CarrinhoStore struct {
	mu       sync.Mutex
	itens    []entity.CarrinhoItem
	anuncios map[int]entity.CarrinhoAnuncio
	nextID   int
	now      func() time.Time
}

func NewCarrinhoStore(anuncios []entity.CarrinhoAnuncio) *CarrinhoStore {
	byID := make(map[int]entity.CarrinhoAnuncio, len(anuncios))
	for _, a := range anuncios {
		byID[a.ID] = a
	}
	return &CarrinhoStore{anuncios: byID, nextID: 1, now: time.Now}
}

// SeedAnuncios é o catálogo padrão do backend de desenvolvimento.
func SeedAnuncios() []entity.CarrinhoAnuncio {
	return []entity.CarrinhoAnuncio{
		{ID: 1, Titulo: "Lote Charizard EX", Descricao: "3 cartas, coleção 151", PrecoTotal: 350, QuantidadeDisponivel: 2, Status: entity.AnuncioAtivo},
		{ID: 2, Titulo: "Pikachu Promo", Descricao: "Promo de aniversário", PrecoTotal: 80, QuantidadeDisponivel: 5, Status: entity.AnuncioAtivo},
		{ID: 3, Titulo: "Deck Eevee Completo", PrecoTotal: 120, QuantidadeDisponivel: 1, Status: entity.AnuncioAtivo},
	}
}

// resumo conta linhas em TotalItens (não soma quantidades) e soma
// quantidade * preço do snapshot em ValorTotal.
func (s *CarrinhoStore) resumo() entity.CarrinhoResumo {
	var resumo entity.CarrinhoResumo
	for _, item := range s.itens {
		resumo.TotalItens++
		if item.Anuncio != nil {
			resumo.ValorTotal += float64(item.Quantidade) * item.Anuncio.PrecoTotal
		}
	}
	return resumo
}

func (s *CarrinhoStore) Ver(_ context.Context) (*entity.Carrinho, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itens := make([]entity.CarrinhoItem, len(s.itens))
	copy(itens, s.itens)
	return &entity.Carrinho{Itens: itens, Resumo: s.resumo()}, nil
}

func (s *CarrinhoStore) Adicionar(_ context.Context, input entity.AdicionarCarrinhoInput) (*entity.CarrinhoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anuncio, ok := s.anuncios[input.AnuncioVendaID]
	if !ok {
		return nil, ErrAnuncioNotFound
	}

	agora := s.now().UTC().Format(time.RFC3339)
	for i := range s.itens {
		if s.itens[i].AnuncioVendaID == input.AnuncioVendaID {
			s.itens[i].Quantidade += input.Quantidade
			s.itens[i].UpdatedAt = agora
			item := s.itens[i]
			return &item, nil
		}
	}

	item := entity.CarrinhoItem{
		ID:             s.nextID,
		AnuncioVendaID: input.AnuncioVendaID,
		Quantidade:     input.Quantidade,
		CreatedAt:      agora,
		Anuncio:        &anuncio,
	}
	s.nextID++
	s.itens = append(s.itens, item)
	return &item, nil
}

func (s *CarrinhoStore) Remover(_ context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.itens[:0]
	for _, item := range s.itens {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	// Remover id ausente não é erro; o item pode já ter saído em outra aba.
	s.itens = kept
	return nil
}

func (s *CarrinhoStore) Checkout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itens = nil
	return nil
}
