// Package state guarda o estado de tela compartilhado do cliente. Hoje só o
// carrinho precisa disso: várias telas leem os mesmos itens e totais.
package state

import (
	"context"
	"sync"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/service"
)

// CartStore mantém a cópia local do carrinho servida às telas. Fetch e Add
// substituem o estado pelo que o servidor devolver; Remove ajusta localmente
// para a tela não piscar; Checkout zera sem esperar confirmação.
type CartStore struct {
	mu      sync.Mutex
	svc     *service.CarrinhoService
	itens   []entity.CarrinhoItem
	resumo  entity.CarrinhoResumo
	loading bool
	lastErr error
}

func NewCartStore(svc *service.CarrinhoService) *CartStore {
	return &CartStore{svc: svc}
}

// Itens devolve uma cópia; o slice interno nunca escapa.
func (c *CartStore) Itens() []entity.CarrinhoItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.CarrinhoItem, len(c.itens))
	copy(out, c.itens)
	return out
}

func (c *CartStore) Resumo() entity.CarrinhoResumo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resumo
}

func (c *CartStore) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *CartStore) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *CartStore) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Fetch recarrega o carrinho inteiro do servidor.
func (c *CartStore) Fetch(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	carrinho, err := c.svc.Ver(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
	if err != nil {
		return err
	}
	c.itens = carrinho.Itens
	c.resumo = carrinho.Resumo
	return nil
}

// Add envia o item e recarrega o carrinho; o servidor é quem consolida
// quantidades de um mesmo anúncio.
func (c *CartStore) Add(ctx context.Context, input entity.AdicionarCarrinhoInput) error {
	c.setLoading(true)

	_, err := c.svc.Adicionar(ctx, input)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.loading = false
		c.mu.Unlock()
		return err
	}
	c.setLoading(false)
	return c.Fetch(ctx)
}

// Remove tira o item no servidor e filtra a cópia local, recalculando os
// totais a partir do que sobrou. Remover um id ausente não é erro.
func (c *CartStore) Remove(ctx context.Context, itemID int) error {
	c.setLoading(true)
	defer c.setLoading(false)

	if err := c.svc.Remover(ctx, itemID); err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
	kept := c.itens[:0]
	for _, item := range c.itens {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.itens = kept
	c.resumo = recompute(c.itens)
	return nil
}

// Checkout fecha a compra e limpa o estado local incondicionalmente.
func (c *CartStore) Checkout(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	err := c.svc.Checkout(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
	c.itens = nil
	c.resumo = entity.CarrinhoResumo{}
	return err
}

// recompute refaz os totais localmente. TotalItens é contagem de linhas,
// não soma de quantidades; linhas sem snapshot de anúncio contam na
// contagem mas não somam valor.
func recompute(itens []entity.CarrinhoItem) entity.CarrinhoResumo {
	var resumo entity.CarrinhoResumo
	for _, item := range itens {
		resumo.TotalItens++
		if item.Anuncio != nil {
			resumo.ValorTotal += float64(item.Quantidade) * item.Anuncio.PrecoTotal
		}
	}
	return resumo
}
