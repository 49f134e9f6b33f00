package entity

// CarrinhoAnuncio é o snapshot desnormalizado do anúncio guardado na linha
// do carrinho, só para exibição.
type CarrinhoAnuncio struct {
	ID                   int     `json:"id"`
	Titulo               string  `json:"titulo"`
	Descricao            string  `json:"descricao,omitempty"`
	PrecoTotal           float64 `json:"preco_total"`
	QuantidadeDisponivel int     `json:"quantidade_disponivel"`
	Status               string  `json:"status"`
}

type CarrinhoItem struct {
	ID             int              `json:"id"`
	UsuarioID      int              `json:"usuario_id"`
	AnuncioVendaID int              `json:"anuncio_venda_id"`
	Quantidade     int              `json:"quantidade"`
	CreatedAt      string           `json:"created_at,omitempty"`
	UpdatedAt      string           `json:"updated_at,omitempty"`
	Anuncio        *CarrinhoAnuncio `json:"anuncio,omitempty"`
}

type CarrinhoResumo struct {
	TotalItens int     `json:"total_itens"`
	ValorTotal float64 `json:"valor_total"`
}

type Carrinho struct {
	Itens  []CarrinhoItem `json:"itens"`
	Resumo CarrinhoResumo `json:"resumo"`
}

type AdicionarCarrinhoInput struct {
	AnuncioVendaID int `json:"anuncio_venda_id"`
	Quantidade     int `json:"quantidade"`
}
