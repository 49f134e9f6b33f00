package entity

// Status de anúncio de venda.
const (
	AnuncioAtivo     = "ativo"
	AnuncioVendido   = "vendido"
	AnuncioCancelado = "cancelado"
	// Anúncios de compra encerram como "finalizado" em vez de "vendido".
	AnuncioFinalizado = "finalizado"
)

// AnuncioVendaCarta é uma linha carta-dentro-do-anúncio.
type AnuncioVendaCarta struct {
	CartaID     int    `json:"carta_id"`
	Quantidade  int    `json:"quantidade"`
	Condicao    string `json:"condicao,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	FotoURL     string `json:"foto_url,omitempty"`
}

// AnuncioVenda é a postagem de venda. Invariante: preço > 0 e
// quantidade >= 1 enquanto ativo.
type AnuncioVenda struct {
	ID                    int                 `json:"id"`
	UsuarioID             int                 `json:"usuario_id"`
	Titulo                string              `json:"titulo"`
	Descricao             string              `json:"descricao,omitempty"`
	PrecoTotal            float64             `json:"preco_total"`
	QuantidadeDisponivel  int                 `json:"quantidade_disponivel"`
	Status                string              `json:"status"`
	CreatedAt             string              `json:"created_at,omitempty"`
	UpdatedAt             string              `json:"updated_at,omitempty"`
	Cartas                []AnuncioVendaCarta `json:"cartas,omitempty"`
	Usuario               *User               `json:"usuario,omitempty"`
}

type CreateAnuncioVendaInput struct {
	Titulo               string              `json:"titulo"`
	Descricao            string              `json:"descricao,omitempty"`
	PrecoTotal           float64             `json:"preco_total"`
	QuantidadeDisponivel int                 `json:"quantidade_disponivel"`
	Cartas               []AnuncioVendaCarta `json:"cartas"`
}

type UpdateAnuncioVendaInput struct {
	Titulo               *string  `json:"titulo,omitempty"`
	Descricao            *string  `json:"descricao,omitempty"`
	PrecoTotal           *float64 `json:"preco_total,omitempty"`
	QuantidadeDisponivel *int     `json:"quantidade_disponivel,omitempty"`
	Status               *string  `json:"status,omitempty"`
}

// FiltroAnuncioVenda: campos zero não viram query string.
type FiltroAnuncioVenda struct {
	PrecoMin   float64
	PrecoMax   float64
	NomeCarta  string
	Condicao   string
	Raridade   string
	Status     string
	DataInicio string
	DataFim    string
	Page       int
	Limit      int
}

// AnuncioCompra é a postagem "procura-se".
type AnuncioCompra struct {
	ID             int      `json:"id"`
	UsuarioID      int      `json:"usuario_id"`
	NomeCarta      string   `json:"nome_carta"`
	Expansao       string   `json:"expansao,omitempty"`
	NumeroExpansao string   `json:"numero_expansao,omitempty"`
	Raridade       string   `json:"raridade,omitempty"`
	Edicao         string   `json:"edicao,omitempty"`
	Quantidade     int      `json:"quantidade"`
	PrecoMaximo    float64  `json:"preco_maximo,omitempty"`
	CondicaoMinima string   `json:"condicao_minima,omitempty"`
	Tipos          []string `json:"tipos,omitempty"`
	Variacao       string   `json:"variacao,omitempty"`
	Descricao      string   `json:"descricao,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
	Usuario        *User    `json:"usuario,omitempty"`
}

type CreateAnuncioCompraInput struct {
	NomeCarta      string   `json:"nome_carta"`
	Expansao       string   `json:"expansao,omitempty"`
	NumeroExpansao string   `json:"numero_expansao,omitempty"`
	Raridade       string   `json:"raridade,omitempty"`
	Edicao         string   `json:"edicao,omitempty"`
	Quantidade     int      `json:"quantidade"`
	PrecoMaximo    float64  `json:"preco_maximo,omitempty"`
	CondicaoMinima string   `json:"condicao_minima,omitempty"`
	Tipos          []string `json:"tipos,omitempty"`
	Variacao       string   `json:"variacao,omitempty"`
	Descricao      string   `json:"descricao,omitempty"`
}

type UpdateAnuncioCompraInput struct {
	NomeCarta      *string  `json:"nome_carta,omitempty"`
	Expansao       *string  `json:"expansao,omitempty"`
	NumeroExpansao *string  `json:"numero_expansao,omitempty"`
	Raridade       *string  `json:"raridade,omitempty"`
	Edicao         *string  `json:"edicao,omitempty"`
	Quantidade     *int     `json:"quantidade,omitempty"`
	PrecoMaximo    *float64 `json:"preco_maximo,omitempty"`
	CondicaoMinima *string  `json:"condicao_minima,omitempty"`
	Tipos          []string `json:"tipos,omitempty"`
	Variacao       *string  `json:"variacao,omitempty"`
	Descricao      *string  `json:"descricao,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

type FiltroAnuncioCompra struct {
	NomeCarta      string
	UsuarioID      int
	Status         string
	PrecoMin       float64
	PrecoMax       float64
	Raridade       string
	Edicao         string
	CondicaoMinima string
	DataInicio     string
	DataFim        string
	Page           int
	Limit          int
}
