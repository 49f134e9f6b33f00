package entity

// Status de proposta. Aceita/recusada/cancelada são terminais.
const (
	PropostaPendente  = "pendente"
	PropostaAceita    = "aceita"
	PropostaRecusada  = "recusada"
	PropostaCancelada = "cancelada"
)

// Tipos de anúncio alvo de uma proposta (rota aninhada /anuncios/{tipo}/{id}/propostas).
const (
	AnuncioTipoVenda  = "venda"
	AnuncioTipoCompra = "compra"
)

// Proposta é a oferta de negociação sobre um anúncio.
type Proposta struct {
	ID          int           `json:"id"`
	UsuarioID   int           `json:"usuario_id"`
	AnuncioID   int           `json:"anuncio_id"`
	ValorOferta float64       `json:"valor_oferta"`
	Status      string        `json:"status"`
	Mensagem    string        `json:"mensagem,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
	Usuario     *User         `json:"usuario,omitempty"`
	Anuncio     *AnuncioVenda `json:"anuncio,omitempty"`
}

type CreatePropostaInput struct {
	UsuarioID   int     `json:"usuario_id"`
	AnuncioID   int     `json:"anuncio_id"`
	ValorOferta float64 `json:"valor_oferta"`
	Mensagem    string  `json:"mensagem,omitempty"`
}

type UpdatePropostaInput struct {
	ValorOferta *float64 `json:"valor_oferta,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Mensagem    *string  `json:"mensagem,omitempty"`
}

type FiltroProposta struct {
	UsuarioID int
	AnuncioID int
	Status    string
	ValorMin  float64
	ValorMax  float64
	Page      int
	Limit     int
}

// Terminal informa se a proposta não aceita mais transições.
func (p Proposta) Terminal() bool {
	switch p.Status {
	case PropostaAceita, PropostaRecusada, PropostaCancelada:
		return true
	}
	return false
}
