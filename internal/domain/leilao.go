package entity

import "time"

// Status de leilão. O backend antigo usa "aberto"/"encerrado" como sinônimos;
// a normalização acontece na borda REST.
const (
	LeilaoAtivo      = "ativo"
	LeilaoFinalizado = "finalizado"
	LeilaoCancelado  = "cancelado"
)

// Leilao é o registro servido tanto pela API real quanto pelo store mock.
// Invariante: PrecoAtual >= PrecoInicial >= 0.01.
type Leilao struct {
	ID           string  `json:"id"`
	Titulo       string  `json:"titulo"`
	Descricao    string  `json:"descricao,omitempty"`
	PrecoInicial float64 `json:"precoInicial"`
	PrecoAtual   float64 `json:"precoAtual"`
	Status       string  `json:"status"`
	TerminaEm    string  `json:"terminaEm"` // ISO 8601
	CriadoEm     string  `json:"criadoEm"`
	AtualizadoEm string  `json:"atualizadoEm,omitempty"`
	OwnerID      string  `json:"ownerId"`
	OwnerNome    string  `json:"ownerNome"`
}

type CreateLeilaoInput struct {
	Titulo       string  `json:"titulo"`
	Descricao    string  `json:"descricao,omitempty"`
	PrecoInicial float64 `json:"precoInicial"`
	TerminaEm    string  `json:"terminaEm"`
	OwnerID      string  `json:"ownerId,omitempty"`
	OwnerNome    string  `json:"ownerNome,omitempty"`
}

type UpdateLeilaoInput struct {
	Titulo       *string  `json:"titulo,omitempty"`
	Descricao    *string  `json:"descricao,omitempty"`
	PrecoInicial *float64 `json:"precoInicial,omitempty"`
	PrecoAtual   *float64 `json:"precoAtual,omitempty"`
	Status       *string  `json:"status,omitempty"`
	TerminaEm    *string  `json:"terminaEm,omitempty"`
}

// FiltroLeilao reproduz os parâmetros de listagem da tela de leilões.
type FiltroLeilao struct {
	Q          string
	Status     string // "", "todos" ou um dos status
	TerminaDe  string // yyyy-mm-dd
	TerminaAte string // yyyy-mm-dd
	Scope      string // "all" ou "mine"
	OwnerID    string
	OwnerNome  string // usado só pelo bootstrap do mock
	Page       int
	Limit      int
}

// ListaLeiloes é o resultado paginado da listagem.
type ListaLeiloes struct {
	Items []Leilao `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Pages int      `json:"pages"`
}

// CanEdit é a regra única de permissão usada pelos caminhos real e mock:
// admin edita qualquer leilão, dono edita os próprios.
func (l Leilao) CanEdit(isAdmin bool, userID string) bool {
	if isAdmin {
		return true
	}
	if userID == "" {
		return false
	}
	return l.OwnerID == userID
}

// Encerrado informa se o horário de término já passou.
func (l Leilao) Encerrado(now time.Time) bool {
	t, err := time.Parse(time.RFC3339, l.TerminaEm)
	if err != nil {
		return false
	}
	return !t.After(now)
}
