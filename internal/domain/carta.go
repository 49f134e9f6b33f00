package entity

// Carta é a entidade de catálogo referenciada pelos anúncios.
// Dados de leitura frequente e escrita rara (telas de admin).
type Carta struct {
	ID             int              `json:"id"`
	Nome           string           `json:"nome"`
	Tipo           string           `json:"tipo"`
	Raridade       string           `json:"raridade"`
	Descricao      string           `json:"descricao,omitempty"`
	PontosAtaque   int              `json:"pontos_ataque,omitempty"`
	PontosSaude    int              `json:"pontos_saude,omitempty"`
	CategoriaID    int              `json:"categoria_id,omitempty"`
	CustoMana      int              `json:"custo_mana,omitempty"`
	Elemento       string           `json:"elemento,omitempty"`
	Expansao       string           `json:"expansao,omitempty"`
	NumeroColecao  string           `json:"numero_colecao,omitempty"`
	ImagemURL      string           `json:"imagem_url,omitempty"`
	PrecoMedio     float64          `json:"preco_medio,omitempty"`
	CreatedAt      string           `json:"created_at,omitempty"`
	UpdatedAt      string           `json:"updated_at,omitempty"`
	Categoria      *CategoriaCartas `json:"categoria,omitempty"`
}

type CreateCartaInput struct {
	Nome          string  `json:"nome"`
	Tipo          string  `json:"tipo"`
	Raridade      string  `json:"raridade"`
	Descricao     string  `json:"descricao,omitempty"`
	PontosAtaque  int     `json:"pontos_ataque,omitempty"`
	PontosSaude   int     `json:"pontos_saude,omitempty"`
	CategoriaID   int     `json:"categoria_id,omitempty"`
	CustoMana     int     `json:"custo_mana,omitempty"`
	Elemento      string  `json:"elemento,omitempty"`
	Expansao      string  `json:"expansao,omitempty"`
	NumeroColecao string  `json:"numero_colecao,omitempty"`
	ImagemURL     string  `json:"imagem_url,omitempty"`
	PrecoMedio    float64 `json:"preco_medio,omitempty"`
}

type UpdateCartaInput struct {
	Nome          *string  `json:"nome,omitempty"`
	Tipo          *string  `json:"tipo,omitempty"`
	Raridade      *string  `json:"raridade,omitempty"`
	Descricao     *string  `json:"descricao,omitempty"`
	PontosAtaque  *int     `json:"pontos_ataque,omitempty"`
	PontosSaude   *int     `json:"pontos_saude,omitempty"`
	CategoriaID   *int     `json:"categoria_id,omitempty"`
	CustoMana     *int     `json:"custo_mana,omitempty"`
	Elemento      *string  `json:"elemento,omitempty"`
	Expansao      *string  `json:"expansao,omitempty"`
	NumeroColecao *string  `json:"numero_colecao,omitempty"`
	ImagemURL     *string  `json:"imagem_url,omitempty"`
	PrecoMedio    *float64 `json:"preco_medio,omitempty"`
}

type FiltroCarta struct {
	Nome        string
	Tipo        string
	Raridade    string
	Elemento    string
	Expansao    string
	CategoriaID int
	PrecoMin    float64
	PrecoMax    float64
	Page        int
	Limit       int
}

// CategoriaCartas e CategoriaLeilao são linhas de referência nome/descrição
// com CRUD completo nas telas de admin.
type CategoriaCartas struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CategoriaLeilao struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateCategoriaInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

type UpdateCategoriaInput struct {
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}
