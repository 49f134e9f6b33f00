package entity

// Status possíveis de uma conta.
const (
	UserAtivo     = "ativo"
	UserInativo   = "inativo"
	UserBloqueado = "bloqueado"
)

type User struct {
	ID             int           `json:"id"`
	Nome           string        `json:"nome"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	NivelUsuarioID int           `json:"nivel_usuario_id"`
	Pontuacao      int           `json:"pontuacao"`
	Status         string        `json:"status"`
	CreatedAt      string        `json:"created_at,omitempty"`
	UpdatedAt      string        `json:"updated_at,omitempty"`
	NivelUsuario   *NivelUsuario `json:"nivelUsuario,omitempty"`
}

type CreateUserInput struct {
	Nome           string `json:"nome"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Senha          string `json:"senha"`
	NivelUsuarioID int    `json:"nivel_usuario_id,omitempty"`
}

type UpdateUserInput struct {
	Nome           *string `json:"nome,omitempty"`
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	Senha          *string `json:"senha,omitempty"`
	NivelUsuarioID *int    `json:"nivel_usuario_id,omitempty"`
	Pontuacao      *int    `json:"pontuacao,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type FiltroUser struct {
	Nome           string
	Username       string
	Email          string
	Status         string
	NivelUsuarioID int
	Page           int
	Limit          int
}

// NivelUsuario classifica contas (iniciante, colecionador, admin...).
type NivelUsuario struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateNivelUsuarioInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

type UpdateNivelUsuarioInput struct {
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

type LoginInput struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
