package entity

// Comentario é a avaliação/observação deixada em um anúncio.
type Comentario struct {
	ID        int    `json:"id"`
	UsuarioID int    `json:"usuario_id"`
	AnuncioID int    `json:"anuncio_id"`
	Texto     string `json:"texto"`
	Nota      int    `json:"nota,omitempty"` // 1..5
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Usuario   *User  `json:"usuario,omitempty"`
}

type CreateComentarioInput struct {
	AnuncioID int    `json:"anuncio_id"`
	Texto     string `json:"texto"`
	Nota      int    `json:"nota,omitempty"`
}

type UpdateComentarioInput struct {
	Texto *string `json:"texto,omitempty"`
	Nota  *int    `json:"nota,omitempty"`
}

type FiltroComentario struct {
	AnuncioID int
	UsuarioID int
	Page      int
	Limit     int
}
