// Package repository define os contratos de acesso a dados consumidos pela
// camada de serviço. As implementações vivem em rest (backend real) e
// mockfile (store local de leilões); os serviços não sabem qual respondeu.
package repository

import (
	"context"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
)

type AnuncioVendaRepository interface {
	GetAll(ctx context.Context, filtro entity.FiltroAnuncioVenda) (entity.Page[entity.AnuncioVenda], error)
	GetByID(ctx context.Context, id int) (*entity.AnuncioVenda, error)
	Create(ctx context.Context, input entity.CreateAnuncioVendaInput) (*entity.AnuncioVenda, error)
	Update(ctx context.Context, id int, input entity.UpdateAnuncioVendaInput) (*entity.AnuncioVenda, error)
	Delete(ctx context.Context, id int) error
}

type AnuncioCompraRepository interface {
	GetAll(ctx context.Context, filtro entity.FiltroAnuncioCompra) (entity.Page[entity.AnuncioCompra], error)
	GetByID(ctx context.Context, id int) (*entity.AnuncioCompra, error)
	Create(ctx context.Context, input entity.CreateAnuncioCompraInput) (*entity.AnuncioCompra, error)
	Update(ctx context.Context, id int, input entity.UpdateAnuncioCompraInput) (*entity.AnuncioCompra, error)
	Delete(ctx context.Context, id int) error
}

type CartaRepository interface {
	GetAll(ctx context.Context, filtro entity.FiltroCarta) (entity.Page[entity.Carta], error)
	GetByID(ctx context.Context, id int) (*entity.Carta, error)
	Create(ctx context.Context, input entity.CreateCartaInput) (*entity.Carta, error)
	Update(ctx context.Context, id int, input entity.UpdateCartaInput) (*entity.Carta, error)
	Delete(ctx context.Context, id int) error
}

// CategoriaRepository cobre categoria-cartas e categoria-leilao; as duas
// tabelas têm o mesmo formato nome/descrição.
type CategoriaCartasRepository interface {
	GetAll(ctx context.Context) ([]entity.CategoriaCartas, error)
	GetByID(ctx context.Context, id int) (*entity.CategoriaCartas, error)
	Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaCartas, error)
	Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaCartas, error)
	Delete(ctx context.Context, id int) error
}

type CategoriaLeilaoRepository interface {
	GetAll(ctx context.Context) ([]entity.CategoriaLeilao, error)
	GetByID(ctx context.Context, id int) (*entity.CategoriaLeilao, error)
	Create(ctx context.Context, input entity.CreateCategoriaInput) (*entity.CategoriaLeilao, error)
	Update(ctx context.Context, id int, input entity.UpdateCategoriaInput) (*entity.CategoriaLeilao, error)
	Delete(ctx context.Context, id int) error
}

type NivelUsuarioRepository interface {
	GetAll(ctx context.Context) ([]entity.NivelUsuario, error)
	GetByID(ctx context.Context, id int) (*entity.NivelUsuario, error)
	Create(ctx context.Context, input entity.CreateNivelUsuarioInput) (*entity.NivelUsuario, error)
	Update(ctx context.Context, id int, input entity.UpdateNivelUsuarioInput) (*entity.NivelUsuario, error)
	Delete(ctx context.Context, id int) error
}

type UserRepository interface {
	GetAll(ctx context.Context, filtro entity.FiltroUser) (entity.Page[entity.User], error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	Create(ctx context.Context, input entity.CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id int, input entity.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int) error
}

type PropostaRepository interface {
	GetAll(ctx context.Context, filtro entity.FiltroProposta) (entity.Page[entity.Proposta], error)
	GetByID(ctx context.Context, id int) (*entity.Proposta, error)
	// GetByAnuncio usa a rota aninhada /anuncios/{tipo}/{id}/propostas.
	GetByAnuncio(ctx context.Context, tipo string, anuncioID int, filtro entity.FiltroProposta) ([]entity.Proposta, error)
	Create(ctx context.Context, input entity.CreatePropostaInput) (*entity.Proposta, error)
	Update(ctx context.Context, id int, input entity.UpdatePropostaInput) (*entity.Proposta, error)
	Accept(ctx context.Context, id int) (*entity.Proposta, error)
	Reject(ctx context.Context, id int) (*entity.Proposta, error)
	Delete(ctx context.Context, id int) error
}

type ComentarioRepository interface {
	GetByAnuncio(ctx context.Context, anuncioID int, filtro entity.FiltroComentario) ([]entity.Comentario, error)
	Create(ctx context.Context, input entity.CreateComentarioInput) (*entity.Comentario, error)
	Update(ctx context.Context, id int, input entity.UpdateComentarioInput) (*entity.Comentario, error)
	Delete(ctx context.Context, id int) error
}

// LeilaoRepository é implementado pela API real e pelo store mock; a fachada
// de leilões escolhe entre os dois em tempo de execução.
type LeilaoRepository interface {
	List(ctx context.Context, filtro entity.FiltroLeilao) (entity.ListaLeiloes, error)
	GetByID(ctx context.Context, id string) (*entity.Leilao, error)
	Create(ctx context.Context, input entity.CreateLeilaoInput) (*entity.Leilao, error)
	Update(ctx context.Context, id string, input entity.UpdateLeilaoInput) (*entity.Leilao, error)
	Delete(ctx context.Context, id string) error
	PlaceBid(ctx context.Context, id string, valor float64) (*entity.Leilao, error)
	Close(ctx context.Context, id string) (*entity.Leilao, error)
}

type CarrinhoRepository interface {
	Ver(ctx context.Context) (*entity.Carrinho, error)
	Adicionar(ctx context.Context, input entity.AdicionarCarrinhoInput) (*entity.CarrinhoItem, error)
	Remover(ctx context.Context, itemID int) error
	Checkout(ctx context.Context) error
}

type AuthRepository interface {
	Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error)
	Profile(ctx context.Context) (*entity.User, error)
}
