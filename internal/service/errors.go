// Package service embrulha os repositórios com validação rasa e
// notificações. Erro de validação nunca chega à rede: a notificação sai na
// hora e o erro volta síncrono para o chamador manter o formulário aberto.
package service

import "errors"

// Erros exportados para o chamador distinguir validação de falha de rede.
var (
	ErrTituloObrigatorio    = errors.New("título é obrigatório")
	ErrNomeObrigatorio      = errors.New("nome é obrigatório")
	ErrPrecoInvalido        = errors.New("preço deve ser maior que zero")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser maior que zero")
	ErrValorOfertaInvalido  = errors.New("valor da proposta deve ser maior que zero")
	ErrAnuncioObrigatorio   = errors.New("anúncio é obrigatório")
	ErrUsuarioObrigatorio   = errors.New("usuário é obrigatório")
	ErrTextoObrigatorio     = errors.New("texto é obrigatório")
	ErrCredenciaisInvalidas = errors.New("username e senha são obrigatórios")
	ErrTerminoInvalido      = errors.New("data de término deve ser futura")
	ErrLanceInvalido        = errors.New("valor do lance deve ser maior que zero")
)
