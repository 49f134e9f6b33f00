// mockapi é o backend de desenvolvimento: serve /leiloes sobre o store em
// arquivo e /carrinho sobre um carrinho em memória, com as mesmas rotas e
// envelopes da API real.
package main

import (
	"github.com/r-viana/ProgWebFrontDiego/internal/config"
	"github.com/r-viana/ProgWebFrontDiego/internal/delivery/http/route"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/memory"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/mockfile"
)

func main() {
	config.LoadEnv()
	cfg := config.FromEnv()

	leiloes := mockfile.NewLeilaoStore(cfg.MockStorePath)
	carrinho := memory.NewCarrinhoStore(memory.SeedAnuncios())

	app := config.SetupGin()
	route.SetupRoute(app, leiloes, carrinho)
	config.SetupServer(app, cfg.Port)
}
