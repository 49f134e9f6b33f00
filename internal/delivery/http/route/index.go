package route

import (
	"github.com/gin-gonic/gin"

	httpHandler "github.com/r-viana/ProgWebFrontDiego/internal/delivery/http/handler"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
)

// SetupRoute registra as rotas do backend de desenvolvimento: leilões sobre
// o store em arquivo e carrinho sobre o store em memória.
func SetupRoute(app *gin.Engine, leiloes repository.LeilaoRepository, carrinho repository.CarrinhoRepository) {
	leilaoHandler := httpHandler.NewLeilaoHandler(leiloes)
	carrinhoHandler := httpHandler.NewCarrinhoHandler(carrinho)

	l := app.Group("/leiloes")
	l.GET("", leilaoHandler.List)
	l.GET("/:id", leilaoHandler.GetByID)
	l.POST("", leilaoHandler.Create)
	l.PUT("/:id", leilaoHandler.Update)
	l.DELETE("/:id", leilaoHandler.Delete)
	l.POST("/:id/lance", leilaoHandler.PlaceBid)
	l.POST("/:id/encerrar", leilaoHandler.Close)

	cart := app.Group("/carrinho")
	cart.GET("", carrinhoHandler.Ver)
	cart.POST("", carrinhoHandler.Adicionar)
	cart.DELETE("/:id", carrinhoHandler.Remover)
	cart.POST("/checkout", carrinhoHandler.Checkout)
}
