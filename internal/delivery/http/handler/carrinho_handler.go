package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/memory"
)

type CarrinhoHandler struct {
	repo repository.CarrinhoRepository
}

func NewCarrinhoHandler(repo repository.CarrinhoRepository) *CarrinhoHandler {
	return &CarrinhoHandler{repo: repo}
}

func (h *CarrinhoHandler) Ver(c *gin.Context) {
	carrinho, err := h.repo.Ver(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": carrinho})
}

func (h *CarrinhoHandler) Adicionar(c *gin.Context) {
	var input entity.AdicionarCarrinhoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"message": "corpo inválido"})
		return
	}
	if input.Quantidade <= 0 {
		c.JSON(400, gin.H{"message": "quantidade deve ser maior que zero"})
		return
	}

	item, err := h.repo.Adicionar(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, memory.ErrAnuncioNotFound) {
			c.JSON(404, gin.H{"message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"message": err.Error()})
		return
	}
	c.JSON(201, gin.H{"data": item})
}

func (h *CarrinhoHandler) Remover(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "id inválido"})
		return
	}

	if err := h.repo.Remover(c.Request.Context(), itemID); err != nil {
		c.JSON(500, gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "item removido"})
}

func (h *CarrinhoHandler) Checkout(c *gin.Context) {
	if err := h.repo.Checkout(c.Request.Context()); err != nil {
		c.JSON(500, gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "compra finalizada"})
}
