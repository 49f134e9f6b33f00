// Package handler expõe o backend de desenvolvimento: as mesmas rotas que a
// API real serve, respondidas pelo store local. Útil para rodar o cliente e
// os testes de integração sem subir o backend de verdade.
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	entity "github.com/r-viana/ProgWebFrontDiego/internal/domain"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository"
	"github.com/r-viana/ProgWebFrontDiego/internal/repository/mockfile"
)

type LeilaoHandler struct {
	repo repository.LeilaoRepository
}

func NewLeilaoHandler(repo repository.LeilaoRepository) *LeilaoHandler {
	return &LeilaoHandler{repo: repo}
}

// leilaoStatus traduz os erros do store para códigos HTTP.
func leilaoStatus(err error) int {
	switch {
	case errors.Is(err, mockfile.ErrLeilaoNotFound):
		return 404
	case errors.Is(err, mockfile.ErrLeilaoEncerrado), errors.Is(err, mockfile.ErrLanceInvalido):
		return 400
	}
	return 500
}

func (h *LeilaoHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	filtro := entity.FiltroLeilao{
		Q:          c.Query("q"),
		Status:     c.Query("status"),
		TerminaDe:  c.Query("termina_de"),
		TerminaAte: c.Query("termina_ate"),
		Scope:      c.Query("scope"),
		OwnerID:    c.Query("owner_id"),
		OwnerNome:  c.Query("owner_nome"),
		Page:       page,
		Limit:      limit,
	}

	lista, err := h.repo.List(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"data": lista.Items,
		"meta": gin.H{
			"total": lista.Total,
			"page":  lista.Page,
			"limit": lista.Limit,
			"pages": lista.Pages,
		},
	})
}

func (h *LeilaoHandler) GetByID(c *gin.Context) {
	leilao, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": leilao})
}

func (h *LeilaoHandler) Create(c *gin.Context) {
	var input entity.CreateLeilaoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"message": "corpo inválido"})
		return
	}

	leilao, err := h.repo.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(201, gin.H{"data": leilao})
}

func (h *LeilaoHandler) Update(c *gin.Context) {
	var input entity.UpdateLeilaoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"message": "corpo inválido"})
		return
	}

	leilao, err := h.repo.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": leilao})
}

func (h *LeilaoHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "leilão removido"})
}

func (h *LeilaoHandler) PlaceBid(c *gin.Context) {
	var body struct {
		Valor float64 `json:"valor"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"message": "corpo inválido"})
		return
	}

	leilao, err := h.repo.PlaceBid(c.Request.Context(), c.Param("id"), body.Valor)
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": leilao})
}

func (h *LeilaoHandler) Close(c *gin.Context) {
	leilao, err := h.repo.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(leilaoStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": leilao})
}
