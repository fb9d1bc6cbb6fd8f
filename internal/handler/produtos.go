package handler

import (
	"net/http"

	"petlovers/internal/apierror"
	"petlovers/internal/dto"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Não foi possível criar o produto.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Não foi possível listar os produtos."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Não foi possível atualizar o produto.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err, "Não foi possível remover o produto.")
		return
	}
	c.Status(http.StatusNoContent)
}
