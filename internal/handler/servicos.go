package handler

import (
	"net/http"

	"petlovers/internal/apierror"
	"petlovers/internal/dto"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

type ServicosHandler struct{ svc service.ServicoService }

func NewServicosHandler(svc service.ServicoService) *ServicosHandler {
	return &ServicosHandler{svc: svc}
}

func (h *ServicosHandler) Criar(c *gin.Context) {
	var req dto.CriarServicoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Não foi possível criar o serviço.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ServicosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Não foi possível listar os serviços."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServicosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarServicoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Não foi possível atualizar o serviço.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServicosHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err, "Não foi possível remover o serviço.")
		return
	}
	c.Status(http.StatusNoContent)
}
