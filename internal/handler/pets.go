package handler

import (
	"net/http"

	"petlovers/internal/dto"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

type PetsHandler struct{ svc service.PetService }

func NewPetsHandler(svc service.PetService) *PetsHandler { return &PetsHandler{svc: svc} }

func (h *PetsHandler) Criar(c *gin.Context) {
	var req dto.CriarPetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Não foi possível criar o pet.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PetsHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarPetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Não foi possível atualizar o pet.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PetsHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err, "Não foi possível remover o pet.")
		return
	}
	c.Status(http.StatusNoContent)
}
