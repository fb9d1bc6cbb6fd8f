package handler

import (
	"errors"
	"net/http"

	"petlovers/internal/apierror"
	"petlovers/internal/dto"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP: missing references are 404,
// domain validation failures 400, anything else a generic 500.
// respondErrorWithDetails keeps the fallback as the envelope message and
// carries the underlying error in the details field instead.
func respondError(c *gin.Context, err error, fallback string) {
	status, body := mapServiceError(err, fallback, false)
	c.JSON(status, body)
}

func respondErrorWithDetails(c *gin.Context, err error, fallback string) {
	status, body := mapServiceError(err, fallback, true)
	c.JSON(status, body)
}

func mapServiceError(err error, fallback string, withDetails bool) (int, *apierror.APIError) {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		if withDetails {
			return http.StatusNotFound, apierror.WithDetails(fallback, nf.Error())
		}
		return http.StatusNotFound, apierror.New(nf.Error())
	case errors.Is(err, service.ErrPetDeOutroCliente):
		if withDetails {
			return http.StatusBadRequest, apierror.WithDetails(fallback, err.Error())
		}
		return http.StatusBadRequest, apierror.New(err.Error())
	default:
		if withDetails {
			return http.StatusInternalServerError, apierror.WithDetails(fallback, err.Error())
		}
		return http.StatusInternalServerError, apierror.New(fallback)
	}
}

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Não foi possível criar o cliente e seu pet.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Não foi possível listar os clientes."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Não foi possível atualizar o cliente.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err, "Não foi possível remover o cliente.")
		return
	}
	c.Status(http.StatusNoContent)
}
