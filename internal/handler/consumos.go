package handler

import (
	"net/http"

	"petlovers/internal/dto"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

type ConsumosHandler struct{ svc service.ConsumoService }

func NewConsumosHandler(svc service.ConsumoService) *ConsumosHandler {
	return &ConsumosHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registar consumo
// @Description  Regista uma compra com várias linhas (produtos e/ou serviços) para um cliente, numa única transação: snapshot de preço, decremento de estoque e um registo por linha — tudo ou nada.
// @Tags         consumos
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarConsumoRequest true "Cliente e linhas de consumo"
// @Success      201  {object} dto.MensagemResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/consumos [post]
func (h *ConsumosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarConsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Registrar(c.Request.Context(), req); err != nil {
		respondErrorWithDetails(c, err, "Não foi possível registar o consumo.")
		return
	}

	c.JSON(http.StatusCreated, dto.MensagemResponse{Message: "Consumo registado com sucesso."})
}
