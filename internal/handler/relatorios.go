package handler

import (
	"net/http"

	"petlovers/internal/apierror"
	"petlovers/internal/service"

	"github.com/gin-gonic/gin"
)

const erroRelatorio = "Não foi possível gerar o relatório."

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// TopClientesQuantidade godoc
// @Summary      Top 10 clientes por quantidade consumida
// @Tags         relatorios
// @Produce      json
// @Success      200 {array} dto.TopClienteQuantidade
// @Router       /api/relatorios/top-clientes-quantidade [get]
func (h *RelatoriosHandler) TopClientesQuantidade(c *gin.Context) {
	resp, err := h.svc.TopClientesPorQuantidade(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(erroRelatorio))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopClientesValor godoc
// @Summary      Top 5 clientes por valor gasto
// @Tags         relatorios
// @Produce      json
// @Success      200 {array} dto.TopClienteValor
// @Router       /api/relatorios/top-clientes-valor [get]
func (h *RelatoriosHandler) TopClientesValor(c *gin.Context) {
	resp, err := h.svc.TopClientesPorValor(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(erroRelatorio))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopItensConsumidos godoc
// @Summary      Ranking de produtos e serviços por quantidade consumida
// @Tags         relatorios
// @Produce      json
// @Success      200 {object} dto.TopItensResponse
// @Router       /api/relatorios/top-itens-consumidos [get]
func (h *RelatoriosHandler) TopItensConsumidos(c *gin.Context) {
	resp, err := h.svc.TopItensConsumidos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(erroRelatorio))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopItensPorPet godoc
// @Summary      Consumo cruzado por tipo e raça de pet
// @Tags         relatorios
// @Produce      json
// @Success      200 {object} dto.TopItensPorPet
// @Router       /api/relatorios/top-itens-por-pet [get]
func (h *RelatoriosHandler) TopItensPorPet(c *gin.Context) {
	resp, err := h.svc.TopItensPorPet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(erroRelatorio))
		return
	}
	c.JSON(http.StatusOK, resp)
}
