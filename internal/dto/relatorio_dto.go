package dto

import "github.com/shopspring/decimal"

// Shapes below are pinned by the dashboard frontend — field names must not change.

type TopClienteQuantidade struct {
	ClienteID       uint   `json:"clienteId"`
	ClienteNome     string `json:"clienteNome"`
	TotalQuantidade int    `json:"totalQuantidade"`
}

type TopClienteValor struct {
	ClienteID   uint            `json:"clienteId"`
	ClienteNome string          `json:"clienteNome"`
	TotalValor  decimal.Decimal `json:"totalValor"`
}

type ItemRanking struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type TopItensResponse struct {
	Produtos []ItemRanking `json:"produtos"`
	Servicos []ItemRanking `json:"servicos"`
}

// TopItensPorPet maps "tipo - raca" → item name → summed quantity.
type TopItensPorPet map[string]map[string]int
