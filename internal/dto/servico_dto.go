package dto

import "github.com/shopspring/decimal"

type CriarServicoRequest struct {
	Nome      string          `json:"nome"      validate:"required"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"     validate:"required"`
}

type AtualizarServicoRequest struct {
	Nome      string          `json:"nome"      validate:"required"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"     validate:"required"`
}

type ServicoResponse struct {
	ID        uint            `json:"id"`
	Nome      string          `json:"nome"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
}
