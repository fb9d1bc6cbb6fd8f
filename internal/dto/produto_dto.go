package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	Nome      string          `json:"nome"      validate:"required"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"     validate:"required"`
	Estoque   int             `json:"estoque"   validate:"min=0"`
}

// AtualizarProdutoRequest is a full-field replace (PUT semantics).
type AtualizarProdutoRequest struct {
	Nome      string          `json:"nome"      validate:"required"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"     validate:"required"`
	Estoque   int             `json:"estoque"   validate:"min=0"`
}

type ProdutoResponse struct {
	ID        uint            `json:"id"`
	Nome      string          `json:"nome"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
	Estoque   int             `json:"estoque"`
}
