package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servico é um item de venda sem conceito de estoque (banho, tosa, consulta…).
type Servico struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"index;not null"`
	Descricao *string
	Preco     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Servico) TableName() string { return "servicos" }
