package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto é um item de venda com estoque. O estoque é decrementado pelo
// registo de consumo e pode ficar negativo (semântica de encomenda em
// atraso — ver ConsumoService).
type Produto struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"index;not null"`
	Descricao *string
	Preco     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estoque   int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Produto) TableName() string { return "produtos" }
