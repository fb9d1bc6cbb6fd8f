package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumo é uma linha de compra atribuída a um cliente. Exatamente um de
// ProdutoID/ServicoID está preenchido — nunca os dois, nunca nenhum.
// PrecoTotal é um snapshot (preço unitário × quantidade no momento do
// registo); nunca é recalculado. Registos de consumo são insert-only:
// só desaparecem por cascata ao apagar cliente/pet/produto/serviço.
type Consumo struct {
	ID         uint            `gorm:"primaryKey"`
	ClienteID  uint            `gorm:"not null;index"`
	PetID      *uint           `gorm:"index"`
	ProdutoID  *uint           `gorm:"index"`
	ServicoID  *uint           `gorm:"index"`
	Quantidade int             `gorm:"not null"`
	PrecoTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
	Pet     *Pet     `gorm:"foreignKey:PetID"`
	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Servico *Servico `gorm:"foreignKey:ServicoID"`
}

func (Consumo) TableName() string { return "consumos" }
