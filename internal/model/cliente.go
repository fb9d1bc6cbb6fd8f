package model

import "time"

// Cliente é o dono de um ou mais pets e o titular dos consumos registados.
type Cliente struct {
	ID        uint    `gorm:"primaryKey"`
	Nome      string  `gorm:"not null"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Telefone  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Pets []Pet `gorm:"foreignKey:DonoID"`
}

// TableName overrides GORM's pluralization for the Portuguese name.
func (Cliente) TableName() string { return "clientes" }
