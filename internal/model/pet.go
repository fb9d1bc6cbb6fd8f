package model

import "time"

// Pet pertence sempre a um Cliente (DonoID). Tipo é a espécie ("cachorro",
// "gato", …) e Raca a raça dentro da espécie — ambos texto livre, como no
// formulário de cadastro.
type Pet struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"not null"`
	Tipo      string `gorm:"not null"`
	Raca      string `gorm:"not null"`
	DonoID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Dono *Cliente `gorm:"foreignKey:DonoID"`
}

func (Pet) TableName() string { return "pets" }
