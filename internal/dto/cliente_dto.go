package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PetEmbutido is the nested pet created together with a new client.
type PetEmbutido struct {
	Nome string `json:"nome" validate:"required"`
	Tipo string `json:"tipo" validate:"required"`
	Raca string `json:"raca" validate:"required"`
}

type CriarClienteRequest struct {
	Nome     string      `json:"nome"     validate:"required"`
	Email    string      `json:"email"    validate:"required,email"`
	Telefone *string     `json:"telefone"`
	Pet      PetEmbutido `json:"pet"      validate:"required"`
}

type AtualizarClienteRequest struct {
	Nome     string  `json:"nome"  validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Telefone *string `json:"telefone"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID       uint          `json:"id"`
	Nome     string        `json:"nome"`
	Email    string        `json:"email"`
	Telefone *string       `json:"telefone"`
	Pets     []PetResponse `json:"pets"`
}
