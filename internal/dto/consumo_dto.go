package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemConsumoRequest is one purchase line: a tagged product-or-service
// reference with a quantity. PetID is optional — when set, the consumption is
// attributed to that pet and shows up in the per-pet report.
type ItemConsumoRequest struct {
	Tipo       string `json:"tipo"       validate:"required,oneof=produto servico"`
	ID         uint   `json:"id"         validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	PetID      *uint  `json:"petId"      validate:"omitempty,min=1"`
}

type RegistrarConsumoRequest struct {
	ClienteID uint                 `json:"clienteId" validate:"required"`
	Items     []ItemConsumoRequest `json:"items"     validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MensagemResponse struct {
	Message string `json:"message"`
}
