package dto

type CriarPetRequest struct {
	Nome   string `json:"nome"   validate:"required"`
	Tipo   string `json:"tipo"   validate:"required"`
	Raca   string `json:"raca"   validate:"required"`
	DonoID uint   `json:"donoId" validate:"required"`
}

type AtualizarPetRequest struct {
	Nome string `json:"nome" validate:"required"`
	Tipo string `json:"tipo" validate:"required"`
	Raca string `json:"raca" validate:"required"`
}

type PetResponse struct {
	ID     uint   `json:"id"`
	Nome   string `json:"nome"`
	Tipo   string `json:"tipo"`
	Raca   string `json:"raca"`
	DonoID uint   `json:"donoId"`
}
