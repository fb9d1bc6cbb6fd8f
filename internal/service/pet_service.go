package service

import (
	"context"

	"petlovers/internal/dto"
	"petlovers/internal/model"
	"petlovers/internal/repository"
)

type PetService interface {
	Criar(ctx context.Context, req dto.CriarPetRequest) (*dto.PetResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarPetRequest) (*dto.PetResponse, error)
	Remover(ctx context.Context, id uint) error
}

type petService struct {
	repo        repository.PetRepository
	clienteRepo repository.ClienteRepository
}

func NewPetService(repo repository.PetRepository, clienteRepo repository.ClienteRepository) PetService {
	return &petService{repo: repo, clienteRepo: clienteRepo}
}

func (s *petService) Criar(ctx context.Context, req dto.CriarPetRequest) (*dto.PetResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.DonoID); err != nil {
		return nil, &NotFoundError{Recurso: "Cliente", ID: req.DonoID}
	}
	pet := model.Pet{
		Nome:   req.Nome,
		Tipo:   req.Tipo,
		Raca:   req.Raca,
		DonoID: req.DonoID,
	}
	if err := s.repo.Create(ctx, &pet); err != nil {
		return nil, err
	}
	return petToResponse(&pet), nil
}

func (s *petService) Atualizar(ctx context.Context, id uint, req dto.AtualizarPetRequest) (*dto.PetResponse, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Pet", ID: id}
	}
	pet.Nome = req.Nome
	pet.Tipo = req.Tipo
	pet.Raca = req.Raca
	if err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return petToResponse(pet), nil
}

func (s *petService) Remover(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Recurso: "Pet", ID: id}
	}
	return s.repo.DeleteCascade(ctx, id)
}

func petToResponse(p *model.Pet) *dto.PetResponse {
	return &dto.PetResponse{
		ID:     p.ID,
		Nome:   p.Nome,
		Tipo:   p.Tipo,
		Raca:   p.Raca,
		DonoID: p.DonoID,
	}
}
