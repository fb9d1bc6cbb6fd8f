package service

import (
	"context"
	"fmt"

	"petlovers/internal/dto"
	"petlovers/internal/model"
	"petlovers/internal/repository"
)

// NotFoundError names the missing entity kind and id. Handlers map it to 404.
type NotFoundError struct {
	Recurso string
	ID      uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com id %d não encontrado(a)", e.Recurso, e.ID)
}

// ClienteService is a thin pass-through to persistence; the only business rule
// is that a new client is always registered together with its first pet.
type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Remover(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente := model.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Pets: []model.Pet{{
			Nome: req.Pet.Nome,
			Tipo: req.Pet.Tipo,
			Raca: req.Pet.Raca,
		}},
	}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(&cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Cliente", ID: id}
	}
	cliente.Nome = req.Nome
	cliente.Email = req.Email
	cliente.Telefone = req.Telefone
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Remover(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Recurso: "Cliente", ID: id}
	}
	return s.repo.DeleteCascade(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	pets := make([]dto.PetResponse, 0, len(c.Pets))
	for _, p := range c.Pets {
		pets = append(pets, dto.PetResponse{
			ID:     p.ID,
			Nome:   p.Nome,
			Tipo:   p.Tipo,
			Raca:   p.Raca,
			DonoID: p.DonoID,
		})
	}
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		Pets:     pets,
	}
}
