package service

import (
	"context"

	"petlovers/internal/dto"
	"petlovers/internal/model"
	"petlovers/internal/repository"
)

type ServicoService interface {
	Criar(ctx context.Context, req dto.CriarServicoRequest) (*dto.ServicoResponse, error)
	Listar(ctx context.Context) ([]dto.ServicoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarServicoRequest) (*dto.ServicoResponse, error)
	Remover(ctx context.Context, id uint) error
}

type servicoService struct {
	repo repository.ServicoRepository
}

func NewServicoService(repo repository.ServicoRepository) ServicoService {
	return &servicoService{repo: repo}
}

func (s *servicoService) Criar(ctx context.Context, req dto.CriarServicoRequest) (*dto.ServicoResponse, error) {
	servico := model.Servico{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
	}
	if err := s.repo.Create(ctx, &servico); err != nil {
		return nil, err
	}
	return servicoToResponse(&servico), nil
}

func (s *servicoService) Listar(ctx context.Context) ([]dto.ServicoResponse, error) {
	servicos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServicoResponse, 0, len(servicos))
	for i := range servicos {
		resp = append(resp, *servicoToResponse(&servicos[i]))
	}
	return resp, nil
}

func (s *servicoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarServicoRequest) (*dto.ServicoResponse, error) {
	servico, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Serviço", ID: id}
	}
	servico.Nome = req.Nome
	servico.Descricao = req.Descricao
	servico.Preco = req.Preco
	if err := s.repo.Update(ctx, servico); err != nil {
		return nil, err
	}
	return servicoToResponse(servico), nil
}

func (s *servicoService) Remover(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Recurso: "Serviço", ID: id}
	}
	return s.repo.DeleteCascade(ctx, id)
}

func servicoToResponse(s *model.Servico) *dto.ServicoResponse {
	return &dto.ServicoResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		Descricao: s.Descricao,
		Preco:     s.Preco,
	}
}
