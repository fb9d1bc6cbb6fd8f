package service

import (
	"context"

	"petlovers/internal/dto"
	"petlovers/internal/model"
	"petlovers/internal/repository"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto := model.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Estoque:   req.Estoque,
	}
	if err := s.repo.Create(ctx, &produto); err != nil {
		return nil, err
	}
	return produtoToResponse(&produto), nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		resp = append(resp, *produtoToResponse(&produtos[i]))
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Produto", ID: id}
	}
	produto.Nome = req.Nome
	produto.Descricao = req.Descricao
	produto.Preco = req.Preco
	produto.Estoque = req.Estoque
	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, err
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Remover(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Recurso: "Produto", ID: id}
	}
	return s.repo.DeleteCascade(ctx, id)
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Descricao: p.Descricao,
		Preco:     p.Preco,
		Estoque:   p.Estoque,
	}
}
