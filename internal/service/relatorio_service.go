package service

import (
	"context"
	"encoding/json"
	"time"

	"petlovers/internal/dto"
	"petlovers/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache keys for the four reports. The worker refreshes these after every
// registration; reads fall through to SQL on a miss.
const (
	cacheKeyClientesQuantidade = "relatorios:top-clientes-quantidade"
	cacheKeyClientesValor      = "relatorios:top-clientes-valor"
	cacheKeyItensConsumidos    = "relatorios:top-itens-consumidos"
	cacheKeyItensPorPet        = "relatorios:top-itens-por-pet"
)

// nomeDesconhecido is reported when an aggregate row points at an id with no
// matching row — should not occur under referential integrity.
const nomeDesconhecido = "Desconhecido"

// RelatorioService produces the four read-only aggregate reports.
type RelatorioService interface {
	TopClientesPorQuantidade(ctx context.Context) ([]dto.TopClienteQuantidade, error)
	TopClientesPorValor(ctx context.Context) ([]dto.TopClienteValor, error)
	TopItensConsumidos(ctx context.Context) (*dto.TopItensResponse, error)
	TopItensPorPet(ctx context.Context) (dto.TopItensPorPet, error)

	// AtualizarCache recomputes all four reports and stores them in redis.
	// Invoked by the worker pool after consumption registrations.
	AtualizarCache(ctx context.Context) error
}

type relatorioService struct {
	repo        repository.RelatorioRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	servicoRepo repository.ServicoRepository
	rdb         *redis.Client
	ttl         time.Duration
}

func NewRelatorioService(
	repo repository.RelatorioRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	servicoRepo repository.ServicoRepository,
	rdb *redis.Client,
	ttl time.Duration,
) RelatorioService {
	return &relatorioService{
		repo:        repo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		servicoRepo: servicoRepo,
		rdb:         rdb,
		ttl:         ttl,
	}
}

// ── Cache helpers ─────────────────────────────────────────────────────────────
// Cache failures degrade to direct SQL queries, never to request failures.

func (s *relatorioService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("discarding corrupt report cache entry")
		return false
	}
	return true
}

func (s *relatorioService) toCache(ctx context.Context, key string, v interface{}) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("failed to cache report")
	}
}

// ── Reports ───────────────────────────────────────────────────────────────────

func (s *relatorioService) TopClientesPorQuantidade(ctx context.Context) ([]dto.TopClienteQuantidade, error) {
	var cached []dto.TopClienteQuantidade
	if s.fromCache(ctx, cacheKeyClientesQuantidade, &cached) {
		return cached, nil
	}
	resp, err := s.computeClientesPorQuantidade(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyClientesQuantidade, resp)
	return resp, nil
}

func (s *relatorioService) computeClientesPorQuantidade(ctx context.Context) ([]dto.TopClienteQuantidade, error) {
	rows, err := s.repo.SomarQuantidadePorCliente(ctx, 10)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TopClienteQuantidade, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.TopClienteQuantidade{
			ClienteID:       row.ClienteID,
			ClienteNome:     s.nomeCliente(ctx, row.ClienteID),
			TotalQuantidade: int(row.Total),
		})
	}
	return resp, nil
}

func (s *relatorioService) TopClientesPorValor(ctx context.Context) ([]dto.TopClienteValor, error) {
	var cached []dto.TopClienteValor
	if s.fromCache(ctx, cacheKeyClientesValor, &cached) {
		return cached, nil
	}
	resp, err := s.computeClientesPorValor(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyClientesValor, resp)
	return resp, nil
}

func (s *relatorioService) computeClientesPorValor(ctx context.Context) ([]dto.TopClienteValor, error) {
	rows, err := s.repo.SomarValorPorCliente(ctx, 5)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TopClienteValor, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.TopClienteValor{
			ClienteID:   row.ClienteID,
			ClienteNome: s.nomeCliente(ctx, row.ClienteID),
			TotalValor:  row.Total,
		})
	}
	return resp, nil
}

func (s *relatorioService) TopItensConsumidos(ctx context.Context) (*dto.TopItensResponse, error) {
	var cached dto.TopItensResponse
	if s.fromCache(ctx, cacheKeyItensConsumidos, &cached) {
		return &cached, nil
	}
	resp, err := s.computeItensConsumidos(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyItensConsumidos, resp)
	return resp, nil
}

func (s *relatorioService) computeItensConsumidos(ctx context.Context) (*dto.TopItensResponse, error) {
	porProduto, err := s.repo.SomarQuantidadePorProduto(ctx)
	if err != nil {
		return nil, err
	}
	porServico, err := s.repo.SomarQuantidadePorServico(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.TopItensResponse{
		Produtos: make([]dto.ItemRanking, 0, len(porProduto)),
		Servicos: make([]dto.ItemRanking, 0, len(porServico)),
	}
	for _, row := range porProduto {
		nome := nomeDesconhecido
		if p, err := s.produtoRepo.FindByID(ctx, row.ItemID); err == nil {
			nome = p.Nome
		}
		resp.Produtos = append(resp.Produtos, dto.ItemRanking{Nome: nome, Quantidade: int(row.Total)})
	}
	for _, row := range porServico {
		nome := nomeDesconhecido
		if sv, err := s.servicoRepo.FindByID(ctx, row.ItemID); err == nil {
			nome = sv.Nome
		}
		resp.Servicos = append(resp.Servicos, dto.ItemRanking{Nome: nome, Quantidade: int(row.Total)})
	}
	return resp, nil
}

func (s *relatorioService) TopItensPorPet(ctx context.Context) (dto.TopItensPorPet, error) {
	var cached dto.TopItensPorPet
	if s.fromCache(ctx, cacheKeyItensPorPet, &cached) {
		return cached, nil
	}
	resp, err := s.computeItensPorPet(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyItensPorPet, resp)
	return resp, nil
}

// computeItensPorPet cross-tabulates consumption by (pet type, breed):
// records without a pet are excluded entirely.
func (s *relatorioService) computeItensPorPet(ctx context.Context) (dto.TopItensPorPet, error) {
	consumos, err := s.repo.ListarComPet(ctx)
	if err != nil {
		return nil, err
	}

	resp := make(dto.TopItensPorPet)
	for _, c := range consumos {
		if c.Pet == nil {
			continue
		}
		chave := c.Pet.Tipo + " - " + c.Pet.Raca

		nome := nomeDesconhecido
		switch {
		case c.Produto != nil:
			nome = c.Produto.Nome
		case c.Servico != nil:
			nome = c.Servico.Nome
		}

		if resp[chave] == nil {
			resp[chave] = make(map[string]int)
		}
		resp[chave][nome] += c.Quantidade
	}
	return resp, nil
}

func (s *relatorioService) nomeCliente(ctx context.Context, id uint) string {
	c, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		return nomeDesconhecido
	}
	return c.Nome
}

// AtualizarCache recomputes every report and rewrites the cache entries.
func (s *relatorioService) AtualizarCache(ctx context.Context) error {
	porQuantidade, err := s.computeClientesPorQuantidade(ctx)
	if err != nil {
		return err
	}
	porValor, err := s.computeClientesPorValor(ctx)
	if err != nil {
		return err
	}
	itens, err := s.computeItensConsumidos(ctx)
	if err != nil {
		return err
	}
	porPet, err := s.computeItensPorPet(ctx)
	if err != nil {
		return err
	}

	s.toCache(ctx, cacheKeyClientesQuantidade, porQuantidade)
	s.toCache(ctx, cacheKeyClientesValor, porValor)
	s.toCache(ctx, cacheKeyItensConsumidos, itens)
	s.toCache(ctx, cacheKeyItensPorPet, porPet)
	return nil
}
