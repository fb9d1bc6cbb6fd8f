package repository

import (
	"context"

	"petlovers/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Aggregate rows scanned straight out of GROUP BY queries. Name resolution
// (joining in cliente/produto/servico names) happens in the service layer so
// it can fall back to a sentinel for dangling ids.

type TotalPorCliente struct {
	ClienteID uint
	Total     int64
}

type ValorPorCliente struct {
	ClienteID uint
	Total     decimal.Decimal
}

type TotalPorItem struct {
	ItemID uint
	Total  int64
}

// RelatorioRepository runs the read-only aggregations behind the four reports.
type RelatorioRepository interface {
	SomarQuantidadePorCliente(ctx context.Context, limit int) ([]TotalPorCliente, error)
	SomarValorPorCliente(ctx context.Context, limit int) ([]ValorPorCliente, error)
	SomarQuantidadePorProduto(ctx context.Context) ([]TotalPorItem, error)
	SomarQuantidadePorServico(ctx context.Context) ([]TotalPorItem, error)

	// ListarComPet returns every consumption record attributed to a pet, with
	// pet and item associations preloaded, for the per-pet cross-tabulation.
	ListarComPet(ctx context.Context) ([]model.Consumo, error)
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository { return &relatorioRepo{db: db} }

func (r *relatorioRepo) SomarQuantidadePorCliente(ctx context.Context, limit int) ([]TotalPorCliente, error) {
	var rows []TotalPorCliente
	err := r.db.WithContext(ctx).Model(&model.Consumo{}).
		Select("cliente_id, SUM(quantidade) AS total").
		Group("cliente_id").
		Order("total DESC, cliente_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) SomarValorPorCliente(ctx context.Context, limit int) ([]ValorPorCliente, error) {
	var rows []ValorPorCliente
	err := r.db.WithContext(ctx).Model(&model.Consumo{}).
		Select("cliente_id, SUM(preco_total) AS total").
		Group("cliente_id").
		Order("total DESC, cliente_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) SomarQuantidadePorProduto(ctx context.Context) ([]TotalPorItem, error) {
	var rows []TotalPorItem
	err := r.db.WithContext(ctx).Model(&model.Consumo{}).
		Select("produto_id AS item_id, SUM(quantidade) AS total").
		Where("produto_id IS NOT NULL").
		Group("produto_id").
		Order("total DESC, produto_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) SomarQuantidadePorServico(ctx context.Context) ([]TotalPorItem, error) {
	var rows []TotalPorItem
	err := r.db.WithContext(ctx).Model(&model.Consumo{}).
		Select("servico_id AS item_id, SUM(quantidade) AS total").
		Where("servico_id IS NOT NULL").
		Group("servico_id").
		Order("total DESC, servico_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) ListarComPet(ctx context.Context) ([]model.Consumo, error) {
	var consumos []model.Consumo
	err := r.db.WithContext(ctx).
		Preload("Pet").Preload("Produto").Preload("Servico").
		Where("pet_id IS NOT NULL").
		Order("id ASC").
		Find(&consumos).Error
	return consumos, err
}
