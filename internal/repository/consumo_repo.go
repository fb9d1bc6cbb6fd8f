package repository

import (
	"context"

	"petlovers/internal/model"

	"gorm.io/gorm"
)

type ConsumoRepository interface {
	// CreateTx inserts one consumption record inside an open transaction.
	CreateTx(tx *gorm.DB, c *model.Consumo) error
	List(ctx context.Context) ([]model.Consumo, error)

	// DB exposes the underlying *gorm.DB so the workflow service can open
	// the all-or-nothing registration transaction.
	DB() *gorm.DB
}

type consumoRepo struct{ db *gorm.DB }

func NewConsumoRepository(db *gorm.DB) ConsumoRepository { return &consumoRepo{db: db} }

func (r *consumoRepo) CreateTx(tx *gorm.DB, c *model.Consumo) error {
	return tx.Create(c).Error
}

func (r *consumoRepo) List(ctx context.Context) ([]model.Consumo, error) {
	var consumos []model.Consumo
	err := r.db.WithContext(ctx).Order("id ASC").Find(&consumos).Error
	return consumos, err
}

func (r *consumoRepo) DB() *gorm.DB { return r.db }
