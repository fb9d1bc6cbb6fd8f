package repository

import (
	"context"

	"petlovers/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	DeleteCascade(ctx context.Context, id uint) error

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row-level lock (SELECT … FOR UPDATE) so the
	// price read and the stock decrement are isolated from concurrent
	// registrations.
	FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Produto, error)
	DescontarEstoqueTx(tx *gorm.DB, id uint, quantidade int) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("id ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", id).Delete(&model.Consumo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Produto{}, id).Error
	})
}

func (r *produtoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) DescontarEstoqueTx(tx *gorm.DB, id uint, quantidade int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("estoque", gorm.Expr("estoque - ?", quantidade)).Error
}
