package repository

import (
	"context"

	"petlovers/internal/model"

	"gorm.io/gorm"
)

type ServicoRepository interface {
	Create(ctx context.Context, s *model.Servico) error
	FindByID(ctx context.Context, id uint) (*model.Servico, error)
	List(ctx context.Context) ([]model.Servico, error)
	Update(ctx context.Context, s *model.Servico) error
	DeleteCascade(ctx context.Context, id uint) error

	// FindByIDTx reads inside an open transaction (consumption workflow).
	FindByIDTx(tx *gorm.DB, id uint) (*model.Servico, error)
}

type servicoRepo struct{ db *gorm.DB }

func NewServicoRepository(db *gorm.DB) ServicoRepository { return &servicoRepo{db: db} }

func (r *servicoRepo) Create(ctx context.Context, s *model.Servico) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicoRepo) FindByID(ctx context.Context, id uint) (*model.Servico, error) {
	var s model.Servico
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicoRepo) List(ctx context.Context) ([]model.Servico, error) {
	var servicos []model.Servico
	err := r.db.WithContext(ctx).Order("id ASC").Find(&servicos).Error
	return servicos, err
}

func (r *servicoRepo) Update(ctx context.Context, s *model.Servico) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicoRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("servico_id = ?", id).Delete(&model.Consumo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Servico{}, id).Error
	})
}

func (r *servicoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Servico, error) {
	var s model.Servico
	err := tx.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
