package repository

import (
	"context"

	"petlovers/internal/model"

	"gorm.io/gorm"
)

type PetRepository interface {
	Create(ctx context.Context, p *model.Pet) error
	FindByID(ctx context.Context, id uint) (*model.Pet, error)
	Update(ctx context.Context, p *model.Pet) error

	// DeleteCascade removes the pet's consumption records before the pet
	// itself, in one transaction.
	DeleteCascade(ctx context.Context, id uint) error
}

type petRepo struct{ db *gorm.DB }

func NewPetRepository(db *gorm.DB) PetRepository { return &petRepo{db: db} }

func (r *petRepo) Create(ctx context.Context, p *model.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *petRepo) FindByID(ctx context.Context, id uint) (*model.Pet, error) {
	var p model.Pet
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *petRepo) Update(ctx context.Context, p *model.Pet) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *petRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", id).Delete(&model.Consumo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pet{}, id).Error
	})
}
