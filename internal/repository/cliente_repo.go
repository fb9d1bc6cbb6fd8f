package repository

import (
	"context"

	"petlovers/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ClienteRepository interface {
	// Create persists the client and any nested pets in one insert.
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error

	// DeleteCascade removes the client and everything that references it in
	// one transaction. Order matters for FK integrity:
	// consumos → pets → cliente.
	DeleteCascade(ctx context.Context, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Pets").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Preload("Pets").Order("id ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_id = ?", id).Delete(&model.Consumo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dono_id = ?", id).Delete(&model.Pet{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cliente{}, id).Error
	})
}
