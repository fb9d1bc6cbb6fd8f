package infra

import (
	"fmt"

	"petlovers/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the five entity tables. Foreign keys are declared on the models; cascade
// deletion order is enforced in the repositories (child consumos → pets →
// parent row) so the schema itself does not need ON DELETE CASCADE.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Pet{},
		&model.Produto{},
		&model.Servico{},
		&model.Consumo{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
