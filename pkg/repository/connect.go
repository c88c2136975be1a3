package repository

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/Weinkeller/configs"
	"droscher.com/Weinkeller/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
	dirMode     = 0o755
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	if dir := filepath.Dir(conf.DB.Path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, err
		}
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(sqlite.Open(conf.DB.Path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

// Migrate creates the schema idempotently. Both serve and migrate run it,
// so a fresh database is usable without a separate init step.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(
		&model.GrapeTag{}, &model.WineTypeTag{}, &model.CountryTag{}, &model.RegionTag{},
		&model.OccasionTag{}, &model.FoodPairingTag{},
		&model.Producer{}, &model.Wine{},
		&model.InventoryEvent{}, &model.Assessment{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}
