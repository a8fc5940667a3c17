package repo

import (
	"context"

	"gorm.io/gorm"
)

type HealthStore interface {
	Ping(ctx context.Context) error
}

type HealthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthStore {
	return &HealthRepository{db: db}
}

// Ping 执行一次 SELECT 1 验证数据库连通
func (r *HealthRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}
