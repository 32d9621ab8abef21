package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growstory/internal/models/db_models"
)

type PointHistoryRepository interface {
	Insert(ctx context.Context, history *db_models.PointHistory) error
	FindByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.PointHistory, error)
}

type pointHistoryRepository struct {
	db *gorm.DB
}

func NewPointHistoryRepository(db *gorm.DB) PointHistoryRepository {
	return &pointHistoryRepository{
		db: db,
	}
}

func (p *pointHistoryRepository) Insert(ctx context.Context, history *db_models.PointHistory) error {
	return p.db.WithContext(ctx).Create(history).Error
}

func (p *pointHistoryRepository) FindByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.PointHistory, error) {
	var histories []db_models.PointHistory
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
