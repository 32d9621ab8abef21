package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growstory/internal/models/db_models"
)

type LeafRepository interface {
	InsertTx(ctx context.Context, leaf *db_models.Leaf) error
	Save(ctx context.Context, leaf *db_models.Leaf) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Leaf, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Leaf, error)
	InsertJournal(ctx context.Context, journal *db_models.Journal) error
	Delete(ctx context.Context, leaf *db_models.Leaf) error
}

type leafRepository struct {
	db *gorm.DB
}

func NewLeafRepository(db *gorm.DB) LeafRepository {
	return &leafRepository{
		db: db,
	}
}

func (l *leafRepository) InsertTx(ctx context.Context, leaf *db_models.Leaf) error {
	return l.db.WithContext(ctx).Create(leaf).Error
}

func (l *leafRepository) Save(ctx context.Context, leaf *db_models.Leaf) error {
	return l.db.WithContext(ctx).Save(leaf).Error
}

func (l *leafRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Leaf, error) {
	var leaf db_models.Leaf
	err := l.db.WithContext(ctx).
		Preload("Journals").
		Preload("PlantObj").
		First(&leaf, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &leaf, nil
}

func (l *leafRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Leaf, error) {
	var leaves []db_models.Leaf
	err := l.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (l *leafRepository) InsertJournal(ctx context.Context, journal *db_models.Journal) error {
	return l.db.WithContext(ctx).Create(journal).Error
}

// Delete removes the leaf and its journals; a linked plant object is
// unlinked, not deleted.
func (l *leafRepository) Delete(ctx context.Context, leaf *db_models.Leaf) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("leaf_id = ?", leaf.ID).Delete(&db_models.Journal{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&db_models.PlantObj{}).
			Where("leaf_id = ?", leaf.ID).
			Update("leaf_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(leaf).Error
	})
}
