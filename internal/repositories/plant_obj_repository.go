package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growstory/internal/models/db_models"
)

type PlantObjRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PlantObj, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PlantObj, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	ListProducts(ctx context.Context) ([]db_models.Product, error)
	Save(ctx context.Context, plantObj *db_models.PlantObj) error
	Delete(ctx context.Context, plantObj *db_models.PlantObj) error
}

type plantObjRepository struct {
	db *gorm.DB
}

func NewPlantObjRepository(db *gorm.DB) PlantObjRepository {
	return &plantObjRepository{
		db: db,
	}
}

func (p *plantObjRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PlantObj, error) {
	var plantObj db_models.PlantObj
	err := p.db.WithContext(ctx).
		Preload("Product").
		Preload("Location").
		First(&plantObj, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plantObj, nil
}

func (p *plantObjRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PlantObj, error) {
	var plantObjs []db_models.PlantObj
	err := p.db.WithContext(ctx).
		Preload("Product").
		Preload("Location").
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&plantObjs).Error
	if err != nil {
		return nil, err
	}
	return plantObjs, nil
}

func (p *plantObjRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (p *plantObjRepository) ListProducts(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).Order("price ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *plantObjRepository) Save(ctx context.Context, plantObj *db_models.PlantObj) error {
	return p.db.WithContext(ctx).Save(plantObj).Error
}

func (p *plantObjRepository) Delete(ctx context.Context, plantObj *db_models.PlantObj) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_obj_id = ?", plantObj.ID).Delete(&db_models.Location{}).Error; err != nil {
			return err
		}
		return tx.Delete(plantObj).Error
	})
}
