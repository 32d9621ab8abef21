package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growstory/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(ctx context.Context, account *db_models.Account) error
	Save(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByIDWithPoint(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Delete(ctx context.Context, account *db_models.Account) error
}

// relationPolicy declares what happens to each owned collection when the
// account is deleted. Leaves are the single orphan-only relation: their
// content is retained with the owner reference cleared.
type relationPolicy int

const (
	policyCascade relationPolicy = iota
	policyOrphan
)

var accountDeletePolicies = []struct {
	model  interface{}
	column string
	policy relationPolicy
}{
	{&db_models.Board{}, "account_id", policyCascade},
	{&db_models.Comment{}, "account_id", policyCascade},
	{&db_models.AccountLike{}, "giving_account_id", policyCascade},
	{&db_models.AccountLike{}, "receiving_account_id", policyCascade},
	{&db_models.BoardLike{}, "account_id", policyCascade},
	{&db_models.PlantObj{}, "account_id", policyCascade},
	{&db_models.Point{}, "account_id", policyCascade},
	{&db_models.PointHistory{}, "account_id", policyCascade},
	{&db_models.Leaf{}, "account_id", policyOrphan},
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Save(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByIDWithPoint(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Preload("Point").First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if account.Point != nil {
		account.Point.Account = &account
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// Delete applies the per-relation policy table inside one transaction,
// then removes the account row itself.
func (a *accountRepository) Delete(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rel := range accountDeletePolicies {
			switch rel.policy {
			case policyCascade:
				if err := tx.Where(rel.column+" = ?", account.ID).Delete(rel.model).Error; err != nil {
					return err
				}
			case policyOrphan:
				if err := tx.Model(rel.model).
					Where(rel.column+" = ?", account.ID).
					Update(rel.column, nil).Error; err != nil {
					return err
				}
			}
		}

		return tx.Delete(account).Error
	})
}
