package db_models

import (
	"github.com/google/uuid"

	"growstory/pkg/utils"
)

// Point is the spendable balance of one account. Score never goes
// negative through Debit; UpdateScore is the raw overwrite for callers
// that have already validated the new value.
type Point struct {
	BaseModel
	Score     int       `gorm:"not null;default:0"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Account   *Account  `gorm:"foreignKey:AccountID"`
}

func (p *Point) UpdateScore(score int) {
	p.Score = score
}

// Debit fails without touching the balance when amount exceeds it.
func (p *Point) Debit(amount int) error {
	if amount > p.Score {
		return utils.ErrInsufficientPoints
	}
	p.Score -= amount
	return nil
}

func (p *Point) Credit(amount int) {
	p.Score += amount
}

// UpdateAccount mirrors Account.UpdatePoint from the other side.
func (p *Point) UpdateAccount(account *Account) {
	p.Account = account
	if account != nil {
		p.AccountID = account.ID
		if account.Point != p {
			account.UpdatePoint(p)
		}
	}
}
