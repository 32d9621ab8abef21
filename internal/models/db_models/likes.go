package db_models

import (
	"github.com/google/uuid"
)

// AccountLike records one account liking another. Both ends keep a
// collection: giving side and receiving side.
type AccountLike struct {
	BaseModel
	GivingAccountID    uuid.UUID `gorm:"type:uuid;index"`
	ReceivingAccountID uuid.UUID `gorm:"type:uuid;index"`
}

type BoardLike struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	BoardID   uuid.UUID `gorm:"type:uuid;index"`
}
