package db_models

import (
	"github.com/google/uuid"
)

type Comment struct {
	BaseModel
	Content string `gorm:"type:text;not null"`

	AccountID uuid.UUID `gorm:"type:uuid;index"`
	BoardID   uuid.UUID `gorm:"type:uuid;index"`
}
