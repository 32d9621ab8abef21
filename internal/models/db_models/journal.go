package db_models

import (
	"github.com/google/uuid"
)

// Journal is one dated entry inside a leaf's growth diary.
type Journal struct {
	BaseModel
	Title    string `gorm:"not null;size:100"`
	Content  string `gorm:"type:text"`
	ImageURL string

	LeafID uuid.UUID `gorm:"type:uuid;index"`
}
