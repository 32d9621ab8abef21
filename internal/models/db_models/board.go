package db_models

import (
	"github.com/google/uuid"
)

// Board is a community post.
type Board struct {
	BaseModel
	Title    string `gorm:"not null;size:100"`
	Content  string `gorm:"type:text"`
	ImageURL string

	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Comments []Comment   `gorm:"foreignKey:BoardID"`
	Likes    []BoardLike `gorm:"foreignKey:BoardID"`
}

func (b *Board) AddComment(comment Comment) {
	b.Comments = append(b.Comments, comment)
}
