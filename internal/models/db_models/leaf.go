package db_models

import (
	"github.com/google/uuid"
)

// Leaf is a growth record the user keeps for one plant. Leaves outlive
// their account (the owner reference is nulled on account deletion
// instead of cascading).
type Leaf struct {
	BaseModel
	LeafName     string `gorm:"not null;size:50"`
	Content      string `gorm:"type:text"`
	LeafImageURL string

	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Account   *Account   `gorm:"foreignKey:AccountID"`

	PlantObj *PlantObj `gorm:"foreignKey:LeafID"`
	Journals []Journal `gorm:"foreignKey:LeafID"`
}

// UpdatePlantObj links the one-to-one pair; the guarded call-back fixes
// the other side exactly once.
func (l *Leaf) UpdatePlantObj(plantObj *PlantObj) {
	l.PlantObj = plantObj
	if plantObj != nil && plantObj.Leaf != l {
		plantObj.UpdateLeaf(l)
	}
}

func (l *Leaf) RemovePlantObj() {
	if l.PlantObj != nil {
		l.PlantObj.Leaf = nil
		l.PlantObj.LeafID = nil
	}
	l.PlantObj = nil
}

func (l *Leaf) AddJournal(journal Journal) {
	l.Journals = append(l.Journals, journal)
}
