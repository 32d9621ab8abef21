package db_models

import (
	"github.com/google/uuid"
)

// PlantObj is a decorative object bought from the garden shop. It sits
// on the owner's garden grid and may be registered to one leaf.
type PlantObj struct {
	BaseModel
	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Account   *Account   `gorm:"foreignKey:AccountID"`

	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Product   Product   `gorm:"foreignKey:ProductID"`

	LeafID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Leaf   *Leaf      `gorm:"foreignKey:LeafID"`

	Location *Location `gorm:"foreignKey:PlantObjID"`
}

func (p *PlantObj) UpdateAccount(account *Account) {
	p.Account = account
	if account != nil {
		p.AccountID = &account.ID
	} else {
		p.AccountID = nil
	}
}

func (p *PlantObj) UpdateLeaf(leaf *Leaf) {
	p.Leaf = leaf
	if leaf != nil {
		p.LeafID = &leaf.ID
	} else {
		p.LeafID = nil
	}
}

func (p *PlantObj) UpdateLocation(location *Location) {
	p.Location = location
}

// Location is a garden grid coordinate for one plant object.
type Location struct {
	BaseModel
	X           int  `gorm:"not null"`
	Y           int  `gorm:"not null"`
	IsInstalled bool `gorm:"default:false"`

	PlantObjID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}

// Product is a purchasable plant-object template. Resale pays back half
// the purchase price.
type Product struct {
	BaseModel
	Name     string `gorm:"not null;size:50"`
	ImageURL string
	Price    int `gorm:"not null"`
}

func (p *Product) ResellPrice() int {
	return p.Price / 2
}
