package db_models

import (
	"github.com/lib/pq"
)

type AccountGrade string

const (
	GradeBronze AccountGrade = "GRADE_BRONZE"
	GradeSilver AccountGrade = "GRADE_SILVER"
	GradeGold   AccountGrade = "GRADE_GOLD"
)

type AccountStatus string

const (
	StatusUser  AccountStatus = "USER"
	StatusAdmin AccountStatus = "ADMIN"
)

// Account is the aggregate root. It owns every community record the
// user produces plus exactly one Point ledger; the Update*/Add* helpers
// keep both sides of each bidirectional association consistent.
type Account struct {
	BaseModel
	Email           string `gorm:"uniqueIndex;size:50;not null"`
	DisplayName     string `gorm:"size:50;not null"`
	PasswordHash    string `gorm:"size:100;not null"`
	ProfileImageURL string

	Roles      pq.StringArray `gorm:"type:text[]"`
	Grade      AccountGrade   `gorm:"size:20;default:GRADE_BRONZE"`
	Status     AccountStatus  `gorm:"size:20;default:USER"`
	Attendance bool           `gorm:"default:false"`

	Boards                []Board       `gorm:"foreignKey:AccountID"`
	Leaves                []Leaf        `gorm:"foreignKey:AccountID"`
	GivingAccountLikes    []AccountLike `gorm:"foreignKey:GivingAccountID"`
	ReceivingAccountLikes []AccountLike `gorm:"foreignKey:ReceivingAccountID"`
	BoardLikes            []BoardLike   `gorm:"foreignKey:AccountID"`
	Comments              []Comment     `gorm:"foreignKey:AccountID"`
	PlantObjs             []*PlantObj   `gorm:"foreignKey:AccountID"`
	Point                 *Point        `gorm:"foreignKey:AccountID"`
}

func (a *Account) AddLeaf(leaf Leaf) {
	a.Leaves = append(a.Leaves, leaf)
}

func (a *Account) AddGivingAccountLike(like AccountLike) {
	a.GivingAccountLikes = append(a.GivingAccountLikes, like)
}

func (a *Account) AddReceivingAccountLike(like AccountLike) {
	a.ReceivingAccountLikes = append(a.ReceivingAccountLikes, like)
}

func (a *Account) AddBoardLike(like BoardLike) {
	a.BoardLikes = append(a.BoardLikes, like)
}

func (a *Account) UpdateGrade(grade AccountGrade) {
	a.Grade = grade
}

func (a *Account) UpdateAttendance(attendance bool) {
	a.Attendance = attendance
}

// UpdatePoint sets the ledger and fixes the back-reference when it does
// not already point here. The single guarded call-back keeps the pair
// consistent without recursing.
func (a *Account) UpdatePoint(point *Point) {
	a.Point = point
	if point != nil && point.Account != a {
		point.UpdateAccount(a)
	}
}

func (a *Account) AddPlantObj(plantObj *PlantObj) {
	for _, po := range a.PlantObjs {
		if po == plantObj {
			return
		}
	}
	a.PlantObjs = append(a.PlantObjs, plantObj)
	if plantObj.Account != a {
		plantObj.UpdateAccount(a)
	}
}

// RemovePlantObj detaches the object from the collection and clears its
// owner reference so neither side keeps a stale link.
func (a *Account) RemovePlantObj(plantObj *PlantObj) {
	for i, po := range a.PlantObjs {
		if po == plantObj {
			a.PlantObjs = append(a.PlantObjs[:i], a.PlantObjs[i+1:]...)
			break
		}
	}
	plantObj.UpdateAccount(nil)
}
