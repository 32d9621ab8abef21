package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PointEventType string

const (
	PointEventSignup     PointEventType = "signup"
	PointEventBuy        PointEventType = "buy"
	PointEventResell     PointEventType = "resell"
	PointEventAttendance PointEventType = "attendance"
)

// PointHistory is the append-only audit trail of ledger mutations.
// Amount is signed: debits are negative.
type PointHistory struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"type:uuid;index"`
	EventType PointEventType `gorm:"size:20;index"`
	Amount    int            `gorm:"not null"`
	Balance   int            `gorm:"not null"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
