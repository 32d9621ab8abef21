package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"growstory/internal/models/db_models"
	"growstory/internal/repositories"
)

const (
	defaultSignupPoint     = 500
	defaultAttendanceBonus = 10
)

// PointServiceInterface is the ledger factory plus the audit trail.
type PointServiceInterface interface {
	CreatePoint() *db_models.Point
	AttendanceBonus() int
	RecordHistory(ctx context.Context, accountID uuid.UUID, eventType db_models.PointEventType, amount int, balance int, metadata map[string]interface{}) error
}

type PointService struct {
	historyRepo repositories.PointHistoryRepository
}

func NewPointService(historyRepo repositories.PointHistoryRepository) PointServiceInterface {
	return &PointService{
		historyRepo: historyRepo,
	}
}

// CreatePoint returns a fresh ledger holding the signup balance.
func (p *PointService) CreatePoint() *db_models.Point {
	return &db_models.Point{
		Score: envInt("SIGNUP_POINT", defaultSignupPoint),
	}
}

func (p *PointService) AttendanceBonus() int {
	return envInt("ATTENDANCE_BONUS_POINT", defaultAttendanceBonus)
}

func (p *PointService) RecordHistory(ctx context.Context, accountID uuid.UUID, eventType db_models.PointEventType, amount int, balance int, metadata map[string]interface{}) error {
	history := &db_models.PointHistory{
		AccountID: accountID,
		EventType: eventType,
		Amount:    amount,
		Balance:   balance,
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("Failed to encode point history metadata: %v", err)
		} else {
			history.Metadata = datatypes.JSON(raw)
		}
	}

	return p.historyRepo.Insert(ctx, history)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}
