package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growstory/internal/models/db_models"
)

type fakePointHistoryRepo struct {
	inserted []*db_models.PointHistory
}

func (f *fakePointHistoryRepo) Insert(ctx context.Context, history *db_models.PointHistory) error {
	f.inserted = append(f.inserted, history)
	return nil
}

func (f *fakePointHistoryRepo) FindByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.PointHistory, error) {
	var histories []db_models.PointHistory
	for _, h := range f.inserted {
		if h.AccountID == accountID {
			histories = append(histories, *h)
		}
	}
	return histories, nil
}

func TestCreatePointDefaultScore(t *testing.T) {
	svc := NewPointService(&fakePointHistoryRepo{})

	point := svc.CreatePoint()
	assert.Equal(t, defaultSignupPoint, point.Score)
	assert.Nil(t, point.Account)
}

func TestCreatePointScoreFromEnv(t *testing.T) {
	t.Setenv("SIGNUP_POINT", "120")

	svc := NewPointService(&fakePointHistoryRepo{})
	assert.Equal(t, 120, svc.CreatePoint().Score)
}

func TestCreatePointBadEnvFallsBack(t *testing.T) {
	t.Setenv("SIGNUP_POINT", "plenty")

	svc := NewPointService(&fakePointHistoryRepo{})
	assert.Equal(t, defaultSignupPoint, svc.CreatePoint().Score)
}

func TestRecordHistory(t *testing.T) {
	repo := &fakePointHistoryRepo{}
	svc := NewPointService(repo)

	accountID := uuid.New()
	err := svc.RecordHistory(context.Background(), accountID, db_models.PointEventBuy, -60, 40, map[string]interface{}{
		"product_id": "p-1",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	history := repo.inserted[0]
	assert.Equal(t, db_models.PointEventBuy, history.EventType)
	assert.Equal(t, -60, history.Amount)
	assert.Equal(t, 40, history.Balance)
	assert.JSONEq(t, `{"product_id":"p-1"}`, string(history.Metadata))
}
