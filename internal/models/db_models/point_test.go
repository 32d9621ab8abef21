package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growstory/pkg/utils"
)

func TestPointDebit(t *testing.T) {
	point := &Point{Score: 100}

	require.NoError(t, point.Debit(60))
	assert.Equal(t, 40, point.Score)

	err := point.Debit(50)
	require.ErrorIs(t, err, utils.ErrInsufficientPoints)
	assert.Equal(t, 40, point.Score, "failed debit must not touch the balance")
}

func TestPointDebitExactBalance(t *testing.T) {
	point := &Point{Score: 75}

	require.NoError(t, point.Debit(75))
	assert.Equal(t, 0, point.Score)
}

func TestPointCredit(t *testing.T) {
	point := &Point{Score: 10}

	point.Credit(25)
	assert.Equal(t, 35, point.Score)
}

func TestPointUpdateScoreOverwrites(t *testing.T) {
	point := &Point{Score: 10}

	point.UpdateScore(3)
	assert.Equal(t, 3, point.Score)
}

func TestPointUpdateAccountSyncsBothSides(t *testing.T) {
	account := &Account{}
	point := &Point{Score: 500}

	point.UpdateAccount(account)

	assert.Same(t, account, point.Account)
	assert.Same(t, point, account.Point)

	// calling again must leave state unchanged
	point.UpdateAccount(account)
	assert.Same(t, account, point.Account)
	assert.Same(t, point, account.Point)
}
