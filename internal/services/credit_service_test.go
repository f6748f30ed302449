package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixa_backend/internal/models"
	"fixa_backend/pkg/apperrors"
)

func TestGetOrCreateBalance_Idempotent(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	first, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Balance)

	second, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, env.db.Model(&models.CreditBalance{}).
		Where("user_id = ?", worker.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPurchase(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	balance, err := env.credits.Purchase(worker.ID, 25, "starter pack")
	require.NoError(t, err)
	assert.Equal(t, 25, balance.Balance)
	assert.Equal(t, 25, balance.LifetimePurchased)
	assert.Equal(t, 0, balance.LifetimeSpent)

	txns, err := env.credits.Transactions(worker.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.CreditTxPurchase, txns[0].Type)
	assert.Equal(t, 25, txns[0].Amount)
}

func TestPurchase_RejectsNonPositive(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	_, err := env.credits.Purchase(worker.ID, 0, "")
	require.Error(t, err)
	_, err = env.credits.Purchase(worker.ID, -5, "")
	require.Error(t, err)
}

func TestDeduct(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)
	env.giveCredits(t, worker.ID, 10)

	jobID := "00000000-0000-0000-0000-000000000001"
	err := env.credits.Deduct(worker.ID, 4, CreditContext{JobID: &jobID, Description: "bid"})
	require.NoError(t, err)

	balance, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, balance.Balance)
	assert.Equal(t, 4, balance.LifetimeSpent)

	txns, err := env.credits.Transactions(worker.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	spend := txns[0]
	assert.Equal(t, models.CreditTxSpend, spend.Type)
	assert.Equal(t, -4, spend.Amount)
	require.NotNil(t, spend.JobID)
	assert.Equal(t, jobID, *spend.JobID)
}

func TestDeduct_Insufficient(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)
	env.giveCredits(t, worker.ID, 2)

	err := env.credits.Deduct(worker.ID, 5, CreditContext{Description: "bid"})
	require.ErrorIs(t, err, apperrors.ErrInsufficientCredits)

	// Nothing moved and no spend entry was written.
	balance, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.Balance)
	assert.Equal(t, 0, balance.LifetimeSpent)

	txns, err := env.credits.Transactions(worker.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.CreditTxPurchase, txns[0].Type)
}

func TestDeduct_SequentialOverspend(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)
	env.giveCredits(t, worker.ID, 3)

	require.NoError(t, env.credits.Deduct(worker.ID, 2, CreditContext{Description: "first"}))
	err := env.credits.Deduct(worker.ID, 2, CreditContext{Description: "second"})
	require.ErrorIs(t, err, apperrors.ErrInsufficientCredits)

	balance, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, balance.Balance)
}

func TestLedgerInvariant(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	_, err := env.credits.Purchase(worker.ID, 20, "")
	require.NoError(t, err)
	require.NoError(t, env.credits.Deduct(worker.ID, 5, CreditContext{Description: "a"}))
	require.NoError(t, env.credits.Deduct(worker.ID, 3, CreditContext{Description: "b"}))

	balance, err := env.credits.GetOrCreateBalance(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, balance.Balance)
	assert.Equal(t, balance.LifetimePurchased-balance.LifetimeSpent, balance.Balance)
}

func TestTransactions_NewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	_, err := env.credits.Purchase(worker.ID, 10, "first")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, env.credits.Deduct(worker.ID, 3, CreditContext{Description: "second"}))

	txns, err := env.credits.Transactions(worker.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, models.CreditTxSpend, txns[0].Type)
	assert.Equal(t, models.CreditTxPurchase, txns[1].Type)
}
