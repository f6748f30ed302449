package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixa_backend/internal/models"
	"fixa_backend/pkg/apperrors"
)

func TestPayJob(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)
	require.NoError(t, env.jobs.RequestCompletion(job.ID, client.ID))

	result, err := env.settlement.PayJob(job.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, result.JobID)
	assert.Equal(t, worker.ID, result.WorkerID)
	assert.True(t, result.WorkerEarnings.Equal(decimal.NewFromInt(850)),
		"earnings = %s", result.WorkerEarnings)
	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(150)),
		"fee = %s", result.PlatformFee)

	var fresh models.Job
	require.NoError(t, env.db.First(&fresh, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusCompleted, fresh.Status)
	assert.NotNil(t, fresh.CompletedAt)

	wallet, err := env.wallet.GetOrCreateWallet(worker.ID)
	require.NoError(t, err)
	assert.True(t, wallet.BalanceAvailable.Equal(decimal.NewFromInt(850)))

	updatedWorker, err := env.users.FindByID(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updatedWorker.JobsCompleted)
}

func TestPayJob_KeepsWorkerCompletionStamp(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)
	require.NoError(t, env.jobs.RequestCompletion(job.ID, worker.ID))

	var before models.Job
	require.NoError(t, env.db.First(&before, "id = ?", job.ID).Error)
	require.NotNil(t, before.CompletedAt)

	_, err := env.settlement.PayJob(job.ID, client.ID)
	require.NoError(t, err)

	var after models.Job
	require.NoError(t, env.db.First(&after, "id = ?", job.ID).Error)
	require.NotNil(t, after.CompletedAt)
	assert.True(t, after.CompletedAt.Equal(*before.CompletedAt))
}

func TestPayJob_NotPendingCompletion(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)

	// Still in_progress; nobody asked for completion yet.
	_, err := env.settlement.PayJob(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrJobNotPayable)

	assert.Equal(t, models.JobStatusInProgress, env.jobStatus(t, job.ID))
	wallet, err := env.wallet.GetOrCreateWallet(worker.ID)
	require.NoError(t, err)
	assert.True(t, wallet.BalanceAvailable.IsZero())
}

func TestPayJob_NoHiredWorker(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	job := env.createJob(t, client.ID, 1000)

	_, err := env.settlement.PayJob(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrJobNotPayable)
}

func TestPayJob_NonOwner(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	outsider := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)
	require.NoError(t, env.jobs.RequestCompletion(job.ID, client.ID))

	_, err := env.settlement.PayJob(job.ID, outsider.ID)
	require.ErrorIs(t, err, apperrors.ErrNotJobOwner)
	assert.Equal(t, models.JobStatusPendingCompletion, env.jobStatus(t, job.ID))
}

func TestPayJob_DoublePayRefused(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)
	require.NoError(t, env.jobs.RequestCompletion(job.ID, client.ID))

	_, err := env.settlement.PayJob(job.ID, client.ID)
	require.NoError(t, err)

	_, err = env.settlement.PayJob(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrJobNotPayable)

	// The wallet was credited exactly once.
	wallet, err := env.wallet.GetOrCreateWallet(worker.ID)
	require.NoError(t, err)
	assert.True(t, wallet.BalanceAvailable.Equal(decimal.NewFromInt(850)),
		"available = %s", wallet.BalanceAvailable)
}

func TestAcceptBid_DelegatesToBidLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	env.giveCredits(t, worker.ID, 10)
	job := env.createJob(t, client.ID, 1000)
	bid := env.placeBid(t, job.ID, worker.ID)

	require.NoError(t, env.settlement.AcceptBid(bid.ID, client.ID))
	assert.Equal(t, models.BidStatusAccepted, env.bidStatus(t, bid.ID))
	assert.Equal(t, models.JobStatusInProgress, env.jobStatus(t, job.ID))
}
