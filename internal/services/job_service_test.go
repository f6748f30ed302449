package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixa_backend/internal/models"
	"fixa_backend/internal/services/dto"
	"fixa_backend/pkg/apperrors"
)

func TestCreateJob(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)

	job := env.createJob(t, client.ID, 1500)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, client.ID, job.ClientID)
	assert.Equal(t, 0, job.BidsCount)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), job.ExpiresAt, time.Minute)
}

func TestCreateJob_WorkerCannotPost(t *testing.T) {
	env := setupTestEnv(t)
	worker := env.createUser(t, models.UserRoleWorker)

	_, err := env.jobs.Create(worker.ID, &dto.CreateJobRequest{
		Category:     "plumbing",
		Title:        "t",
		Description:  "d",
		BudgetType:   models.BudgetTypeFixed,
		BudgetAmount: decimal.NewFromInt(100),
		Address:      "a",
		Urgency:      models.UrgencyToday,
	})
	require.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestCreateJob_InvalidBudgetRange(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)

	_, err := env.jobs.Create(client.ID, &dto.CreateJobRequest{
		Category:    "plumbing",
		Title:       "t",
		Description: "d",
		BudgetType:  models.BudgetTypeNegotiable,
		BudgetMin:   decimal.NewFromInt(500),
		BudgetMax:   decimal.NewFromInt(100),
		Address:     "a",
		Urgency:     models.UrgencyToday,
	})
	require.Error(t, err)
}

func TestGet_CountsViews(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	job := env.createJob(t, client.ID, 1000)

	got, err := env.jobs.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)

	got, err = env.jobs.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewsCount)
}

func TestGet_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.jobs.Get("00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestCancel(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	outsider := env.createUser(t, models.UserRoleClient)
	job := env.createJob(t, client.ID, 1000)

	err := env.jobs.Cancel(job.ID, outsider.ID)
	require.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	require.NoError(t, env.jobs.Cancel(job.ID, client.ID))
	assert.Equal(t, models.JobStatusCancelled, env.jobStatus(t, job.ID))

	// Already cancelled, the open -> cancelled guard refuses.
	err = env.jobs.Cancel(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidJobStatus)
}

func TestNearby(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)

	// Search origin: Almaty center.
	lat, lng := 43.238949, 76.889709

	near := env.createJobAt(t, client.ID, 1000, lat+0.01, lng)       // ~1.1 km
	far := env.createJobAt(t, client.ID, 1000, lat+0.05, lng)        // ~5.6 km
	tooFar := env.createJobAt(t, client.ID, 1000, lat+0.5, lng)      // ~55 km
	cancelled := env.createJobAt(t, client.ID, 1000, lat+0.01, lng)  // excluded
	expired := env.createJobAt(t, client.ID, 1000, lat+0.01, lng)    // excluded
	require.NoError(t, env.jobs.Cancel(cancelled.ID, client.ID))
	env.expireJob(t, expired.ID)

	results, err := env.jobs.Nearby(&dto.NearbyRequest{Lat: lat, Lng: lng, RadiusKm: 10})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].Job.ID)
	assert.Equal(t, far.ID, results[1].Job.ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)

	for _, r := range results {
		assert.NotEqual(t, tooFar.ID, r.Job.ID)
	}
}

func TestNearby_Filters(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	lat, lng := 43.238949, 76.889709

	cheap := env.createJobAt(t, client.ID, 300, lat, lng)
	pricey := env.createJobAt(t, client.ID, 3000, lat, lng)

	min := 1000.0
	results, err := env.jobs.Nearby(&dto.NearbyRequest{
		Lat: lat, Lng: lng, RadiusKm: 10, BudgetMin: &min,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, pricey.ID, results[0].Job.ID)

	results, err = env.jobs.Nearby(&dto.NearbyRequest{
		Lat: lat, Lng: lng, RadiusKm: 10, Category: "electrical",
	})
	require.NoError(t, err)
	assert.Empty(t, results)

	max := 500.0
	results, err = env.jobs.Nearby(&dto.NearbyRequest{
		Lat: lat, Lng: lng, RadiusKm: 10, BudgetMax: &max,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, cheap.ID, results[0].Job.ID)
}

func TestRequestCompletion(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	outsider := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)

	err := env.jobs.RequestCompletion(job.ID, outsider.ID)
	require.ErrorIs(t, err, apperrors.ErrNotJobParticipant)

	require.NoError(t, env.jobs.RequestCompletion(job.ID, client.ID))
	assert.Equal(t, models.JobStatusPendingCompletion, env.jobStatus(t, job.ID))

	// Client's signal leaves completed_at for the settlement to stamp.
	var fresh models.Job
	require.NoError(t, env.db.First(&fresh, "id = ?", job.ID).Error)
	assert.Nil(t, fresh.CompletedAt)

	// Second request hits the in_progress guard.
	err = env.jobs.RequestCompletion(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidJobStatus)
}

func TestRequestCompletion_WorkerStampsCompletedAt(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	worker := env.createUser(t, models.UserRoleWorker)
	job := env.createJob(t, client.ID, 1000)
	env.hireWorker(t, job, worker)

	require.NoError(t, env.jobs.RequestCompletion(job.ID, worker.ID))

	var fresh models.Job
	require.NoError(t, env.db.First(&fresh, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusPendingCompletion, fresh.Status)
	require.NotNil(t, fresh.CompletedAt)
	assert.WithinDuration(t, time.Now(), *fresh.CompletedAt, time.Minute)
}

func TestRequestCompletion_OpenJobRejected(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	job := env.createJob(t, client.ID, 1000)

	err := env.jobs.RequestCompletion(job.ID, client.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidJobStatus)
}

func TestCloseExpired(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, models.UserRoleClient)
	stale := env.createJob(t, client.ID, 1000)
	fresh := env.createJob(t, client.ID, 1000)
	env.expireJob(t, stale.ID)

	closed, err := env.jobs.CloseExpired()
	require.NoError(t, err)
	assert.EqualValues(t, 1, closed)
	assert.Equal(t, models.JobStatusExpired, env.jobStatus(t, stale.ID))
	assert.Equal(t, models.JobStatusOpen, env.jobStatus(t, fresh.ID))
}
