package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fixa_backend/internal/config"
	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/internal/services/dto"
)

// testEnv wires the full service graph over an isolated in-memory database.
type testEnv struct {
	db         *gorm.DB
	users      *repositories.UserRepository
	credits    *CreditService
	wallet     *WalletService
	jobs       *JobService
	bids       *BidService
	settlement *SettlementService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if config.AppConfig == nil {
		cfg := &config.Config{}
		cfg.JWT.Secret = "test-secret"
		cfg.JWT.TTL = 60
		cfg.Credits.WelcomeBonus = 3
		config.AppConfig = cfg
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Bid{},
		&models.CreditBalance{},
		&models.CreditTransaction{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.Payout{},
	))

	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	creditRepo := repositories.NewCreditRepository(db)
	walletRepo := repositories.NewWalletRepository(db)

	creditService := NewCreditService(db, creditRepo)
	walletService := NewWalletService(db, walletRepo)
	jobService := NewJobService(db, jobRepo, userRepo)
	bidService := NewBidService(db, bidRepo, jobRepo, userRepo, creditService, jobService)
	settlementService := NewSettlementService(db, jobRepo, userRepo, bidService, walletService, jobService)

	return &testEnv{
		db:         db,
		users:      userRepo,
		credits:    creditService,
		wallet:     walletService,
		jobs:       jobService,
		bids:       bidService,
		settlement: settlementService,
	}
}

func (e *testEnv) createUser(t *testing.T, role models.UserRole) *models.User {
	t.Helper()
	id := uuid.NewString()[:8]
	user := &models.User{
		Email:        fmt.Sprintf("user-%s@test.local", id),
		Phone:        fmt.Sprintf("+7700%s", id),
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createProWorker(t *testing.T) *models.User {
	t.Helper()
	worker := e.createUser(t, models.UserRoleWorker)
	require.NoError(t, e.db.Model(worker).Update("subscription_tier", models.TierPro).Error)
	worker.SubscriptionTier = models.TierPro
	return worker
}

func (e *testEnv) giveCredits(t *testing.T, userID string, amount int) {
	t.Helper()
	require.NoError(t, e.db.Transaction(func(tx *gorm.DB) error {
		return e.credits.GrantInTx(tx, userID, amount, models.CreditTxPurchase, "test top-up")
	}))
}

func (e *testEnv) createJob(t *testing.T, clientID string, budget float64) *models.Job {
	t.Helper()
	return e.createJobAt(t, clientID, budget, 43.238949, 76.889709)
}

func (e *testEnv) createJobAt(t *testing.T, clientID string, budget, lat, lng float64) *models.Job {
	t.Helper()
	job, err := e.jobs.Create(clientID, &dto.CreateJobRequest{
		Category:     "plumbing",
		Title:        "Fix kitchen sink",
		Description:  "Leaking pipe under the sink",
		BudgetType:   models.BudgetTypeFixed,
		BudgetAmount: decimal.NewFromFloat(budget),
		Latitude:     lat,
		Longitude:    lng,
		Address:      "Abay Ave 1",
		Urgency:      models.UrgencyThisWeek,
	})
	require.NoError(t, err)
	return job
}

func (e *testEnv) placeBid(t *testing.T, jobID, workerID string) *models.Bid {
	t.Helper()
	bid, err := e.bids.Place(jobID, workerID, &dto.PlaceBidRequest{
		Amount:  decimal.NewFromInt(500),
		Message: "Can do it today",
	})
	require.NoError(t, err)
	return bid
}

// hireWorker walks a job from open to in_progress via a real accepted bid.
func (e *testEnv) hireWorker(t *testing.T, job *models.Job, worker *models.User) *models.Bid {
	t.Helper()
	e.giveCredits(t, worker.ID, 50)
	bid := e.placeBid(t, job.ID, worker.ID)
	require.NoError(t, e.settlement.AcceptBid(bid.ID, job.ClientID))
	return bid
}

func (e *testEnv) jobStatus(t *testing.T, jobID string) models.JobStatus {
	t.Helper()
	var job models.Job
	require.NoError(t, e.db.First(&job, "id = ?", jobID).Error)
	return job.Status
}

func (e *testEnv) bidStatus(t *testing.T, bidID string) models.BidStatus {
	t.Helper()
	var bid models.Bid
	require.NoError(t, e.db.First(&bid, "id = ?", bidID).Error)
	return bid.Status
}

func (e *testEnv) expireJob(t *testing.T, jobID string) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)
}
