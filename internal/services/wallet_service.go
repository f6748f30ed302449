package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/pkg/apperrors"
)

// PlatformFeeRate is the flat cut taken from every job settlement. It is the
// same for every subscription tier.
var PlatformFeeRate = decimal.NewFromFloat(0.15)

// EarningBreakdown is the fee split applied to a settled job.
type EarningBreakdown struct {
	WorkerEarnings decimal.Decimal `json:"worker_earnings"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
}

type WalletService struct {
	db      *gorm.DB
	wallets *repositories.WalletRepository
}

func NewWalletService(db *gorm.DB, wallets *repositories.WalletRepository) *WalletService {
	return &WalletService{db: db, wallets: wallets}
}

func (s *WalletService) GetOrCreateWallet(userID string) (*models.Wallet, error) {
	return s.wallets.GetOrCreate(userID)
}

// ApplyEarning settles a job's budget into the worker's wallet.
func (s *WalletService) ApplyEarning(workerID string, gross decimal.Decimal, job *models.Job) (*EarningBreakdown, error) {
	var breakdown *EarningBreakdown
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		breakdown, err = s.ApplyEarningInTx(tx, workerID, gross, job)
		return err
	})
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// ApplyEarningInTx computes the fee split and credits the worker inside a
// caller-owned transaction, so the settlement engine can commit the earning
// together with the job's status flip.
func (s *WalletService) ApplyEarningInTx(tx *gorm.DB, workerID string, gross decimal.Decimal, job *models.Job) (*EarningBreakdown, error) {
	if job.Status != models.JobStatusPendingCompletion || job.HiredWorkerID == nil {
		return nil, apperrors.ErrJobNotPayable
	}
	if !gross.IsPositive() {
		return nil, apperrors.NewBadRequestError("settlement amount must be positive")
	}

	fee := gross.Mul(PlatformFeeRate).Round(2)
	earnings := gross.Sub(fee)

	wallets := s.wallets.WithTx(tx)

	if _, err := wallets.GetOrCreate(workerID); err != nil {
		return nil, err
	}
	if err := wallets.AddEarning(workerID, earnings); err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(map[string]string{
		"gross":        gross.String(),
		"platform_fee": fee.String(),
		"fee_rate":     PlatformFeeRate.String(),
	})
	if err != nil {
		return nil, err
	}

	err = wallets.AppendTransaction(&models.WalletTransaction{
		UserID:      workerID,
		Type:        models.WalletTxEarning,
		Amount:      earnings,
		JobID:       &job.ID,
		Metadata:    datatypes.JSON(metadata),
		Description: fmt.Sprintf("Earnings for job %q", job.Title),
	})
	if err != nil {
		return nil, err
	}

	return &EarningBreakdown{WorkerEarnings: earnings, PlatformFee: fee}, nil
}

// RequestPayout moves funds from available to pending and opens a payout
// request. Fee computation is deferred to the external settlement process.
func (s *WalletService) RequestPayout(userID string, amount decimal.Decimal, method string, details map[string]string) (*models.Payout, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewBadRequestError("payout amount must be positive")
	}

	var detailsJSON datatypes.JSON
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, err
		}
		detailsJSON = datatypes.JSON(raw)
	}

	payout := &models.Payout{
		UserID:    userID,
		Amount:    amount,
		Fee:       decimal.Zero,
		NetAmount: amount,
		Method:    method,
		Details:   detailsJSON,
		Status:    models.PayoutStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		wallets := s.wallets.WithTx(tx)

		if _, err := wallets.GetOrCreate(userID); err != nil {
			return err
		}
		if err := wallets.MoveAvailableToPending(userID, amount); err != nil {
			if errors.Is(err, repositories.ErrInsufficientBalance) {
				return apperrors.ErrInsufficientBalance
			}
			return err
		}
		if err := wallets.CreatePayout(payout); err != nil {
			return err
		}
		return wallets.AppendTransaction(&models.WalletTransaction{
			UserID:      userID,
			Type:        models.WalletTxPayout,
			Amount:      amount.Neg(),
			PayoutID:    &payout.ID,
			Description: fmt.Sprintf("Payout request via %s", method),
		})
	})
	if err != nil {
		return nil, err
	}

	return payout, nil
}

func (s *WalletService) Transactions(userID string, limit int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTransactionLimit
	}
	return s.wallets.Transactions(userID, limit)
}

func (s *WalletService) Payouts(userID string, limit int) ([]models.Payout, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTransactionLimit
	}
	return s.wallets.Payouts(userID, limit)
}
