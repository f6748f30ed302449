package services

import (
	"errors"

	"gorm.io/gorm"

	"fixa_backend/internal/config"
	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/pkg/apperrors"
)

const defaultTransactionLimit = 50

// CreditContext ties a ledger entry back to the job/bid that caused it.
type CreditContext struct {
	JobID       *string
	BidID       *string
	Description string
}

type CreditService struct {
	db      *gorm.DB
	credits *repositories.CreditRepository
}

func NewCreditService(db *gorm.DB, credits *repositories.CreditRepository) *CreditService {
	return &CreditService{db: db, credits: credits}
}

func (s *CreditService) GetOrCreateBalance(userID string) (*models.CreditBalance, error) {
	return s.credits.GetOrCreate(userID)
}

// Deduct spends credits as a single atomic unit of work.
func (s *CreditService) Deduct(userID string, amount int, ref CreditContext) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.DeductInTx(tx, userID, amount, ref)
	})
}

// DeductInTx runs the deduction inside a caller-owned transaction so that
// bid placement can commit the deduct together with the bid insert.
func (s *CreditService) DeductInTx(tx *gorm.DB, userID string, amount int, ref CreditContext) error {
	if amount <= 0 {
		return apperrors.NewBadRequestError("deduction amount must be positive")
	}

	credits := s.credits.WithTx(tx)

	if _, err := credits.GetOrCreate(userID); err != nil {
		return err
	}

	if err := credits.Deduct(userID, amount); err != nil {
		if errors.Is(err, repositories.ErrInsufficientCredits) {
			return apperrors.ErrInsufficientCredits
		}
		return err
	}

	return credits.AppendTransaction(&models.CreditTransaction{
		UserID:      userID,
		Type:        models.CreditTxSpend,
		Amount:      -amount,
		JobID:       ref.JobID,
		BidID:       ref.BidID,
		Description: ref.Description,
	})
}

// Purchase records an already-verified credit purchase.
func (s *CreditService) Purchase(userID string, credits int, description string) (*models.CreditBalance, error) {
	if credits <= 0 {
		return nil, apperrors.NewBadRequestError("purchase amount must be positive")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.credits.WithTx(tx)

		if _, err := repo.GetOrCreate(userID); err != nil {
			return err
		}
		if err := repo.Add(userID, credits); err != nil {
			return err
		}
		return repo.AppendTransaction(&models.CreditTransaction{
			UserID:      userID,
			Type:        models.CreditTxPurchase,
			Amount:      credits,
			Description: description,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.credits.GetOrCreate(userID)
}

// GrantInTx credits non-purchase kinds (bonus, refund) inside a caller
// transaction. Bid spends are never refunded through here or anywhere else;
// that is a product rule, not an oversight.
func (s *CreditService) GrantInTx(tx *gorm.DB, userID string, amount int, kind models.CreditTransactionType, description string) error {
	if amount <= 0 {
		return apperrors.NewBadRequestError("grant amount must be positive")
	}

	credits := s.credits.WithTx(tx)

	if _, err := credits.GetOrCreate(userID); err != nil {
		return err
	}
	if err := credits.Add(userID, amount); err != nil {
		return err
	}
	return credits.AppendTransaction(&models.CreditTransaction{
		UserID:      userID,
		Type:        kind,
		Amount:      amount,
		Description: description,
	})
}

func (s *CreditService) Transactions(userID string, limit int) ([]models.CreditTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTransactionLimit
	}
	return s.credits.Transactions(userID, limit)
}

// Packages returns the purchasable credit bundles shown to workers.
func (s *CreditService) Packages() []config.CreditPackage {
	return config.GetConfig().Credits.Packages
}
