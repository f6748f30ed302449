package services

import (
	"errors"

	"gorm.io/gorm"

	"fixa_backend/internal/repositories"
	"fixa_backend/internal/services/dto"
	"fixa_backend/pkg/apperrors"
)

// SettlementService orchestrates the two cross-ledger consistency points:
// bid acceptance and job payment.
type SettlementService struct {
	db     *gorm.DB
	jobs   *repositories.JobRepository
	users  *repositories.UserRepository
	bids   *BidService
	wallet *WalletService
	jobSvc *JobService
}

func NewSettlementService(
	db *gorm.DB,
	jobs *repositories.JobRepository,
	users *repositories.UserRepository,
	bids *BidService,
	wallet *WalletService,
	jobSvc *JobService,
) *SettlementService {
	return &SettlementService{
		db:     db,
		jobs:   jobs,
		users:  users,
		bids:   bids,
		wallet: wallet,
		jobSvc: jobSvc,
	}
}

// AcceptBid delegates to the bid lifecycle, which owns the cascade and the
// job flip as a single transaction.
func (s *SettlementService) AcceptBid(bidID, clientID string) error {
	return s.bids.Accept(bidID, clientID)
}

// PayJob settles a pending_completion job: the worker's wallet is credited
// net of the platform fee and the job flips to completed, atomically. If the
// earning cannot be applied the job stays pending_completion.
func (s *SettlementService) PayJob(jobID, clientID string) (*dto.SettlementResult, error) {
	var result *dto.SettlementResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobs.WithTx(tx).FindByID(jobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return err
		}
		if job.ClientID != clientID {
			return apperrors.ErrNotJobOwner
		}
		if job.HiredWorkerID == nil {
			return apperrors.ErrJobNotPayable
		}
		workerID := *job.HiredWorkerID

		breakdown, err := s.wallet.ApplyEarningInTx(tx, workerID, job.PricingBudget(), job)
		if err != nil {
			return err
		}

		if err := s.jobSvc.FinalizeCompletionTx(tx, job.ID); err != nil {
			return err
		}
		if err := s.users.WithTx(tx).IncrementJobsCompleted(workerID); err != nil {
			return err
		}

		result = &dto.SettlementResult{
			JobID:          job.ID,
			WorkerID:       workerID,
			WorkerEarnings: breakdown.WorkerEarnings,
			PlatformFee:    breakdown.PlatformFee,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
