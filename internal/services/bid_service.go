package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixa_backend/internal/algorithms"
	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/internal/services/dto"
	"fixa_backend/pkg/apperrors"
)

type BidService struct {
	db      *gorm.DB
	bids    *repositories.BidRepository
	jobs    *repositories.JobRepository
	users   *repositories.UserRepository
	credits *CreditService
	jobSvc  *JobService
}

func NewBidService(
	db *gorm.DB,
	bids *repositories.BidRepository,
	jobs *repositories.JobRepository,
	users *repositories.UserRepository,
	credits *CreditService,
	jobSvc *JobService,
) *BidService {
	return &BidService{
		db:      db,
		bids:    bids,
		jobs:    jobs,
		users:   users,
		credits: credits,
		jobSvc:  jobSvc,
	}
}

// Place creates a bid. The credit deduction, the bid insert and the job's
// bid counter increment commit or roll back as one unit: a failed deduction
// leaves no bid, and a failed insert restores the credits.
func (s *BidService) Place(jobID, workerID string, req *dto.PlaceBidRequest) (*models.Bid, error) {
	worker, err := s.users.FindByID(workerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if !worker.CanBid() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewBadRequestError("bid amount must be positive")
	}

	var bid *models.Bid
	err = s.db.Transaction(func(tx *gorm.DB) error {
		jobs := s.jobs.WithTx(tx)
		bids := s.bids.WithTx(tx)

		job, err := jobs.FindByID(jobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return err
		}
		if job.ClientID == workerID {
			return apperrors.ErrCannotBidOwnJob
		}
		if job.Status != models.JobStatusOpen {
			return apperrors.ErrJobNotOpen
		}
		if job.IsExpired(time.Now()) {
			return apperrors.ErrJobExpired
		}

		exists, err := bids.HasPendingBid(jobID, workerID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateBid
		}

		cost := algorithms.BidCost(job.PricingBudget(), job.Urgency, job.BidsCount, worker.IsProOrElite())

		ref := CreditContext{
			JobID:       &job.ID,
			Description: fmt.Sprintf("Bid on job %q", job.Title),
		}
		if err := s.credits.DeductInTx(tx, workerID, cost, ref); err != nil {
			return err
		}

		bid = &models.Bid{
			JobID:             jobID,
			WorkerID:          workerID,
			Amount:            req.Amount,
			Message:           req.Message,
			EstimatedDuration: req.EstimatedDuration,
			Availability:      req.Availability,
			CreditsSpent:      cost,
			Status:            models.BidStatusPending,
			// snapshot, taken once and never refreshed
			WorkerRating:        worker.Rating,
			WorkerJobsCompleted: worker.JobsCompleted,
		}
		if err := bids.Create(bid); err != nil {
			return err
		}

		return jobs.IncrementBids(jobID)
	})
	if err != nil {
		return nil, err
	}

	return bid, nil
}

// ListForJob returns the pending bids on a job, oldest first. Only the job's
// client may see them.
func (s *BidService) ListForJob(jobID, requesterID string) ([]models.Bid, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	if job.ClientID != requesterID {
		return nil, apperrors.ErrNotJobOwner
	}

	return s.bids.ListPendingByJob(jobID)
}

// Accept marks the bid accepted, cascade-rejects the other pending bids on
// the job and hires the worker — one logical transaction. The guarded job
// flip means a second concurrent accept on the same job loses cleanly.
func (s *BidService) Accept(bidID, clientID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		bids := s.bids.WithTx(tx)

		bid, err := bids.FindByID(bidID)
		if err != nil {
			if errors.Is(err, repositories.ErrBidNotFound) {
				return apperrors.ErrBidNotFound
			}
			return err
		}

		job, err := s.jobs.WithTx(tx).FindByID(bid.JobID)
		if err != nil {
			return err
		}
		if job.ClientID != clientID {
			return apperrors.ErrNotJobOwner
		}
		if bid.Status != models.BidStatusPending {
			return apperrors.ErrBidNotPending
		}

		if err := s.jobSvc.AcceptBidEffectsTx(tx, job.ID, bid.WorkerID); err != nil {
			return err
		}
		if err := bids.UpdateStatusIfPending(bidID, models.BidStatusAccepted); err != nil {
			if errors.Is(err, repositories.ErrBidNotPending) {
				return apperrors.ErrBidNotPending
			}
			return err
		}
		return bids.RejectOtherPending(job.ID, bidID)
	})
}

// Withdraw retires a pending bid. The credits it cost stay spent; the credit
// ledger is deliberately not touched.
func (s *BidService) Withdraw(bidID, workerID string) error {
	bid, err := s.bids.FindByID(bidID)
	if err != nil {
		if errors.Is(err, repositories.ErrBidNotFound) {
			return apperrors.ErrBidNotFound
		}
		return err
	}
	if bid.WorkerID != workerID {
		return apperrors.ErrBidNotFound
	}

	if err := s.bids.UpdateStatusIfPending(bidID, models.BidStatusWithdrawn); err != nil {
		if errors.Is(err, repositories.ErrBidNotPending) {
			return apperrors.ErrBidNotPending
		}
		return err
	}
	return nil
}

func (s *BidService) ListByWorker(workerID string) ([]models.Bid, error) {
	return s.bids.ListByWorker(workerID)
}
