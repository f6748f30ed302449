package services

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fixa_backend/internal/algorithms"
	"fixa_backend/internal/logger"
	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/internal/services/dto"
	"fixa_backend/pkg/apperrors"
)

// Jobs stay open for bidding for 48 hours after posting.
const jobTTL = 48 * time.Hour

type JobService struct {
	db    *gorm.DB
	jobs  *repositories.JobRepository
	users *repositories.UserRepository
}

func NewJobService(db *gorm.DB, jobs *repositories.JobRepository, users *repositories.UserRepository) *JobService {
	return &JobService{db: db, jobs: jobs, users: users}
}

func (s *JobService) Create(clientID string, req *dto.CreateJobRequest) (*models.Job, error) {
	client, err := s.users.FindByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if !client.CanPostJobs() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if !models.ValidBudgetType(req.BudgetType) {
		return nil, apperrors.NewBadRequestError("invalid budget type")
	}
	if !models.ValidUrgency(req.Urgency) {
		return nil, apperrors.NewBadRequestError("invalid urgency tier")
	}
	if req.BudgetMax.LessThan(req.BudgetMin) {
		return nil, apperrors.NewBadRequestError("maximum budget cannot be less than minimum budget")
	}
	if req.BudgetAmount.IsNegative() {
		return nil, apperrors.NewBadRequestError("budget amount cannot be negative")
	}

	job := &models.Job{
		ClientID:           clientID,
		Category:           req.Category,
		Title:              req.Title,
		Description:        req.Description,
		BudgetType:         req.BudgetType,
		BudgetAmount:       req.BudgetAmount,
		BudgetMin:          req.BudgetMin,
		BudgetMax:          req.BudgetMax,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Address:            req.Address,
		VisibilityRadiusKm: req.VisibilityRadiusKm,
		Urgency:            req.Urgency,
		Status:             models.JobStatusOpen,
		ExpiresAt:          time.Now().Add(jobTTL),
	}

	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get returns a job. Every read counts as a view.
func (s *JobService) Get(jobID string) (*models.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	if err := s.jobs.IncrementViews(job.ID); err != nil {
		logger.WithError(err).Warn("failed to count job view", "job_id", job.ID)
	} else {
		job.ViewsCount++
	}

	return job, nil
}

// Nearby runs the haversine pass over all open, unexpired jobs and applies
// the optional filters, nearest first.
func (s *JobService) Nearby(req *dto.NearbyRequest) ([]dto.NearbyJob, error) {
	candidates, err := s.jobs.FindOpen(time.Now())
	if err != nil {
		return nil, err
	}

	results := make([]dto.NearbyJob, 0, len(candidates))
	for _, job := range candidates {
		distance := algorithms.Haversine(req.Lat, req.Lng, job.Latitude, job.Longitude)
		if distance > req.RadiusKm {
			continue
		}
		if req.Category != "" && job.Category != req.Category {
			continue
		}
		if req.Urgency != "" && job.Urgency != req.Urgency {
			continue
		}
		budget := job.PricingBudget()
		if req.BudgetMin != nil && budget.LessThan(decimal.NewFromFloat(*req.BudgetMin)) {
			continue
		}
		if req.BudgetMax != nil && budget.GreaterThan(decimal.NewFromFloat(*req.BudgetMax)) {
			continue
		}

		results = append(results, dto.NearbyJob{Job: job, DistanceKm: distance})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results, nil
}

// Cancel closes an open job. Credits already spent by bidders are never
// refunded on cancellation.
func (s *JobService) Cancel(jobID, requesterID string) error {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	if job.ClientID != requesterID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobs.UpdateStatus(jobID, models.JobStatusOpen, models.JobStatusCancelled); err != nil {
		if errors.Is(err, repositories.ErrInvalidTransition) {
			return apperrors.ErrInvalidJobStatus
		}
		return err
	}
	return nil
}

// RequestCompletion moves an in-progress job to pending_completion. Either
// side of the contract may signal; the worker's signal also stamps
// completed_at.
func (s *JobService) RequestCompletion(jobID, requesterID string) error {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}

	isClient := job.ClientID == requesterID
	isHiredWorker := job.HiredWorkerID != nil && *job.HiredWorkerID == requesterID
	if !isClient && !isHiredWorker {
		return apperrors.ErrNotJobParticipant
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		jobs := s.jobs.WithTx(tx)

		if err := jobs.UpdateStatus(jobID, models.JobStatusInProgress, models.JobStatusPendingCompletion); err != nil {
			if errors.Is(err, repositories.ErrInvalidTransition) {
				return apperrors.ErrInvalidJobStatus
			}
			return err
		}
		if isHiredWorker {
			return jobs.SetCompletedAt(jobID, time.Now())
		}
		return nil
	})
}

// AcceptBidEffectsTx is the job side of bid acceptance: hire the worker and
// flip the job to in_progress, guarded on the job still being open.
func (s *JobService) AcceptBidEffectsTx(tx *gorm.DB, jobID, workerID string) error {
	if err := s.jobs.WithTx(tx).AssignWorker(jobID, workerID); err != nil {
		if errors.Is(err, repositories.ErrInvalidTransition) {
			return apperrors.ErrJobNotOpen
		}
		return err
	}
	return nil
}

// FinalizeCompletionTx flips pending_completion to completed. Only the
// settlement engine calls this, after the earning has been applied.
func (s *JobService) FinalizeCompletionTx(tx *gorm.DB, jobID string) error {
	if err := s.jobs.WithTx(tx).Finalize(jobID, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrInvalidTransition) {
			return apperrors.ErrInvalidJobStatus
		}
		return err
	}
	return nil
}

func (s *JobService) ListByClient(clientID string) ([]models.Job, error) {
	return s.jobs.FindByClient(clientID)
}

// CloseExpired is the background worker entry point.
func (s *JobService) CloseExpired() (int64, error) {
	return s.jobs.CloseExpired(time.Now())
}
