package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fixa_backend/internal/models"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidTransition = errors.New("job is not in the required status")
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) WithTx(tx *gorm.DB) *JobRepository {
	return &JobRepository{db: tx}
}

func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + ?", 1)).Error
}

func (r *JobRepository) IncrementBids(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Update("bids_count", gorm.Expr("bids_count + ?", 1)).Error
}

// FindOpen returns the nearby-search candidate set: open jobs that have not
// expired. Distance filtering happens in application memory.
func (r *JobRepository) FindOpen(now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ? AND expires_at >= ?", models.JobStatusOpen, now).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByClient(clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// UpdateStatus flips a job from one status to another. The precondition sits
// inside the same update, so a lost race surfaces as ErrInvalidTransition
// instead of a silent double transition.
func (r *JobRepository) UpdateStatus(jobID string, from, to models.JobStatus) error {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// AssignWorker hires the worker and moves the job to in_progress, guarded on
// the job still being open. This is what makes double-acceptance impossible.
func (r *JobRepository) AssignWorker(jobID, workerID string) error {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusOpen).
		Updates(map[string]interface{}{
			"hired_worker_id": workerID,
			"status":          models.JobStatusInProgress,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (r *JobRepository) SetCompletedAt(jobID string, at time.Time) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("completed_at", at).Error
}

// Finalize flips pending_completion to completed, stamping completed_at only
// when the worker's completion request did not already set it.
func (r *JobRepository) Finalize(jobID string, at time.Time) error {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusPendingCompletion).
		Updates(map[string]interface{}{
			"status":       models.JobStatusCompleted,
			"completed_at": gorm.Expr("COALESCE(completed_at, ?)", at),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// CloseExpired marks open jobs past their expiry as expired. Used by the
// background worker; returns the number of jobs closed.
func (r *JobRepository) CloseExpired(now time.Time) (int64, error) {
	res := r.db.Model(&models.Job{}).
		Where("status = ? AND expires_at < ?", models.JobStatusOpen, now).
		Update("status", models.JobStatusExpired)
	return res.RowsAffected, res.Error
}
