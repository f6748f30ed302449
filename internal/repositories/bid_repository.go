package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fixa_backend/internal/models"
)

var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrBidNotPending = errors.New("bid is not pending")
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) WithTx(tx *gorm.DB) *BidRepository {
	return &BidRepository{db: tx}
}

func (r *BidRepository) Create(bid *models.Bid) error {
	return r.db.Create(bid).Error
}

func (r *BidRepository) FindByID(id string) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.First(&bid, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) HasPendingBid(jobID, workerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bid{}).
		Where("job_id = ? AND worker_id = ? AND status = ?", jobID, workerID, models.BidStatusPending).
		Count(&count).Error
	return count > 0, err
}

// ListPendingByJob returns the job's pending bids, oldest first.
func (r *BidRepository) ListPendingByJob(jobID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Where("job_id = ? AND status = ?", jobID, models.BidStatusPending).
		Order("created_at ASC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) ListByWorker(workerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

// UpdateStatusIfPending moves a pending bid to a terminal status. Bid
// statuses are terminal once they leave pending, so the guard doubles as the
// race check.
func (r *BidRepository) UpdateStatusIfPending(bidID string, to models.BidStatus) error {
	res := r.db.Model(&models.Bid{}).
		Where("id = ? AND status = ?", bidID, models.BidStatusPending).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBidNotPending
	}
	return nil
}

// RejectOtherPending cascade-rejects every other pending bid on the job.
// Withdrawn and already-terminal bids are untouched.
func (r *BidRepository) RejectOtherPending(jobID, exceptBidID string) error {
	return r.db.Model(&models.Bid{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, exceptBidID, models.BidStatusPending).
		Update("status", models.BidStatusRejected).Error
}
