package models

import "github.com/shopspring/decimal"

type Bid struct {
	BaseModel
	// The partial unique index backstops the pre-insert pending check under
	// concurrent placements; at most one pending bid per worker per job.
	JobID    string `gorm:"type:uuid;not null;index:idx_bids_job_worker;uniqueIndex:uniq_bids_pending,where:status = 'pending'" json:"job_id"`
	WorkerID string `gorm:"type:uuid;not null;index:idx_bids_job_worker;uniqueIndex:uniq_bids_pending,where:status = 'pending'" json:"worker_id"`

	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Message           string          `json:"message"`
	EstimatedDuration string          `json:"estimated_duration"`
	Availability      string          `json:"availability"`

	// CreditsSpent is written once at placement and never changed; bid
	// credits are not refunded on withdrawal or cancellation.
	CreditsSpent int       `gorm:"not null" json:"credits_spent"`
	Status       BidStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Snapshot of the worker's aggregates at bid time. Deliberately not a
	// join: these are never recomputed after creation.
	WorkerRating        float64 `json:"worker_rating"`
	WorkerJobsCompleted int     `json:"worker_jobs_completed"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
