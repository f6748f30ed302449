package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Job struct {
	BaseModel
	ClientID    string `gorm:"type:uuid;not null;index" json:"client_id"`
	Category    string `gorm:"not null" json:"category"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	BudgetType   BudgetType      `gorm:"type:varchar(20);not null" json:"budget_type"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"budget_amount"`
	BudgetMin    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"budget_min"`
	BudgetMax    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"budget_max"`

	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Address            string  `json:"address"`
	VisibilityRadiusKm float64 `gorm:"default:0" json:"visibility_radius_km"`

	Urgency       UrgencyTier `gorm:"type:varchar(20);not null" json:"urgency"`
	Status        JobStatus   `gorm:"type:varchar(30);default:'open';index" json:"status"`
	HiredWorkerID *string     `gorm:"type:uuid" json:"hired_worker_id,omitempty"`
	BidsCount     int         `gorm:"default:0" json:"bids_count"`
	ViewsCount    int         `gorm:"default:0" json:"views_count"`
	ExpiresAt     time.Time   `gorm:"index" json:"expires_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`

	Client      *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	HiredWorker *User `gorm:"foreignKey:HiredWorkerID" json:"hired_worker,omitempty"`
}

// PricingBudget is the amount bid pricing and settlement run against:
// the fixed/hourly amount, or the upper bound for range budgets.
func (j *Job) PricingBudget() decimal.Decimal {
	if j.BudgetAmount.IsPositive() {
		return j.BudgetAmount
	}
	return j.BudgetMax
}

func (j *Job) IsExpired(now time.Time) bool {
	return j.ExpiresAt.Before(now)
}
