package models

// CreditBalance keeps one row per user. The ledger maintains
// balance == lifetime_purchased - lifetime_spent at all times; every mutation
// updates the counters together with a matching CreditTransaction.
type CreditBalance struct {
	BaseModel
	UserID            string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance           int    `gorm:"not null;default:0" json:"balance"`
	LifetimePurchased int    `gorm:"not null;default:0" json:"lifetime_purchased"`
	LifetimeSpent     int    `gorm:"not null;default:0" json:"lifetime_spent"`
}

// CreditTransaction is an append-only audit row; never updated or deleted.
type CreditTransaction struct {
	BaseModel
	UserID      string                `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        CreditTransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      int                   `gorm:"not null" json:"amount"` // signed: spends are negative
	JobID       *string               `gorm:"type:uuid" json:"job_id,omitempty"`
	BidID       *string               `gorm:"type:uuid" json:"bid_id,omitempty"`
	Description string                `json:"description"`
}
