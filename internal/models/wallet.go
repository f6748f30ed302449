package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Wallet holds a worker's monetary balances. All buckets stay >= 0; funds
// move between buckets only as a paired debit/credit inside one transaction.
type Wallet struct {
	BaseModel
	UserID           string          `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BalanceAvailable decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance_available"`
	BalancePending   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance_pending"`
	BalanceOnHold    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance_on_hold"`
	LifetimeEarnings decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"lifetime_earnings"`
}

// WalletTransaction is an append-only audit row. Metadata carries the fee
// breakdown for earnings (gross, platform fee, fee rate).
type WalletTransaction struct {
	BaseModel
	UserID      string                `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        WalletTransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal       `gorm:"type:decimal(14,2);not null" json:"amount"` // signed: payouts are negative
	JobID       *string               `gorm:"type:uuid" json:"job_id,omitempty"`
	PayoutID    *string               `gorm:"type:uuid" json:"payout_id,omitempty"`
	Metadata    datatypes.JSON        `gorm:"type:jsonb" json:"metadata,omitempty"`
	Description string                `json:"description"`
}
