package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payout is a worker's withdrawal request. The fee is 0 at creation; the
// external settlement process computes it when advancing the status.
type Payout struct {
	BaseModel
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Fee       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"fee"`
	NetAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"net_amount"`
	Method    string          `gorm:"type:varchar(30);not null" json:"method"`
	Details   datatypes.JSON  `gorm:"type:jsonb" json:"details,omitempty"`
	Status    PayoutStatus    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
