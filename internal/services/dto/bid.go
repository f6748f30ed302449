package dto

import "github.com/shopspring/decimal"

type PlaceBidRequest struct {
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Message           string          `json:"message" binding:"required"`
	EstimatedDuration string          `json:"estimated_duration"`
	Availability      string          `json:"availability"`
}
