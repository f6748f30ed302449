package dto

import (
	"github.com/shopspring/decimal"

	"fixa_backend/internal/models"
)

type PayoutRequest struct {
	Amount  decimal.Decimal   `json:"amount" binding:"required"`
	Method  string            `json:"method" binding:"required"`
	Details map[string]string `json:"details"`
}

type WalletSummary struct {
	Wallet       *models.Wallet             `json:"wallet"`
	Transactions []models.WalletTransaction `json:"transactions"`
}

type SettlementResult struct {
	JobID          string          `json:"job_id"`
	WorkerID       string          `json:"worker_id"`
	WorkerEarnings decimal.Decimal `json:"worker_earnings"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
}
