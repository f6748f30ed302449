package dto

import "fixa_backend/internal/models"

// PurchaseCreditsRequest records an already-verified purchase; payment
// gateway verification happens upstream of this API.
type PurchaseCreditsRequest struct {
	Credits     int    `json:"credits" binding:"required,gt=0"`
	Description string `json:"description"`
}

type CreditSummary struct {
	Balance      *models.CreditBalance      `json:"balance"`
	Transactions []models.CreditTransaction `json:"transactions"`
}
