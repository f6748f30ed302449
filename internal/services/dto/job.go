package dto

import (
	"github.com/shopspring/decimal"

	"fixa_backend/internal/models"
)

type CreateJobRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	BudgetType   models.BudgetType `json:"budget_type" binding:"required"`
	BudgetAmount decimal.Decimal   `json:"budget_amount"`
	BudgetMin    decimal.Decimal   `json:"budget_min"`
	BudgetMax    decimal.Decimal   `json:"budget_max"`

	Latitude           float64 `json:"latitude" binding:"required"`
	Longitude          float64 `json:"longitude" binding:"required"`
	Address            string  `json:"address" binding:"required"`
	VisibilityRadiusKm float64 `json:"visibility_radius_km"`

	Urgency models.UrgencyTier `json:"urgency" binding:"required"`
}

// NearbyRequest carries the search origin plus optional filters.
type NearbyRequest struct {
	Lat      float64 `form:"lat" binding:"required"`
	Lng      float64 `form:"lng" binding:"required"`
	RadiusKm float64 `form:"radius_km" binding:"required,gt=0"`

	Category  string             `form:"category"`
	Urgency   models.UrgencyTier `form:"urgency"`
	BudgetMin *float64           `form:"budget_min"`
	BudgetMax *float64           `form:"budget_max"`
}

type NearbyJob struct {
	Job        models.Job `json:"job"`
	DistanceKm float64    `json:"distance_km"`
}
