package algorithms

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fixa_backend/internal/models"
)

func TestBidCost(t *testing.T) {
	tests := []struct {
		name       string
		budget     string
		urgency    models.UrgencyTier
		bidsCount  int
		proOrElite bool
		want       int
	}{
		{"small budget today", "300", models.UrgencyToday, 0, false, 2},
		{"mid budget this week with competition", "800", models.UrgencyThisWeek, 5, false, 3},
		{"large flexible crowded pro", "3000", models.UrgencyFlexible, 9, true, 3},
		{"cheapest possible", "100", models.UrgencyFlexible, 0, false, 1},
		{"pro discount floors at one credit", "100", models.UrgencyFlexible, 0, true, 1},
		{"top tier today", "9000", models.UrgencyToday, 0, false, 8},
		{"unknown urgency defaults to neutral", "800", models.UrgencyTier("SOMEDAY"), 0, false, 2},
		{"negative budget treated as zero", "-50", models.UrgencyThisWeek, 0, false, 1},
		{"boundary budget 500", "500", models.UrgencyThisWeek, 0, false, 1},
		{"boundary budget 501", "501", models.UrgencyThisWeek, 0, false, 2},
		{"surcharge at four bids", "300", models.UrgencyThisWeek, 4, false, 2},
		{"surcharge at eight bids", "300", models.UrgencyThisWeek, 8, false, 3},
		{"this month rounds up", "300", models.UrgencyThisMonth, 0, false, 1},
		{"pro discount after surcharge", "2000", models.UrgencyThisWeek, 8, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := decimal.RequireFromString(tt.budget)
			got := BidCost(budget, tt.urgency, tt.bidsCount, tt.proOrElite)
			assert.Equal(t, tt.want, got)
		})
	}
}
