package algorithms

import (
	"math"

	"github.com/shopspring/decimal"

	"fixa_backend/internal/models"
)

var urgencyMultipliers = map[models.UrgencyTier]float64{
	models.UrgencyToday:     1.5,
	models.UrgencyThisWeek:  1.0,
	models.UrgencyThisMonth: 0.75,
	models.UrgencyFlexible:  0.5,
}

// BidCost computes the credit price of placing a bid. Pure; no side effects.
//
// Base cost by budget tier, multiplied by the urgency factor (rounded up),
// plus a competition surcharge, with a Pro/Elite discount at the end.
// A negative budget is treated as zero.
func BidCost(budget decimal.Decimal, urgency models.UrgencyTier, bidsCount int, proOrElite bool) int {
	amount, _ := budget.Float64()
	if amount < 0 {
		amount = 0
	}

	var base int
	switch {
	case amount <= 500:
		base = 1
	case amount <= 1000:
		base = 2
	case amount <= 2500:
		base = 3
	case amount <= 5000:
		base = 4
	default:
		base = 5
	}

	mult, ok := urgencyMultipliers[urgency]
	if !ok {
		mult = 1.0
	}
	cost := int(math.Ceil(float64(base) * mult))

	switch {
	case bidsCount >= 8:
		cost += 2
	case bidsCount >= 4:
		cost++
	}

	if proOrElite {
		cost = int(math.Floor(float64(cost) * 0.8))
		if cost < 1 {
			cost = 1
		}
	}

	return cost
}
