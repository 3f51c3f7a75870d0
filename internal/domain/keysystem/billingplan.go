package keysystem

import (
	"strings"
	"time"
)

// BillingPlan is the payment cadence for a key system. Values match
// the Swedish plan names stored in existing databases.
type BillingPlan string

const (
	PlanOneTime  BillingPlan = "Engångskostnad"
	PlanMonthly  BillingPlan = "Månadskostnad"
	PlanHalfYear BillingPlan = "Halvårskostnad"
	PlanYearly   BillingPlan = "Helårskostnad"
)

// ParseBillingPlan normalizes a stored plan string. Unknown or empty
// values return "" (no plan).
func ParseBillingPlan(s string) BillingPlan {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "engångskostnad":
		return PlanOneTime
	case "månadskostnad":
		return PlanMonthly
	case "halvårskostnad":
		return PlanHalfYear
	case "helårskostnad":
		return PlanYearly
	}
	return ""
}

func (p BillingPlan) String() string {
	return string(p)
}

// IsRecurring reports whether the plan expires and needs re-payment.
func (p BillingPlan) IsRecurring() bool {
	switch p {
	case PlanMonthly, PlanHalfYear, PlanYearly:
		return true
	}
	return false
}

// Period returns the paid period length. The thresholds are whole-day
// counts, matching how due dates have always been computed.
func (p BillingPlan) Period() time.Duration {
	switch p {
	case PlanMonthly:
		return 30 * 24 * time.Hour
	case PlanHalfYear:
		return 182 * 24 * time.Hour
	case PlanYearly:
		return 365 * 24 * time.Hour
	}
	return 0
}
