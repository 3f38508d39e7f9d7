package pricing

import (
	"math"
	"time"
)

// Fee rates applied on top of the rental subtotal.
const (
	ServiceFeeRate   = 0.05
	InsuranceFeeRate = 0.02
)

// Quote is the cost breakdown for one rental period.
type Quote struct {
	Days         int     `json:"days"`
	Subtotal     float64 `json:"subtotal"`
	ServiceFee   float64 `json:"serviceFee"`
	InsuranceFee float64 `json:"insuranceFee"`
	Total        float64 `json:"total"`
}

// RentalDays converts a date range into a billable day count: the absolute
// interval between the two dates, rounded up to whole days. The absolute
// value means a reversed range still yields a positive count and equal dates
// yield zero; callers that persist rentals must validate the range themselves.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Breakdown prices a rental of the given date range at the given day rate.
// The total is derived from the fee line items, so the invariant
// Total == Subtotal + ServiceFee + InsuranceFee holds for any fee rates.
func Breakdown(start, end time.Time, dayRate float64) Quote {
	days := RentalDays(start, end)
	subtotal := float64(days) * dayRate
	serviceFee := subtotal * ServiceFeeRate
	insuranceFee := subtotal * InsuranceFeeRate

	return Quote{
		Days:         days,
		Subtotal:     subtotal,
		ServiceFee:   serviceFee,
		InsuranceFee: insuranceFee,
		Total:        subtotal + serviceFee + insuranceFee,
	}
}
