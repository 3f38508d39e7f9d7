package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"one week", date(2025, time.January, 1), date(2025, time.January, 8), 7},
		{"single night", date(2025, time.March, 10), date(2025, time.March, 11), 1},
		{"same day", date(2025, time.June, 5), date(2025, time.June, 5), 0},
		{"reversed range counts forward", date(2025, time.January, 8), date(2025, time.January, 1), 7},
		{"partial day rounds up", date(2025, time.May, 1), time.Date(2025, time.May, 3, 6, 0, 0, 0, time.UTC), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RentalDays(tc.start, tc.end))
		})
	}
}

func TestBreakdown(t *testing.T) {
	q := Breakdown(date(2025, time.January, 1), date(2025, time.January, 8), 100)

	assert.Equal(t, 7, q.Days)
	assert.InDelta(t, 700, q.Subtotal, 1e-9)
	assert.InDelta(t, 35, q.ServiceFee, 1e-9)
	assert.InDelta(t, 14, q.InsuranceFee, 1e-9)
	assert.InDelta(t, 749, q.Total, 1e-9)
}

func TestBreakdownZeroDays(t *testing.T) {
	q := Breakdown(date(2025, time.June, 5), date(2025, time.June, 5), 250)

	assert.Equal(t, 0, q.Days)
	assert.Zero(t, q.Subtotal)
	assert.Zero(t, q.Total)
}

func TestBreakdownTotalMatchesLineItems(t *testing.T) {
	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		dayRate float64
	}{
		{"whole dollars", date(2025, time.February, 1), date(2025, time.February, 15), 120},
		{"fractional rate", date(2025, time.April, 3), date(2025, time.April, 6), 299.99},
		{"reversed range", date(2025, time.July, 20), date(2025, time.July, 10), 42.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Breakdown(tc.start, tc.end, tc.dayRate)
			assert.InDelta(t, q.Subtotal+q.ServiceFee+q.InsuranceFee, q.Total, 1e-9)
			assert.InDelta(t, float64(q.Days)*tc.dayRate, q.Subtotal, 1e-9)
		})
	}
}
