package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// nanosPerHour as an exact decimal, so durations never pass through a
// binary float on their way to a price.
var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// Quote is the billable outcome of a rental window: hours and cost, each
// rounded half-up to 2 fractional digits. The cost is computed from the
// rounded hours (duration_hours × rate, then rounded again), matching the
// billing rule the rest of the system displays to customers.
type Quote struct {
	Hours decimal.Decimal
	Cost  decimal.Decimal
}

// NewQuote prices a rental duration at the given hourly rate.
// decimal.Round rounds half away from zero, which for the non-negative
// values here is exactly round-half-up.
func NewQuote(duration time.Duration, hourlyRate decimal.Decimal) Quote {
	hours := decimal.NewFromInt(duration.Nanoseconds()).
		Div(nanosPerHour).
		Round(2)

	return Quote{
		Hours: hours,
		Cost:  hours.Mul(hourlyRate).Round(2),
	}
}
