package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeWindow = errors.New("start time must be before end time")

// TimeWindow is a half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	return TimeWindow{
		start: start,
		end:   end,
	}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether two half-open intervals share at least one
// instant. A window ending exactly when the other begins does not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !(w.end.Compare(other.start) <= 0 || w.start.Compare(other.end) >= 0)
}

func (w TimeWindow) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
