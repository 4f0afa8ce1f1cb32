package booking

type Status string

const (
	// StatusActive is the only status this service ever writes; transitions
	// into the terminal states below belong to an external process.
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies its time window
// and therefore participates in conflict detection.
func (s Status) IsActive() bool {
	return s == StatusActive
}
