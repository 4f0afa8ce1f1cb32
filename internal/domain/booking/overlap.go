package booking

// Slot pairs an occupied time window with the status of the booking that
// holds it.
type Slot struct {
	Window TimeWindow
	Status Status
}

// HasConflict reports whether the requested window collides with any
// active-status slot. Non-active slots never conflict. Callers must pass an
// already validated window; malformed input is a caller error surfaced at
// the engine boundary, not here.
func HasConflict(requested TimeWindow, existing []Slot) bool {
	for _, slot := range existing {
		if !slot.Status.IsActive() {
			continue
		}
		if requested.Overlaps(slot.Window) {
			return true
		}
	}
	return false
}
