package appointment

// Window is a half-open [Start, End) interval in minutes since midnight.
type Window struct {
	Start int
	End   int
}

func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && w.End > o.Start
}

// SlotFits is the single conflict predicate for the whole system. It is
// used both when building the availability list and when validating a
// create/update, so the two paths can never drift apart.
//
// A candidate starting at start and running durationMin minutes fits when:
//   - it does not cross midnight (such bookings are rejected outright),
//   - it ends at or before the working window's end (the worker's
//     configured closing time is authoritative),
//   - it does not overlap the break window, if any,
//   - it does not overlap any existing non-cancelled appointment.
func SlotFits(start, durationMin, dayEnd int, brk *Window, existing []Window) bool {
	end := start + durationMin
	if end > minutesPerDay {
		return false
	}
	if end > dayEnd {
		return false
	}

	cand := Window{Start: start, End: end}

	if brk != nil && cand.Overlaps(*brk) {
		return false
	}

	for _, w := range existing {
		if cand.Overlaps(w) {
			return false
		}
	}

	return true
}
