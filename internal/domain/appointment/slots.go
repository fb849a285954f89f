package appointment

// GenerateSlots enumerates candidate start times between start and end
// (both in minutes since midnight), stepping by interval. The sequence
// includes end itself; callers exclude start times at or past the
// working window's end, since a booking starting exactly at closing is
// meaningless.
func GenerateSlots(start, end, interval int) []int {
	if interval <= 0 || end < start {
		return nil
	}

	slots := make([]int, 0, (end-start)/interval+1)
	for cur := start; cur <= end; cur += interval {
		slots = append(slots, cur)
	}
	return slots
}
