package speech

import "time"

// SetPopulateSchedule shortens the voice enumeration retry schedule so
// tests do not wait on real delays. Returns a restore function.
func SetPopulateSchedule(schedule []time.Duration) func() {
	prev := populateSchedule
	populateSchedule = schedule
	return func() { populateSchedule = prev }
}
