package tracker

import "time"

// dayLayout is the day-granularity date format used for reset bookkeeping.
const dayLayout = "2006-01-02"

// dayOf truncates a timestamp to its local calendar day.
func dayOf(t time.Time) string {
	return t.Format(dayLayout)
}

// shouldReset reports whether a per-day accumulator recorded on lastResetDate
// must be cleared now that the calendar reads today. Both arguments are
// YYYY-MM-DD strings; any number of missed days collapses into one reset.
func shouldReset(lastResetDate, today string) bool {
	return lastResetDate != today
}

// resetIfNewDay applies reset and stamps *lastResetDate with today when the
// day has changed. It returns true if a reset ran. The check is lazy: it is
// driven by writes and screen mounts, never by a timer, so calling it twice
// on the same day is a no-op the second time.
func resetIfNewDay(lastResetDate *string, today string, reset func()) bool {
	if !shouldReset(*lastResetDate, today) {
		return false
	}
	reset()
	*lastResetDate = today
	return true
}
