package shared

import "time"

// DayKey collapses a timestamp to its calendar day in UTC. Engines that must
// run at most once per simulated day compare DayKey values, not raw times.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SameDay reports whether two timestamps fall on the same UTC calendar day
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	ua := a.UTC().Truncate(24 * time.Hour)
	ub := b.UTC().Truncate(24 * time.Hour)
	return int(ub.Sub(ua).Hours() / 24)
}
