package services

import "time"

// Clock supplies the reference time for day-bucketed reactions. Services
// take a Clock instead of reading the wall clock so tests can pin the
// day boundary.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayBucket returns the start of the calendar day containing t. All
// ledger writes and "has prayed today" checks use the half-open window
// [DayBucket(now), DayBucket(now)+24h). One reference timezone for
// everyone; day boundaries are not per-user.
func DayBucket(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
