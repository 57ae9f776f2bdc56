package util

import "time"

// MonthBucket formats a timestamp as the YYYY-MM budget key.
func MonthBucket(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CurrentMonth is the bucket for server wall-clock time right now.
func CurrentMonth() string {
	return MonthBucket(time.Now())
}

// MonthInterval returns the half-open [monthStart, nextMonthStart) interval
// containing t.
func MonthInterval(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
