package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBucket(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03", MonthBucket(ts))

	// Bucketing happens in UTC regardless of the input zone.
	zone := time.FixedZone("UTC+10", 10*3600)
	lateNight := time.Date(2026, time.April, 1, 5, 0, 0, 0, zone)
	assert.Equal(t, "2026-03", MonthBucket(lateNight))
}

func TestMonthInterval(t *testing.T) {
	ts := time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)
	start, next := MonthInterval(ts)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), next)

	// Half-open: the instant of next month's start belongs to the next bucket.
	assert.True(t, ts.Before(next))
	assert.Equal(t, "2026-02", MonthBucket(next))
}

func TestMonthIntervalDecemberRollover(t *testing.T) {
	ts := time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)
	start, next := MonthInterval(ts)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), next)
}
