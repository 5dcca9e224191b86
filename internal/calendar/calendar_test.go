package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2025, 3, 1, 1, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(time.Date(2024, 2, 17, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)
}

func TestWithin_Inclusive(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, Within(start, start, end))
	assert.True(t, Within(end.Add(23*time.Hour), start, end))
	assert.False(t, Within(end.AddDate(0, 0, 1), start, end))
	assert.False(t, Within(start.AddDate(0, 0, -1), start, end))
}

func TestClockToday(t *testing.T) {
	fixed := Clock(func() time.Time { return time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC) })
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), fixed.Today())

	var unset Clock
	assert.Equal(t, DateOnly(time.Now()), unset.Today())
}

func TestParse(t *testing.T) {
	day, err := Parse("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = Parse("06/01/2025")
	assert.Error(t, err)
}
