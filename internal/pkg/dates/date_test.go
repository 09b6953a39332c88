package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddDays_CrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	d := New(2025, time.March, 31)
	assert.Equal(t, "2025-04-05", d.AddDays(5).String())
	assert.Equal(t, "2025-03-30", d.AddDays(-1).String())
}

func TestDate_AddDays_CrossesYearBoundary(t *testing.T) {
	t.Parallel()

	d := New(2025, time.December, 30)
	assert.Equal(t, "2026-01-04", d.AddDays(5).String())
}

func TestDate_AddDays_LeapYear(t *testing.T) {
	t.Parallel()

	d := New(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}

func TestDate_AddYears(t *testing.T) {
	t.Parallel()

	d := New(2024, time.June, 15)
	assert.Equal(t, "2025-06-15", d.AddYears(1).String())
}

func TestDate_DaysUntil(t *testing.T) {
	t.Parallel()

	from := New(2025, time.April, 5)
	till := New(2025, time.May, 5)
	assert.Equal(t, 30, from.DaysUntil(till))
	assert.Equal(t, -30, till.DaysUntil(from))
	assert.Equal(t, 0, from.DaysUntil(from))
}

func TestDate_FromTime_DropsTimeOfDay(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// Late evening in a +07:00 zone must stay on the same calendar day.
	instant := time.Date(2025, time.March, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-31", FromTime(instant).String())
}

func TestDate_Comparisons(t *testing.T) {
	t.Parallel()

	a := New(2025, time.January, 1)
	b := New(2025, time.January, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.True(t, Date{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDate_Parse(t *testing.T) {
	t.Parallel()

	d, err := Parse("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 31, d.Day())

	_, err = Parse("31-03-2025")
	assert.Error(t, err)

	_, err = Parse("2025-02-30")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := New(2025, time.October, 7)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-07"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, d.Equal(parsed))
}
