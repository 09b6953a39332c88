package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCalendarRepo struct {
	calendars map[string]calendar.Calendar
	periods   map[string][]calendar.CalendarPeriod
}

func (s *stubCalendarRepo) GetByID(ctx context.Context, id string) (calendar.Calendar, error) {
	c, ok := s.calendars[id]
	if !ok {
		return calendar.Calendar{}, calendar.ErrCalendarNotFound
	}
	return c, nil
}

func (s *stubCalendarRepo) List(ctx context.Context) ([]calendar.Calendar, error) {
	out := make([]calendar.Calendar, 0, len(s.calendars))
	for _, c := range s.calendars {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCalendarRepo) GetPeriods(ctx context.Context, calendarID string) ([]calendar.CalendarPeriod, error) {
	return s.periods[calendarID], nil
}

func newCatalogFixture() calendar.PeriodCatalog {
	return NewPeriodCatalog(&stubCalendarRepo{
		calendars: map[string]calendar.Calendar{
			"cal-1": {
				ID:        "cal-1",
				Code:      "FY2025-Q",
				StartDate: dates.New(2025, time.January, 1),
				EndDate:   dates.New(2025, time.December, 31),
			},
			"cal-empty": {ID: "cal-empty", Code: "EMPTY"},
		},
		periods: map[string][]calendar.CalendarPeriod{
			"cal-1": {
				{ID: "q1", CalendarID: "cal-1", DisplayName: "Q1"},
				{ID: "q2", CalendarID: "cal-1", DisplayName: "Q2"},
			},
		},
	})
}

func TestPeriodCatalog_GetCalendar(t *testing.T) {
	t.Parallel()

	catalog := newCatalogFixture()
	resp, err := catalog.GetCalendar(context.Background(), "cal-1")
	require.NoError(t, err)
	assert.Equal(t, "FY2025-Q", resp.Code)
	assert.Equal(t, "2025-01-01", resp.StartDate)

	_, err = catalog.GetCalendar(context.Background(), "cal-missing")
	assert.ErrorIs(t, err, calendar.ErrCalendarNotFound)
}

func TestPeriodCatalog_GetPeriods(t *testing.T) {
	t.Parallel()

	catalog := newCatalogFixture()
	periods, err := catalog.GetPeriods(context.Background(), "cal-1")
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "q1", periods[0].ID)
}

func TestPeriodCatalog_GetPeriodsUnknownCalendar(t *testing.T) {
	t.Parallel()

	// An unknown calendar is a not-found, never an empty list.
	catalog := newCatalogFixture()
	_, err := catalog.GetPeriods(context.Background(), "cal-missing")
	assert.ErrorIs(t, err, calendar.ErrCalendarNotFound)
}

func TestPeriodCatalog_EmptyCalendarHasNoPeriods(t *testing.T) {
	t.Parallel()

	catalog := newCatalogFixture()
	periods, err := catalog.GetPeriods(context.Background(), "cal-empty")
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestPeriodCatalog_ListCalendars(t *testing.T) {
	t.Parallel()

	catalog := newCatalogFixture()
	calendars, err := catalog.ListCalendars(context.Background())
	require.NoError(t, err)
	assert.Len(t, calendars, 2)
}
