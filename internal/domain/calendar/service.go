package calendar

import "context"

// PeriodCatalog is the read-only accessor for calendars and their ordered
// periods. Implementations are idempotent and side-effect free.
type PeriodCatalog interface {
	ListCalendars(ctx context.Context) ([]CalendarResponse, error)
	GetCalendar(ctx context.Context, id string) (CalendarResponse, error)

	// GetPeriods returns the periods of the calendar ordered by start
	// date. Returns ErrCalendarNotFound for an unknown calendar id.
	GetPeriods(ctx context.Context, calendarID string) ([]CalendarPeriod, error)
}
