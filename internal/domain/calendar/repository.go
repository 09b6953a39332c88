package calendar

import "context"

type CalendarRepository interface {
	GetByID(ctx context.Context, id string) (Calendar, error)
	List(ctx context.Context) ([]Calendar, error)
	GetPeriods(ctx context.Context, calendarID string) ([]CalendarPeriod, error)
}
