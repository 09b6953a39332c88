package calendar

import (
	"context"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
)

type periodCatalogImpl struct {
	calendarRepo calendar.CalendarRepository
}

func NewPeriodCatalog(calendarRepo calendar.CalendarRepository) calendar.PeriodCatalog {
	return &periodCatalogImpl{calendarRepo: calendarRepo}
}

// ListCalendars implements calendar.PeriodCatalog.
func (s *periodCatalogImpl) ListCalendars(ctx context.Context) ([]calendar.CalendarResponse, error) {
	calendars, err := s.calendarRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]calendar.CalendarResponse, 0, len(calendars))
	for _, c := range calendars {
		responses = append(responses, calendar.ToCalendarResponse(c))
	}
	return responses, nil
}

// GetCalendar implements calendar.PeriodCatalog.
func (s *periodCatalogImpl) GetCalendar(ctx context.Context, id string) (calendar.CalendarResponse, error) {
	c, err := s.calendarRepo.GetByID(ctx, id)
	if err != nil {
		return calendar.CalendarResponse{}, err
	}
	return calendar.ToCalendarResponse(c), nil
}

// GetPeriods implements calendar.PeriodCatalog.
func (s *periodCatalogImpl) GetPeriods(ctx context.Context, calendarID string) ([]calendar.CalendarPeriod, error) {
	// Existence check first so an unknown calendar surfaces as not-found
	// rather than as an empty period list.
	if _, err := s.calendarRepo.GetByID(ctx, calendarID); err != nil {
		return nil, err
	}
	return s.calendarRepo.GetPeriods(ctx, calendarID)
}
