package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/jackc/pgx/v5"
)

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepositoryImpl{db: db}
}

// GetByID implements calendar.CalendarRepository.
func (r *calendarRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, description, start_date, end_date, created_at, updated_at
		FROM calendars
		WHERE id = $1
	`

	var c calendar.Calendar
	var startDate, endDate time.Time
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Code, &c.Description, &startDate, &endDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Calendar{}, calendar.ErrCalendarNotFound
		}
		return calendar.Calendar{}, fmt.Errorf("failed to get calendar: %w", err)
	}
	c.StartDate = dates.FromTime(startDate)
	c.EndDate = dates.FromTime(endDate)
	return c, nil
}

// List implements calendar.CalendarRepository.
func (r *calendarRepositoryImpl) List(ctx context.Context) ([]calendar.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, description, start_date, end_date, created_at, updated_at
		FROM calendars
		ORDER BY start_date, code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	defer rows.Close()

	var calendars []calendar.Calendar
	for rows.Next() {
		var c calendar.Calendar
		var startDate, endDate time.Time
		if err := rows.Scan(&c.ID, &c.Code, &c.Description, &startDate, &endDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calendar: %w", err)
		}
		c.StartDate = dates.FromTime(startDate)
		c.EndDate = dates.FromTime(endDate)
		calendars = append(calendars, c)
	}
	return calendars, rows.Err()
}

// GetPeriods implements calendar.CalendarRepository. Periods come back
// ordered by start date, which is the order the engine emits schedules in.
func (r *calendarRepositoryImpl) GetPeriods(ctx context.Context, calendarID string) ([]calendar.CalendarPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, calendar_id, display_name, start_date, end_date
		FROM calendar_periods
		WHERE calendar_id = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrPeriodFetchFailed, err)
	}
	defer rows.Close()

	var periods []calendar.CalendarPeriod
	for rows.Next() {
		var p calendar.CalendarPeriod
		var startDate, endDate time.Time
		if err := rows.Scan(&p.ID, &p.CalendarID, &p.DisplayName, &startDate, &endDate); err != nil {
			return nil, fmt.Errorf("%w: %v", calendar.ErrPeriodFetchFailed, err)
		}
		p.StartDate = dates.FromTime(startDate)
		p.EndDate = dates.FromTime(endDate)
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
