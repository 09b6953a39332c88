package calendar

import (
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
)

// Calendar is a recurring frequency calendar (e.g. "FY2025 Quarterly").
// Its periods are an ordered, non-overlapping sequence of dated intervals.
type Calendar struct {
	ID          string
	Code        string
	Description string
	StartDate   dates.Date
	EndDate     dates.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalendarPeriod is one dated interval of a calendar, e.g. a quarter.
type CalendarPeriod struct {
	ID          string
	CalendarID  string
	DisplayName string
	StartDate   dates.Date
	EndDate     dates.Date
}
