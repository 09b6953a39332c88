package appraisal

import (
	"fmt"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
)

type ScheduleComputer struct {
}

func NewScheduleComputer() *ScheduleComputer {
	return &ScheduleComputer{}
}

// ComputePeriodSchedules turns the selected periods plus their timing
// configs into concrete initiate/close/reminder dates. All arithmetic is
// pure calendar-day addition on date components: no business-day
// skipping, no timezone conversion.
//
// Under PublishImmediate every initiate date is overridden to the
// submission date regardless of the configured days-to-initiate, and the
// close date is recomputed from that override with the same period's
// days-to-close.
func (c *ScheduleComputer) ComputePeriodSchedules(
	periods []calendar.CalendarPeriod,
	timings map[string]appraisal.TimingConfig,
	policy appraisal.PublishPolicy,
	submittedOn dates.Date,
) ([]appraisal.PeriodSchedule, error) {
	schedules := make([]appraisal.PeriodSchedule, 0, len(periods))
	for _, period := range periods {
		cfg, ok := timings[period.ID]
		if !ok {
			return nil, fmt.Errorf("%w: no timing config for period %s",
				appraisal.ErrIncompleteTimingConfig, period.ID)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		initiate := period.EndDate.AddDays(cfg.DaysToInitiate)
		if policy == appraisal.PublishImmediate {
			initiate = submittedOn
		}
		periodID := period.ID
		schedules = append(schedules, buildSchedule(&periodID, initiate, cfg))
	}
	return schedules, nil
}

// ComputeGlobalSchedule computes the single schedule entry used when no
// calendar is selected. With no period end date to anchor on, the
// submission date anchors the initiate computation.
func (c *ScheduleComputer) ComputeGlobalSchedule(
	cfg appraisal.TimingConfig,
	policy appraisal.PublishPolicy,
	submittedOn dates.Date,
) (appraisal.PeriodSchedule, error) {
	if err := cfg.Validate(); err != nil {
		return appraisal.PeriodSchedule{}, err
	}
	initiate := submittedOn.AddDays(cfg.DaysToInitiate)
	if policy == appraisal.PublishImmediate {
		initiate = submittedOn
	}
	return buildSchedule(nil, initiate, cfg), nil
}

func buildSchedule(periodID *string, initiate dates.Date, cfg appraisal.TimingConfig) appraisal.PeriodSchedule {
	closeDate := initiate.AddDays(cfg.DaysToClose)
	return appraisal.PeriodSchedule{
		PeriodID:      periodID,
		InitiateDate:  initiate,
		CloseDate:     closeDate,
		ReminderDates: reminderDates(initiate, closeDate, cfg.NumberOfReminders),
	}
}

// reminderDates spreads n reminders evenly across [initiate, close]:
// reminder i lands at initiate + i*span/(n+1) days, integer division.
// The sequence is deterministic, non-decreasing, and every entry stays
// within the window.
func reminderDates(initiate, closeDate dates.Date, n int) []dates.Date {
	span := initiate.DaysUntil(closeDate)
	reminders := make([]dates.Date, 0, n)
	for i := 1; i <= n; i++ {
		reminders = append(reminders, initiate.AddDays(i*span/(n+1)))
	}
	return reminders
}
