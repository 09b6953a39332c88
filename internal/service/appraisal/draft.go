package appraisal

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
)

// CycleDraft is the caller-owned working state of one appraisal
// configuration session. It belongs to exactly one session until it is
// collapsed into an InitiationRequest; only the finalized cycle is
// shareable.
//
// The only suspending operation is the period fetch triggered by a
// calendar selection change. If the selection changes again while a
// fetch is in flight, the earlier fetch's result is discarded by
// comparing the calendar id the fetch was started for against the
// currently commanded one. Stale results are rejected, never applied;
// there is no timer-based cancellation.
type CycleDraft struct {
	catalog calendar.PeriodCatalog

	mu          sync.Mutex
	calendarID  *string
	periods     []calendar.CalendarPeriod
	selectedIDs []string
	timing      *TimingResolver
	rule        appraisal.EligibilityRule
}

func NewCycleDraft(catalog calendar.PeriodCatalog) *CycleDraft {
	return &CycleDraft{
		catalog: catalog,
		timing:  NewTimingResolver(),
	}
}

// SelectCalendar commands a new calendar selection and fetches its
// periods. Safe to call concurrently with an in-flight fetch; only the
// fetch matching the latest commanded selection gets applied.
func (d *CycleDraft) SelectCalendar(ctx context.Context, calendarID string) error {
	d.mu.Lock()
	commanded := calendarID
	d.calendarID = &commanded
	d.mu.Unlock()

	periods, err := d.catalog.GetPeriods(ctx, calendarID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.calendarID == nil || *d.calendarID != calendarID {
		// Selection moved on while this fetch was in flight.
		return nil
	}
	d.periods = periods
	// Periods of the previous calendar are no longer selectable. Timing
	// edits stay cached for the session, so reselecting an id restores
	// its values.
	d.selectedIDs = nil
	d.timing.ApplySelection(nil)
	return nil
}

// ClearCalendar returns the draft to the no-calendar state where the
// single global fallback config applies.
func (d *CycleDraft) ClearCalendar() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calendarID = nil
	d.periods = nil
	d.selectedIDs = nil
	d.timing.ApplySelection(nil)
}

// SelectPeriods replaces the period selection. Every id must belong to
// the currently fetched calendar. Timing edits made earlier in the
// session are preserved for ids that remain or return.
func (d *CycleDraft) SelectPeriods(ids []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	known := make(map[string]struct{}, len(d.periods))
	for _, p := range d.periods {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %s", appraisal.ErrPeriodNotInCalendar, id)
		}
	}

	d.selectedIDs = append([]string(nil), ids...)
	d.timing.ApplySelection(ids)
	return nil
}

// SetTiming records a user edit for one selected period.
func (d *CycleDraft) SetTiming(periodID string, cfg appraisal.TimingConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timing.Set(periodID, cfg)
}

// SetGlobalTiming records a user edit of the global fallback config.
func (d *CycleDraft) SetGlobalTiming(cfg appraisal.TimingConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timing.SetGlobal(cfg)
}

func (d *CycleDraft) SetEligibilityRule(rule appraisal.EligibilityRule) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rule = rule
}

// Timing returns the current config for a selected period.
func (d *CycleDraft) Timing(periodID string) (appraisal.TimingConfig, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timing.Get(periodID)
}

// Periods returns a copy of the fetched periods of the commanded calendar.
func (d *CycleDraft) Periods() []calendar.CalendarPeriod {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]calendar.CalendarPeriod(nil), d.periods...)
}

// BuildRequest collapses the draft into the immutable submission input.
// The draft stays usable afterwards; the returned request does not alias
// draft state.
func (d *CycleDraft) BuildRequest(groupID string, appraisalType appraisal.AppraisalType, policy appraisal.PublishPolicy) appraisal.InitiationRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	req := appraisal.InitiationRequest{
		GroupID:           groupID,
		Type:              appraisalType,
		SelectedPeriodIDs: append([]string(nil), d.selectedIDs...),
		TimingConfigs:     d.timing.Snapshot(),
		Rule:              d.rule,
		Policy:            policy,
	}
	if d.calendarID != nil {
		id := *d.calendarID
		req.CalendarID = &id
	} else {
		global := d.timing.ResolveGlobal()
		req.GlobalTiming = &global
	}
	return req
}
