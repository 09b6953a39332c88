package appraisal

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog serves canned periods per calendar id. An optional
// blockOn channel lets a test hold one fetch in flight while the draft
// moves on; onFetch fires when a fetch enters.
type stubCatalog struct {
	periods map[string][]calendar.CalendarPeriod
	blockOn map[string]chan struct{}
	onFetch func(calendarID string)
}

func (s *stubCatalog) ListCalendars(ctx context.Context) ([]calendar.CalendarResponse, error) {
	return nil, nil
}

func (s *stubCatalog) GetCalendar(ctx context.Context, id string) (calendar.CalendarResponse, error) {
	if _, ok := s.periods[id]; !ok {
		return calendar.CalendarResponse{}, calendar.ErrCalendarNotFound
	}
	return calendar.CalendarResponse{ID: id}, nil
}

func (s *stubCatalog) GetPeriods(ctx context.Context, calendarID string) ([]calendar.CalendarPeriod, error) {
	if s.onFetch != nil {
		s.onFetch(calendarID)
	}
	if ch, ok := s.blockOn[calendarID]; ok {
		<-ch
	}
	periods, ok := s.periods[calendarID]
	if !ok {
		return nil, calendar.ErrCalendarNotFound
	}
	return periods, nil
}

func newDraftCatalog() *stubCatalog {
	return &stubCatalog{
		periods: map[string][]calendar.CalendarPeriod{
			"cal-q": {
				quarterPeriod("q1", 2025, time.March, 31),
				quarterPeriod("q2", 2025, time.June, 30),
			},
			"cal-h": {
				{ID: "h1", CalendarID: "cal-h", DisplayName: "H1"},
				{ID: "h2", CalendarID: "cal-h", DisplayName: "H2"},
			},
		},
		blockOn: map[string]chan struct{}{},
	}
}

func TestCycleDraft_SelectCalendarFetchesPeriods(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-q"))

	periods := draft.Periods()
	require.Len(t, periods, 2)
	assert.Equal(t, "q1", periods[0].ID)
}

func TestCycleDraft_SelectCalendarUnknownID(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	err := draft.SelectCalendar(context.Background(), "cal-missing")
	assert.ErrorIs(t, err, calendar.ErrCalendarNotFound)
}

func TestCycleDraft_StaleFetchIsDiscarded(t *testing.T) {
	t.Parallel()

	catalog := newDraftCatalog()
	release := make(chan struct{})
	started := make(chan struct{})
	catalog.blockOn["cal-q"] = release
	catalog.onFetch = func(calendarID string) {
		if calendarID == "cal-q" {
			close(started)
		}
	}

	draft := NewCycleDraft(catalog)

	done := make(chan error, 1)
	go func() {
		done <- draft.SelectCalendar(context.Background(), "cal-q")
	}()
	<-started

	// The user changes their mind while the first fetch hangs.
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-h"))
	require.NoError(t, draft.SelectPeriods([]string{"h1"}))

	// The slow fetch finally returns; its result must not clobber the
	// newer selection.
	close(release)
	require.NoError(t, <-done)

	periods := draft.Periods()
	require.Len(t, periods, 2)
	assert.Equal(t, "h1", periods[0].ID)

	_, ok := draft.Timing("h1")
	assert.True(t, ok, "period selection of the newer calendar must survive")
	_, ok = draft.Timing("q1")
	assert.False(t, ok)
}

func TestCycleDraft_SelectPeriodsRejectsForeignID(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-q"))

	err := draft.SelectPeriods([]string{"q1", "h1"})
	assert.ErrorIs(t, err, appraisal.ErrPeriodNotInCalendar)
}

func TestCycleDraft_TimingEditsSurviveToggle(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-q"))
	require.NoError(t, draft.SelectPeriods([]string{"q1", "q2"}))

	edited := appraisal.TimingConfig{DaysToInitiate: 7, DaysToClose: 45, NumberOfReminders: 5}
	require.NoError(t, draft.SetTiming("q1", edited))

	require.NoError(t, draft.SelectPeriods([]string{"q2"}))
	_, ok := draft.Timing("q1")
	require.False(t, ok)

	require.NoError(t, draft.SelectPeriods([]string{"q1", "q2"}))
	cfg, ok := draft.Timing("q1")
	require.True(t, ok)
	assert.Equal(t, edited, cfg)
}

func TestCycleDraft_BuildRequestWithCalendar(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-q"))
	require.NoError(t, draft.SelectPeriods([]string{"q1"}))
	draft.SetEligibilityRule(appraisal.EligibilityRule{ExcludeTenureUnderOneYear: true})

	req := draft.BuildRequest("grp-1", appraisal.AppraisalType{
		Kind:        appraisal.TypeQuestionnaire,
		TemplateIDs: []string{"tpl-1"},
	}, appraisal.PublishPerCalendarSchedule)

	require.NotNil(t, req.CalendarID)
	assert.Equal(t, "cal-q", *req.CalendarID)
	assert.Equal(t, []string{"q1"}, req.SelectedPeriodIDs)
	assert.Nil(t, req.GlobalTiming)
	assert.True(t, req.Rule.ExcludeTenureUnderOneYear)
	require.Contains(t, req.TimingConfigs, "q1")

	// The request must not alias draft state.
	require.NoError(t, draft.SelectPeriods(nil))
	assert.Equal(t, []string{"q1"}, req.SelectedPeriodIDs)
	assert.Contains(t, req.TimingConfigs, "q1")
}

func TestCycleDraft_BuildRequestGlobalFallback(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	global := appraisal.TimingConfig{DaysToInitiate: 3, DaysToClose: 14, NumberOfReminders: 2}
	require.NoError(t, draft.SetGlobalTiming(global))

	req := draft.BuildRequest("grp-1", appraisal.AppraisalType{Kind: appraisal.TypeOKR}, appraisal.PublishImmediate)

	assert.Nil(t, req.CalendarID)
	assert.Empty(t, req.SelectedPeriodIDs)
	require.NotNil(t, req.GlobalTiming)
	assert.Equal(t, global, *req.GlobalTiming)
}

func TestCycleDraft_ClearCalendar(t *testing.T) {
	t.Parallel()

	draft := NewCycleDraft(newDraftCatalog())
	require.NoError(t, draft.SelectCalendar(context.Background(), "cal-q"))
	require.NoError(t, draft.SelectPeriods([]string{"q1"}))

	draft.ClearCalendar()

	assert.Empty(t, draft.Periods())
	req := draft.BuildRequest("grp-1", appraisal.AppraisalType{Kind: appraisal.TypeOKR}, appraisal.PublishImmediate)
	assert.Nil(t, req.CalendarID)
	require.NotNil(t, req.GlobalTiming)
}
