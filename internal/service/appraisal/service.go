package appraisal

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/group"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/template"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type appraisalServiceImpl struct {
	calendarRepo calendar.CalendarRepository
	groupRepo    group.GroupRepository
	templateRepo template.TemplateRepository
	cycleRepo    appraisal.CycleRepository
	filter       *EligibilityFilter
	computer     *ScheduleComputer
	now          func() time.Time
}

func NewAppraisalService(
	calendarRepo calendar.CalendarRepository,
	groupRepo group.GroupRepository,
	templateRepo template.TemplateRepository,
	cycleRepo appraisal.CycleRepository,
) appraisal.AppraisalService {
	return &appraisalServiceImpl{
		calendarRepo: calendarRepo,
		groupRepo:    groupRepo,
		templateRepo: templateRepo,
		cycleRepo:    cycleRepo,
		filter:       NewEligibilityFilter(),
		computer:     NewScheduleComputer(),
		now:          time.Now,
	}
}

// PreviewEligibility implements appraisal.AppraisalService.
func (s *appraisalServiceImpl) PreviewEligibility(ctx context.Context, req appraisal.EligibilityPreviewRequest) (appraisal.EligibilityResponse, error) {
	if err := req.Validate(); err != nil {
		return appraisal.EligibilityResponse{}, err
	}
	rule, err := req.EligibilityRule.ToRule()
	if err != nil {
		return appraisal.EligibilityResponse{}, err
	}

	members, err := s.groupRepo.ListMembers(ctx, req.GroupID)
	if err != nil {
		return appraisal.EligibilityResponse{}, err
	}

	result := s.filter.Evaluate(members, rule, dates.FromTime(s.now()))
	return appraisal.ToEligibilityResponse(result), nil
}

// PreviewSchedule implements appraisal.AppraisalService.
func (s *appraisalServiceImpl) PreviewSchedule(ctx context.Context, req appraisal.SchedulePreviewRequest) ([]appraisal.PeriodScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	full := appraisal.CreateAppraisalCycleRequest{
		CalendarID:        req.CalendarID,
		SelectedPeriodIDs: req.SelectedPeriodIDs,
		TimingConfigs:     req.TimingConfigs,
		UseGlobalTiming:   req.UseGlobalTiming,
		PublishPolicy:     req.PublishPolicy,
	}
	init, err := full.ToInitiationRequest()
	if err != nil {
		return nil, err
	}

	schedules, err := s.computeSchedules(ctx, init, dates.FromTime(s.now()))
	if err != nil {
		return nil, err
	}

	responses := make([]appraisal.PeriodScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		responses = append(responses, appraisal.ToPeriodScheduleResponse(sch))
	}
	return responses, nil
}

// Submit implements appraisal.AppraisalService.
//
// Semantic checks run fail-fast in a fixed order: content requirement,
// period selection, timing-map completeness, then eligibility. Only
// after all of them pass does any schedule get computed, so a rejected
// submission never produces partial output.
func (s *appraisalServiceImpl) Submit(ctx context.Context, req appraisal.CreateAppraisalCycleRequest) (appraisal.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return appraisal.CycleResponse{}, err
	}
	init, err := req.ToInitiationRequest()
	if err != nil {
		return appraisal.CycleResponse{}, err
	}

	cycle, err := s.finalize(ctx, companyIDFromContext(ctx), init)
	if err != nil {
		return appraisal.CycleResponse{}, err
	}

	created, err := s.cycleRepo.Create(ctx, cycle)
	if err != nil {
		return appraisal.CycleResponse{}, fmt.Errorf("failed to persist appraisal cycle: %w", err)
	}

	return appraisal.ToCycleResponse(created), nil
}

// GetCycle implements appraisal.AppraisalService.
func (s *appraisalServiceImpl) GetCycle(ctx context.Context, id string) (appraisal.CycleResponse, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, id, companyIDFromContext(ctx))
	if err != nil {
		return appraisal.CycleResponse{}, err
	}
	return appraisal.ToCycleResponse(cycle), nil
}

func (s *appraisalServiceImpl) finalize(ctx context.Context, companyID string, init appraisal.InitiationRequest) (appraisal.Cycle, error) {
	submittedOn := dates.FromTime(s.now())

	// 1. Content requirement for the appraisal type.
	if err := init.Type.ValidateContent(); err != nil {
		return appraisal.Cycle{}, err
	}

	// 2. A period selection, or the explicitly accepted global fallback.
	if len(init.SelectedPeriodIDs) == 0 && init.GlobalTiming == nil {
		return appraisal.Cycle{}, appraisal.ErrNoPeriodSelected
	}

	// 3. The timing map covers the selection exactly: no orphaned and no
	// missing entries.
	if err := checkTimingKeys(init); err != nil {
		return appraisal.Cycle{}, err
	}

	// 4. The exclusion rules leave at least one participant.
	members, err := s.groupRepo.ListMembers(ctx, init.GroupID)
	if err != nil {
		return appraisal.Cycle{}, err
	}
	eligibility := s.filter.Evaluate(members, init.Rule, submittedOn)
	if len(eligibility.IncludedIDs) == 0 {
		return appraisal.Cycle{}, appraisal.ErrNoEligibleEmployees
	}

	// Referenced templates must exist before the cycle is finalized.
	if init.Type.Kind == appraisal.TypeQuestionnaire {
		if _, err := s.templateRepo.GetByIDs(ctx, init.Type.TemplateIDs); err != nil {
			return appraisal.Cycle{}, err
		}
	}

	schedules, err := s.computeSchedules(ctx, init, submittedOn)
	if err != nil {
		return appraisal.Cycle{}, err
	}

	return appraisal.Cycle{
		ID:                  uuid.Must(uuid.NewV7()).String(),
		CompanyID:           companyID,
		GroupID:             init.GroupID,
		Type:                init.Type,
		Policy:              init.Policy,
		SubmittedOn:         submittedOn,
		Schedule:            schedules,
		EligibleEmployeeIDs: eligibility.IncludedIDs,
		ExcludedEmployees:   eligibility.Excluded,
	}, nil
}

// computeSchedules resolves the selected periods against the calendar
// catalog and computes every schedule entry, ordered by period start
// date. The global fallback path produces a single period-less entry.
func (s *appraisalServiceImpl) computeSchedules(ctx context.Context, init appraisal.InitiationRequest, submittedOn dates.Date) ([]appraisal.PeriodSchedule, error) {
	if len(init.SelectedPeriodIDs) == 0 {
		if init.GlobalTiming == nil {
			return nil, appraisal.ErrNoPeriodSelected
		}
		sched, err := s.computer.ComputeGlobalSchedule(*init.GlobalTiming, init.Policy, submittedOn)
		if err != nil {
			return nil, err
		}
		return []appraisal.PeriodSchedule{sched}, nil
	}

	if init.CalendarID == nil {
		return nil, fmt.Errorf("%w: periods selected without a calendar", appraisal.ErrPeriodNotInCalendar)
	}
	periods, err := s.calendarRepo.GetPeriods(ctx, *init.CalendarID)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]struct{}, len(init.SelectedPeriodIDs))
	for _, id := range init.SelectedPeriodIDs {
		selected[id] = struct{}{}
	}

	// The catalog returns periods ordered by start date; filtering keeps
	// that order for the output schedule.
	chosen := make([]calendar.CalendarPeriod, 0, len(selected))
	for _, p := range periods {
		if _, ok := selected[p.ID]; ok {
			chosen = append(chosen, p)
			delete(selected, p.ID)
		}
	}
	for id := range selected {
		return nil, fmt.Errorf("%w: %s", appraisal.ErrPeriodNotInCalendar, id)
	}

	return s.computer.ComputePeriodSchedules(chosen, init.TimingConfigs, init.Policy, submittedOn)
}

// checkTimingKeys enforces that the timing map key set equals the
// selected period id set exactly. On the global path exactly one
// fallback config applies and no per-period entries may be present.
func checkTimingKeys(init appraisal.InitiationRequest) error {
	if len(init.SelectedPeriodIDs) == 0 {
		if len(init.TimingConfigs) != 0 {
			return fmt.Errorf("%w: timing entries present without a period selection", appraisal.ErrIncompleteTimingConfig)
		}
		return nil
	}

	selected := make(map[string]struct{}, len(init.SelectedPeriodIDs))
	for _, id := range init.SelectedPeriodIDs {
		selected[id] = struct{}{}
		if _, ok := init.TimingConfigs[id]; !ok {
			return fmt.Errorf("%w: missing timing for period %s", appraisal.ErrIncompleteTimingConfig, id)
		}
	}
	for id := range init.TimingConfigs {
		if _, ok := selected[id]; !ok {
			return fmt.Errorf("%w: orphaned timing for period %s", appraisal.ErrIncompleteTimingConfig, id)
		}
	}
	return nil
}

// companyIDFromContext pulls the tenant id out of the verified JWT.
// Requests arriving outside the HTTP layer (tests, internal callers)
// carry no token and get an empty tenant.
func companyIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	companyID, _ := claims["company_id"].(string)
	return companyID
}
