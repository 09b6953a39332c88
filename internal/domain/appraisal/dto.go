package appraisal

import (
	"strings"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/validator"
)

type AppraisalTypeRequest struct {
	Kind        string   `json:"kind"`
	TemplateIDs []string `json:"template_ids,omitempty"`
	DocumentRef string   `json:"document_ref,omitempty"`
}

type TimingConfigRequest struct {
	// PeriodID is nil for the single global fallback entry.
	PeriodID          *string `json:"period_id"`
	DaysToInitiate    int     `json:"days_to_initiate"`
	DaysToClose       int     `json:"days_to_close"`
	NumberOfReminders int     `json:"number_of_reminders"`
}

type EligibilityRuleRequest struct {
	ExcludeTenureUnderOneYear bool     `json:"exclude_tenure_under_one_year"`
	DOJFromDate               *string  `json:"doj_from_date,omitempty"`
	DOJTillDate               *string  `json:"doj_till_date,omitempty"`
	ExcludedEmployeeIDs       []string `json:"excluded_employee_ids,omitempty"`
}

type CreateAppraisalCycleRequest struct {
	GroupID           string                 `json:"group_id"`
	AppraisalType     AppraisalTypeRequest   `json:"appraisal_type"`
	CalendarID        *string                `json:"calendar_id,omitempty"`
	SelectedPeriodIDs []string               `json:"selected_period_ids,omitempty"`
	TimingConfigs     []TimingConfigRequest  `json:"timing_configs"`
	UseGlobalTiming   bool                   `json:"use_global_timing"`
	EligibilityRule   EligibilityRuleRequest `json:"eligibility_rule"`
	PublishPolicy     string                 `json:"publish_policy"`
}

func (r *CreateAppraisalCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_id",
			Message: "group_id is required",
		})
	}
	if !validator.IsInSlice(r.AppraisalType.Kind, AppraisalTypeKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "appraisal_type.kind",
			Message: "kind must be one of: " + strings.Join(AppraisalTypeKindValues, ", "),
		})
	}
	if !validator.IsInSlice(r.PublishPolicy, PublishPolicyValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "publish_policy",
			Message: "publish_policy must be one of: " + strings.Join(PublishPolicyValues, ", "),
		})
	}
	if r.CalendarID != nil && validator.IsEmpty(*r.CalendarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "calendar_id",
			Message: "calendar_id must not be blank when present",
		})
	}
	for i, id := range r.SelectedPeriodIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "selected_period_ids[" + validator.Itoa(i) + "]",
				Message: "period id must not be blank",
			})
		}
	}
	errs = append(errs, validateTimingConfigs(r.TimingConfigs)...)
	errs = append(errs, r.EligibilityRule.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateTimingConfigs(configs []TimingConfigRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, tc := range configs {
		field := "timing_configs[" + validator.Itoa(i) + "]"
		if tc.PeriodID != nil && validator.IsEmpty(*tc.PeriodID) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".period_id",
				Message: "period_id must not be blank when present",
			})
		}
		if tc.DaysToInitiate < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".days_to_initiate",
				Message: "days_to_initiate must be a non-negative number",
			})
		}
		if tc.DaysToClose < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".days_to_close",
				Message: "days_to_close must be at least 1",
			})
		}
		if tc.NumberOfReminders < MinNumberOfReminders || tc.NumberOfReminders > MaxNumberOfReminders {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".number_of_reminders",
				Message: "number_of_reminders must be between 1 and 10",
			})
		}
	}
	return errs
}

func (r *EligibilityRuleRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.DOJFromDate != nil {
		if _, ok := validator.IsValidDate(*r.DOJFromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "eligibility_rule.doj_from_date",
				Message: "invalid date format, use YYYY-MM-DD",
			})
		}
	}
	if r.DOJTillDate != nil {
		if _, ok := validator.IsValidDate(*r.DOJTillDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "eligibility_rule.doj_till_date",
				Message: "invalid date format, use YYYY-MM-DD",
			})
		}
	}
	for i, id := range r.ExcludedEmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "eligibility_rule.excluded_employee_ids[" + validator.Itoa(i) + "]",
				Message: "employee id must not be blank",
			})
		}
	}
	return errs
}

// ToInitiationRequest converts the validated DTO into the domain request.
// Call Validate first; date strings are assumed well-formed here.
func (r *CreateAppraisalCycleRequest) ToInitiationRequest() (InitiationRequest, error) {
	rule, err := r.EligibilityRule.ToRule()
	if err != nil {
		return InitiationRequest{}, err
	}

	req := InitiationRequest{
		GroupID: r.GroupID,
		Type: AppraisalType{
			Kind:        AppraisalTypeKind(r.AppraisalType.Kind),
			TemplateIDs: r.AppraisalType.TemplateIDs,
			DocumentRef: r.AppraisalType.DocumentRef,
		},
		CalendarID:        r.CalendarID,
		SelectedPeriodIDs: r.SelectedPeriodIDs,
		TimingConfigs:     make(map[string]TimingConfig),
		Rule:              rule,
		Policy:            PublishPolicy(r.PublishPolicy),
	}

	for _, tc := range r.TimingConfigs {
		cfg := TimingConfig{
			DaysToInitiate:    tc.DaysToInitiate,
			DaysToClose:       tc.DaysToClose,
			NumberOfReminders: tc.NumberOfReminders,
		}
		if tc.PeriodID == nil {
			global := cfg
			req.GlobalTiming = &global
			continue
		}
		req.TimingConfigs[*tc.PeriodID] = cfg
	}

	// The global fallback counts as accepted either by an explicit flag
	// or by sending the single period-less timing entry.
	if r.UseGlobalTiming && req.GlobalTiming == nil {
		global := DefaultTimingConfig()
		req.GlobalTiming = &global
	}

	return req, nil
}

func (r *EligibilityRuleRequest) ToRule() (EligibilityRule, error) {
	rule := EligibilityRule{
		ExcludeTenureUnderOneYear: r.ExcludeTenureUnderOneYear,
		ExcludedEmployeeIDs:       r.ExcludedEmployeeIDs,
	}
	if r.DOJFromDate != nil {
		d, err := dates.Parse(*r.DOJFromDate)
		if err != nil {
			return EligibilityRule{}, err
		}
		rule.DOJFromDate = &d
	}
	if r.DOJTillDate != nil {
		d, err := dates.Parse(*r.DOJTillDate)
		if err != nil {
			return EligibilityRule{}, err
		}
		rule.DOJTillDate = &d
	}
	return rule, nil
}

type EligibilityPreviewRequest struct {
	GroupID         string                 `json:"group_id"`
	EligibilityRule EligibilityRuleRequest `json:"eligibility_rule"`
}

func (r *EligibilityPreviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_id",
			Message: "group_id is required",
		})
	}
	errs = append(errs, r.EligibilityRule.validate()...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SchedulePreviewRequest struct {
	CalendarID        *string               `json:"calendar_id,omitempty"`
	SelectedPeriodIDs []string              `json:"selected_period_ids,omitempty"`
	TimingConfigs     []TimingConfigRequest `json:"timing_configs"`
	UseGlobalTiming   bool                  `json:"use_global_timing"`
	PublishPolicy     string                `json:"publish_policy"`
}

func (r *SchedulePreviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.PublishPolicy, PublishPolicyValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "publish_policy",
			Message: "publish_policy must be one of: " + strings.Join(PublishPolicyValues, ", "),
		})
	}
	errs = append(errs, validateTimingConfigs(r.TimingConfigs)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EligibilityResponse struct {
	IncludedIDs []string          `json:"included_ids"`
	Excluded    map[string]string `json:"excluded"`
}

func ToEligibilityResponse(result EligibilityResult) EligibilityResponse {
	resp := EligibilityResponse{
		IncludedIDs: result.IncludedIDs,
		Excluded:    make(map[string]string, len(result.Excluded)),
	}
	for id, reason := range result.Excluded {
		resp.Excluded[id] = string(reason)
	}
	return resp
}

type PeriodScheduleResponse struct {
	PeriodID      *string  `json:"period_id"`
	InitiateDate  string   `json:"initiate_date"`
	CloseDate     string   `json:"close_date"`
	ReminderDates []string `json:"reminder_dates"`
}

func ToPeriodScheduleResponse(s PeriodSchedule) PeriodScheduleResponse {
	resp := PeriodScheduleResponse{
		PeriodID:     s.PeriodID,
		InitiateDate: s.InitiateDate.String(),
		CloseDate:    s.CloseDate.String(),
	}
	for _, d := range s.ReminderDates {
		resp.ReminderDates = append(resp.ReminderDates, d.String())
	}
	return resp
}

type CycleResponse struct {
	ID                  string                   `json:"id"`
	GroupID             string                   `json:"group_id"`
	AppraisalType       AppraisalTypeRequest     `json:"appraisal_type"`
	PublishPolicy       string                   `json:"publish_policy"`
	SubmittedOn         string                   `json:"submitted_on"`
	Schedule            []PeriodScheduleResponse `json:"schedule"`
	EligibleEmployeeIDs []string                 `json:"eligible_employee_ids"`
	ExcludedEmployees   map[string]string        `json:"excluded_employees"`
	CreatedAt           string                   `json:"created_at"`
}

func ToCycleResponse(c Cycle) CycleResponse {
	resp := CycleResponse{
		ID:      c.ID,
		GroupID: c.GroupID,
		AppraisalType: AppraisalTypeRequest{
			Kind:        string(c.Type.Kind),
			TemplateIDs: c.Type.TemplateIDs,
			DocumentRef: c.Type.DocumentRef,
		},
		PublishPolicy:       string(c.Policy),
		SubmittedOn:         c.SubmittedOn.String(),
		EligibleEmployeeIDs: c.EligibleEmployeeIDs,
		ExcludedEmployees:   make(map[string]string, len(c.ExcludedEmployees)),
		CreatedAt:           c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, s := range c.Schedule {
		resp.Schedule = append(resp.Schedule, ToPeriodScheduleResponse(s))
	}
	for id, reason := range c.ExcludedEmployees {
		resp.ExcludedEmployees[id] = string(reason)
	}
	return resp
}
