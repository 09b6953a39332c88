package appraisal

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
)

// PublishPolicy controls when evaluation forms are released to employees.
type PublishPolicy string

const (
	// PublishImmediate releases every period at the submission date,
	// overriding the configured days-to-initiate.
	PublishImmediate PublishPolicy = "immediate"
	// PublishPerCalendarSchedule keeps the computed initiate dates; an
	// external trigger fires at each initiate date.
	PublishPerCalendarSchedule PublishPolicy = "per_calendar_schedule"
)

var PublishPolicyValues = []string{
	string(PublishImmediate),
	string(PublishPerCalendarSchedule),
}

type AppraisalTypeKind string

const (
	TypeQuestionnaire AppraisalTypeKind = "questionnaire"
	TypeKPI           AppraisalTypeKind = "kpi"
	TypeMBO           AppraisalTypeKind = "mbo"
	TypeOKR           AppraisalTypeKind = "okr"
)

var AppraisalTypeKindValues = []string{
	string(TypeQuestionnaire),
	string(TypeKPI),
	string(TypeMBO),
	string(TypeOKR),
}

// AppraisalType is a tagged variant: the Kind selects which content
// fields are meaningful and which content requirement applies.
type AppraisalType struct {
	Kind AppraisalTypeKind

	// TemplateIDs is the questionnaire content; meaningful only for
	// TypeQuestionnaire.
	TemplateIDs []string

	// DocumentRef points at the uploaded KPI/MBO document; meaningful
	// only for TypeKPI and TypeMBO.
	DocumentRef string
}

// ValidateContent checks the per-variant content requirement.
func (t AppraisalType) ValidateContent() error {
	switch t.Kind {
	case TypeQuestionnaire:
		return t.validateQuestionnaire()
	case TypeKPI, TypeMBO:
		return t.validateDocument()
	case TypeOKR:
		// OKR cycles carry no attached content.
		return nil
	default:
		return fmt.Errorf("unknown appraisal type %q", t.Kind)
	}
}

func (t AppraisalType) validateQuestionnaire() error {
	if len(t.TemplateIDs) == 0 {
		return fmt.Errorf("%w: questionnaire cycle needs at least one template", ErrMissingContent)
	}
	return nil
}

func (t AppraisalType) validateDocument() error {
	if t.DocumentRef == "" {
		return fmt.Errorf("%w: %s cycle needs an attached document", ErrMissingContent, t.Kind)
	}
	return nil
}

// Timing defaults and bounds for per-period configuration.
const (
	DefaultDaysToInitiate    = 0
	DefaultDaysToClose       = 30
	DefaultNumberOfReminders = 3

	MinNumberOfReminders = 1
	MaxNumberOfReminders = 10
)

// TimingConfig holds the per-period (or global fallback) timing knobs.
type TimingConfig struct {
	DaysToInitiate    int
	DaysToClose       int
	NumberOfReminders int
}

// DefaultTimingConfig is the configuration a freshly selected period
// receives before the user edits it.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		DaysToInitiate:    DefaultDaysToInitiate,
		DaysToClose:       DefaultDaysToClose,
		NumberOfReminders: DefaultNumberOfReminders,
	}
}

func (c TimingConfig) Validate() error {
	if c.DaysToInitiate < 0 {
		return fmt.Errorf("%w: days_to_initiate must be >= 0", ErrInvalidTimingConfig)
	}
	if c.DaysToClose < 1 {
		return fmt.Errorf("%w: days_to_close must be >= 1", ErrInvalidTimingConfig)
	}
	if c.NumberOfReminders < MinNumberOfReminders || c.NumberOfReminders > MaxNumberOfReminders {
		return fmt.Errorf("%w: number_of_reminders must be between %d and %d",
			ErrInvalidTimingConfig, MinNumberOfReminders, MaxNumberOfReminders)
	}
	return nil
}

// ExclusionReason records why the eligibility filter rejected an employee.
type ExclusionReason string

const (
	ReasonExplicit ExclusionReason = "explicit"
	ReasonTenure   ExclusionReason = "tenure"
	ReasonDOJRange ExclusionReason = "doj_range"
)

// EligibilityRule is the layered exclusion configuration for one cycle.
// Zero value means "everybody in the group participates".
type EligibilityRule struct {
	ExcludeTenureUnderOneYear bool
	DOJFromDate               *dates.Date
	DOJTillDate               *dates.Date
	ExcludedEmployeeIDs       []string
}

// EligibilityResult is the outcome of evaluating a rule over a population.
type EligibilityResult struct {
	IncludedIDs []string
	Excluded    map[string]ExclusionReason
}

// InitiationRequest is the assembled working state of one in-progress
// cycle configuration, collapsed from the interactive session at the
// moment of submission. CalendarID nil with GlobalTiming set means the
// caller explicitly accepted the global fallback.
type InitiationRequest struct {
	GroupID           string
	Type              AppraisalType
	CalendarID        *string
	SelectedPeriodIDs []string
	TimingConfigs     map[string]TimingConfig
	GlobalTiming      *TimingConfig
	Rule              EligibilityRule
	Policy            PublishPolicy
}

// PeriodSchedule is the concrete schedule computed for one period, or
// for the global fallback when PeriodID is nil.
type PeriodSchedule struct {
	PeriodID      *string
	InitiateDate  dates.Date
	CloseDate     dates.Date
	ReminderDates []dates.Date
}

// Cycle is the immutable finalized submission. Once built it is never
// mutated and is safe to share read-only.
type Cycle struct {
	ID                  string
	CompanyID           string
	GroupID             string
	Type                AppraisalType
	Policy              PublishPolicy
	SubmittedOn         dates.Date
	Schedule            []PeriodSchedule
	EligibleEmployeeIDs []string
	ExcludedEmployees   map[string]ExclusionReason
	CreatedAt           time.Time
}
