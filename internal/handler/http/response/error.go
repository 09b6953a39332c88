package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/group"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/template"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Appraisal submission errors
	case errors.Is(err, appraisal.ErrMissingContent):
		UnprocessableEntity(w, "MISSING_CONTENT", err.Error())
	case errors.Is(err, appraisal.ErrNoPeriodSelected):
		UnprocessableEntity(w, "NO_PERIOD_SELECTED", err.Error())
	case errors.Is(err, appraisal.ErrIncompleteTimingConfig):
		UnprocessableEntity(w, "INCOMPLETE_TIMING_CONFIG", err.Error())
	case errors.Is(err, appraisal.ErrInvalidTimingConfig):
		UnprocessableEntity(w, "INVALID_TIMING_CONFIG", err.Error())
	case errors.Is(err, appraisal.ErrPeriodNotInCalendar):
		UnprocessableEntity(w, "PERIOD_NOT_IN_CALENDAR", err.Error())
	case errors.Is(err, appraisal.ErrNoEligibleEmployees):
		UnprocessableEntity(w, "NO_ELIGIBLE_EMPLOYEES", err.Error())
	case errors.Is(err, appraisal.ErrCycleNotFound):
		NotFound(w, "Appraisal cycle not found")

	// Calendar errors
	case errors.Is(err, calendar.ErrCalendarNotFound):
		NotFound(w, "Calendar not found")
	case errors.Is(err, calendar.ErrPeriodFetchFailed):
		InternalServerError(w, "Calendar period fetch failed")

	// Collaborator store errors
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Appraisal group not found")
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Questionnaire template not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
