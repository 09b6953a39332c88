package appraisal

import "errors"

var (
	// Validation errors, all caller-correctable and returned
	// synchronously. Submission fails fast on the first violation.
	ErrMissingContent         = errors.New("appraisal content requirement not met")
	ErrNoPeriodSelected       = errors.New("no calendar period selected and global fallback not accepted")
	ErrIncompleteTimingConfig = errors.New("timing configuration does not match selected periods")
	ErrInvalidTimingConfig    = errors.New("invalid timing configuration")
	ErrPeriodNotInCalendar    = errors.New("selected period does not belong to the selected calendar")
	ErrNoEligibleEmployees    = errors.New("no eligible employees after exclusion rules")

	ErrCycleNotFound = errors.New("appraisal cycle not found")
)
