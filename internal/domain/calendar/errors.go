package calendar

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrPeriodFetchFailed wraps a failed period-detail fetch. The engine
	// defines no retry policy; callers decide whether to retry.
	ErrPeriodFetchFailed = errors.New("calendar period fetch failed")
)
