package group

import "time"

// AppraisalGroup is a named set of employees that one appraisal cycle
// covers. Membership is managed elsewhere; the engine only reads it.
type AppraisalGroup struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
