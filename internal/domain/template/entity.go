package template

import "time"

// QuestionnaireTemplate is a reusable evaluation form referenced by
// questionnaire-based appraisal cycles.
type QuestionnaireTemplate struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
