package employee

import (
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
)

type Employee struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	Email     string

	// DateOfJoining is nil for employees whose joining date was never
	// recorded. Eligibility rules treat a missing date conservatively.
	DateOfJoining *dates.Date

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
