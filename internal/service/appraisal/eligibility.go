package appraisal

import (
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
)

type EligibilityFilter struct {
}

func NewEligibilityFilter() *EligibilityFilter {
	return &EligibilityFilter{}
}

// Evaluate splits a population into included ids and excluded ids with a
// reason. Checks apply per employee in precedence order, first match
// wins: explicit exclusion, then tenure, then DOJ range. All comparisons
// happen at calendar-date granularity, so the "from" bound is inclusive
// at start of day and the "till" bound is inclusive through end of day.
func (f *EligibilityFilter) Evaluate(employees []employee.Employee, rule appraisal.EligibilityRule, asOf dates.Date) appraisal.EligibilityResult {
	explicit := make(map[string]struct{}, len(rule.ExcludedEmployeeIDs))
	for _, id := range rule.ExcludedEmployeeIDs {
		explicit[id] = struct{}{}
	}

	result := appraisal.EligibilityResult{
		IncludedIDs: make([]string, 0, len(employees)),
		Excluded:    make(map[string]appraisal.ExclusionReason),
	}

	for _, emp := range employees {
		if _, ok := explicit[emp.ID]; ok {
			result.Excluded[emp.ID] = appraisal.ReasonExplicit
			continue
		}
		if rule.ExcludeTenureUnderOneYear && tenureUnderOneYear(emp.DateOfJoining, asOf) {
			result.Excluded[emp.ID] = appraisal.ReasonTenure
			continue
		}
		if reason, excluded := dojOutOfRange(emp.DateOfJoining, rule); excluded {
			result.Excluded[emp.ID] = reason
			continue
		}
		result.IncludedIDs = append(result.IncludedIDs, emp.ID)
	}

	return result
}

// tenureUnderOneYear reports whether the employee has been with the
// company for less than one full year as of the given date. An employee
// with no recorded joining date is not excluded by the tenure rule; the
// DOJ-range rules handle missing dates when a range is configured.
func tenureUnderOneYear(doj *dates.Date, asOf dates.Date) bool {
	if doj == nil {
		return false
	}
	return doj.AddYears(1).After(asOf)
}

func dojOutOfRange(doj *dates.Date, rule appraisal.EligibilityRule) (appraisal.ExclusionReason, bool) {
	if rule.DOJFromDate != nil {
		if doj == nil || doj.Before(*rule.DOJFromDate) {
			return appraisal.ReasonDOJRange, true
		}
	}
	if rule.DOJTillDate != nil {
		if doj == nil || doj.After(*rule.DOJTillDate) {
			return appraisal.ReasonDOJRange, true
		}
	}
	return "", false
}
