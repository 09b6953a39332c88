package appraisal

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *dates.Date {
	d := dates.New(year, month, day)
	return &d
}

func TestEligibilityFilter_EmptyRuleIncludesEveryone(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	employees := []employee.Employee{
		{ID: "emp-1", DateOfJoining: datePtr(2020, time.January, 1)},
		{ID: "emp-2"},
	}

	result := filter.Evaluate(employees, appraisal.EligibilityRule{}, dates.New(2025, time.June, 1))

	assert.Equal(t, []string{"emp-1", "emp-2"}, result.IncludedIDs)
	assert.Empty(t, result.Excluded)
}

func TestEligibilityFilter_ExplicitExclusionWinsOverOtherRules(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	employees := []employee.Employee{
		// Also under one year of tenure, but the explicit exclusion is
		// checked first.
		{ID: "emp-1", DateOfJoining: datePtr(2025, time.March, 1)},
	}
	rule := appraisal.EligibilityRule{
		ExcludeTenureUnderOneYear: true,
		ExcludedEmployeeIDs:       []string{"emp-1"},
	}

	result := filter.Evaluate(employees, rule, dates.New(2025, time.June, 1))

	assert.Empty(t, result.IncludedIDs)
	assert.Equal(t, appraisal.ReasonExplicit, result.Excluded["emp-1"])
}

func TestEligibilityFilter_TenureRule(t *testing.T) {
	t.Parallel()

	asOf := dates.New(2025, time.June, 1)
	filter := NewEligibilityFilter()
	rule := appraisal.EligibilityRule{ExcludeTenureUnderOneYear: true}

	tests := []struct {
		name     string
		doj      *dates.Date
		included bool
	}{
		{"exactly one year", datePtr(2024, time.June, 1), true},
		{"over one year", datePtr(2024, time.May, 31), true},
		{"one day short", datePtr(2024, time.June, 2), false},
		{"joined recently", datePtr(2025, time.May, 1), false},
		{"no joining date recorded", nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := filter.Evaluate([]employee.Employee{{ID: "emp-1", DateOfJoining: tt.doj}}, rule, asOf)
			if tt.included {
				assert.Equal(t, []string{"emp-1"}, result.IncludedIDs)
			} else {
				require.Empty(t, result.IncludedIDs)
				assert.Equal(t, appraisal.ReasonTenure, result.Excluded["emp-1"])
			}
		})
	}
}

func TestEligibilityFilter_DOJRangeBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	rule := appraisal.EligibilityRule{
		DOJFromDate: datePtr(2023, time.January, 1),
		DOJTillDate: datePtr(2023, time.December, 31),
	}
	asOf := dates.New(2025, time.June, 1)

	tests := []struct {
		name     string
		doj      *dates.Date
		included bool
	}{
		{"on from bound", datePtr(2023, time.January, 1), true},
		{"on till bound", datePtr(2023, time.December, 31), true},
		{"inside range", datePtr(2023, time.July, 15), true},
		{"day before from", datePtr(2022, time.December, 31), false},
		{"day after till", datePtr(2024, time.January, 1), false},
		{"no joining date recorded", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := filter.Evaluate([]employee.Employee{{ID: "emp-1", DateOfJoining: tt.doj}}, rule, asOf)
			if tt.included {
				assert.Equal(t, []string{"emp-1"}, result.IncludedIDs)
			} else {
				require.Empty(t, result.IncludedIDs)
				assert.Equal(t, appraisal.ReasonDOJRange, result.Excluded["emp-1"])
			}
		})
	}
}

func TestEligibilityFilter_MissingDOJOnlyExcludedWhenRangeSet(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	employees := []employee.Employee{{ID: "emp-1"}}
	asOf := dates.New(2025, time.June, 1)

	// Tenure rule alone does not touch an unrecorded joining date.
	result := filter.Evaluate(employees, appraisal.EligibilityRule{ExcludeTenureUnderOneYear: true}, asOf)
	assert.Equal(t, []string{"emp-1"}, result.IncludedIDs)

	// A one-sided range is enough to exclude it.
	result = filter.Evaluate(employees, appraisal.EligibilityRule{DOJTillDate: datePtr(2024, time.January, 1)}, asOf)
	assert.Empty(t, result.IncludedIDs)
	assert.Equal(t, appraisal.ReasonDOJRange, result.Excluded["emp-1"])
}

func TestEligibilityFilter_LayeredRules(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	asOf := dates.New(2025, time.June, 1)
	employees := []employee.Employee{
		{ID: "emp-1", DateOfJoining: datePtr(2022, time.March, 10)},
		{ID: "emp-2", DateOfJoining: datePtr(2025, time.February, 1)},
		{ID: "emp-3", DateOfJoining: datePtr(2021, time.August, 20)},
		{ID: "emp-4", DateOfJoining: datePtr(2023, time.November, 5)},
	}
	rule := appraisal.EligibilityRule{
		ExcludeTenureUnderOneYear: true,
		DOJFromDate:               datePtr(2022, time.January, 1),
		ExcludedEmployeeIDs:       []string{"emp-4"},
	}

	result := filter.Evaluate(employees, rule, asOf)

	assert.Equal(t, []string{"emp-1"}, result.IncludedIDs)
	assert.Equal(t, appraisal.ReasonTenure, result.Excluded["emp-2"])
	assert.Equal(t, appraisal.ReasonDOJRange, result.Excluded["emp-3"])
	assert.Equal(t, appraisal.ReasonExplicit, result.Excluded["emp-4"])
}

func TestEligibilityFilter_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter()
	employees := []employee.Employee{
		{ID: "emp-3"}, {ID: "emp-1"}, {ID: "emp-2"},
	}

	result := filter.Evaluate(employees, appraisal.EligibilityRule{}, dates.New(2025, time.June, 1))

	assert.Equal(t, []string{"emp-3", "emp-1", "emp-2"}, result.IncludedIDs)
}
