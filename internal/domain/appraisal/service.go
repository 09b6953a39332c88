package appraisal

import "context"

type AppraisalService interface {
	// PreviewEligibility runs the exclusion rules over a group without
	// submitting anything, so the configuration UI can show who is in.
	PreviewEligibility(ctx context.Context, req EligibilityPreviewRequest) (EligibilityResponse, error)

	// PreviewSchedule computes initiate/close/reminder dates for the
	// current selection without submitting.
	PreviewSchedule(ctx context.Context, req SchedulePreviewRequest) ([]PeriodScheduleResponse, error)

	// Submit validates the request, computes the schedule, finalizes the
	// cycle and persists it. All-or-nothing: no partial schedule is ever
	// produced.
	Submit(ctx context.Context, req CreateAppraisalCycleRequest) (CycleResponse, error)

	GetCycle(ctx context.Context, id string) (CycleResponse, error)
}
