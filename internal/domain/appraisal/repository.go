package appraisal

import "context"

type CycleRepository interface {
	// Create persists a finalized cycle atomically: the cycle row, its
	// schedule entries and its participant rows commit together or not
	// at all.
	Create(ctx context.Context, cycle Cycle) (Cycle, error)
	GetByID(ctx context.Context, id string, companyID string) (Cycle, error)
}
