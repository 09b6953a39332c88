package group

import (
	"context"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/employee"
)

type GroupRepository interface {
	GetByID(ctx context.Context, id string) (AppraisalGroup, error)
	List(ctx context.Context) ([]AppraisalGroup, error)

	// ListMembers returns the employees belonging to the group. Returns
	// ErrGroupNotFound for an unknown group id.
	ListMembers(ctx context.Context, groupID string) ([]employee.Employee, error)
}
