package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/group"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/jackc/pgx/v5"
)

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// GetByID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id string) (group.AppraisalGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM appraisal_groups
		WHERE id = $1
	`

	var g group.AppraisalGroup
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.CompanyID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return group.AppraisalGroup{}, group.ErrGroupNotFound
		}
		return group.AppraisalGroup{}, fmt.Errorf("failed to get appraisal group: %w", err)
	}
	return g, nil
}

// List implements group.GroupRepository.
func (r *groupRepositoryImpl) List(ctx context.Context) ([]group.AppraisalGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM appraisal_groups
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list appraisal groups: %w", err)
	}
	defer rows.Close()

	var groups []group.AppraisalGroup
	for rows.Next() {
		var g group.AppraisalGroup
		if err := rows.Scan(&g.ID, &g.CompanyID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appraisal group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// ListMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) ListMembers(ctx context.Context, groupID string) ([]employee.Employee, error) {
	if _, err := r.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.first_name, e.last_name, e.email, e.date_of_joining, e.created_at, e.updated_at
		FROM employees e
		JOIN appraisal_group_members m ON m.employee_id = e.id
		WHERE m.group_id = $1 AND e.deleted_at IS NULL
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	var members []employee.Employee
	for rows.Next() {
		var e employee.Employee
		var doj *time.Time
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.FirstName, &e.LastName, &e.Email, &doj, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		if doj != nil {
			d := dates.FromTime(*doj)
			e.DateOfJoining = &d
		}
		members = append(members, e)
	}
	return members, rows.Err()
}
