package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/dates"
	"github.com/jackc/pgx/v5"
)

type cycleRepositoryImpl struct {
	db *database.DB
}

func NewCycleRepository(db *database.DB) appraisal.CycleRepository {
	return &cycleRepositoryImpl{db: db}
}

// Create implements appraisal.CycleRepository. The cycle row, its
// schedule entries, template references and participant rows commit in
// one transaction.
func (r *cycleRepositoryImpl) Create(ctx context.Context, cycle appraisal.Cycle) (appraisal.Cycle, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		err := q.QueryRow(txCtx, `
			INSERT INTO appraisal_cycles (id, company_id, group_id, appraisal_kind, document_ref, publish_policy, submitted_on, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			RETURNING created_at
		`, cycle.ID, cycle.CompanyID, cycle.GroupID, string(cycle.Type.Kind), cycle.Type.DocumentRef,
			string(cycle.Policy), cycle.SubmittedOn.Time()).Scan(&cycle.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert appraisal cycle: %w", err)
		}

		for _, templateID := range cycle.Type.TemplateIDs {
			if _, err := q.Exec(txCtx, `
				INSERT INTO appraisal_cycle_templates (cycle_id, template_id)
				VALUES ($1, $2)
			`, cycle.ID, templateID); err != nil {
				return fmt.Errorf("failed to insert cycle template: %w", err)
			}
		}

		for i, sched := range cycle.Schedule {
			reminders := make([]time.Time, 0, len(sched.ReminderDates))
			for _, d := range sched.ReminderDates {
				reminders = append(reminders, d.Time())
			}
			if _, err := q.Exec(txCtx, `
				INSERT INTO appraisal_cycle_schedules (cycle_id, position, period_id, initiate_date, close_date, reminder_dates)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, cycle.ID, i, sched.PeriodID, sched.InitiateDate.Time(), sched.CloseDate.Time(), reminders); err != nil {
				return fmt.Errorf("failed to insert cycle schedule: %w", err)
			}
		}

		for _, employeeID := range cycle.EligibleEmployeeIDs {
			if _, err := q.Exec(txCtx, `
				INSERT INTO appraisal_cycle_participants (cycle_id, employee_id, exclusion_reason)
				VALUES ($1, $2, NULL)
			`, cycle.ID, employeeID); err != nil {
				return fmt.Errorf("failed to insert cycle participant: %w", err)
			}
		}
		for employeeID, reason := range cycle.ExcludedEmployees {
			if _, err := q.Exec(txCtx, `
				INSERT INTO appraisal_cycle_participants (cycle_id, employee_id, exclusion_reason)
				VALUES ($1, $2, $3)
			`, cycle.ID, employeeID, string(reason)); err != nil {
				return fmt.Errorf("failed to insert excluded participant: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return appraisal.Cycle{}, err
	}
	return cycle, nil
}

// GetByID implements appraisal.CycleRepository.
func (r *cycleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (appraisal.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	var cycle appraisal.Cycle
	var kind, policy string
	var submittedOn time.Time
	err := q.QueryRow(ctx, `
		SELECT id, company_id, group_id, appraisal_kind, document_ref, publish_policy, submitted_on, created_at
		FROM appraisal_cycles
		WHERE id = $1 AND company_id = $2
	`, id, companyID).Scan(
		&cycle.ID, &cycle.CompanyID, &cycle.GroupID, &kind, &cycle.Type.DocumentRef,
		&policy, &submittedOn, &cycle.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appraisal.Cycle{}, appraisal.ErrCycleNotFound
		}
		return appraisal.Cycle{}, fmt.Errorf("failed to get appraisal cycle: %w", err)
	}
	cycle.Type.Kind = appraisal.AppraisalTypeKind(kind)
	cycle.Policy = appraisal.PublishPolicy(policy)
	cycle.SubmittedOn = dates.FromTime(submittedOn)

	if err := r.loadTemplates(ctx, &cycle); err != nil {
		return appraisal.Cycle{}, err
	}
	if err := r.loadSchedule(ctx, &cycle); err != nil {
		return appraisal.Cycle{}, err
	}
	if err := r.loadParticipants(ctx, &cycle); err != nil {
		return appraisal.Cycle{}, err
	}
	return cycle, nil
}

func (r *cycleRepositoryImpl) loadTemplates(ctx context.Context, cycle *appraisal.Cycle) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT template_id FROM appraisal_cycle_templates WHERE cycle_id = $1
	`, cycle.ID)
	if err != nil {
		return fmt.Errorf("failed to load cycle templates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var templateID string
		if err := rows.Scan(&templateID); err != nil {
			return fmt.Errorf("failed to scan cycle template: %w", err)
		}
		cycle.Type.TemplateIDs = append(cycle.Type.TemplateIDs, templateID)
	}
	return rows.Err()
}

func (r *cycleRepositoryImpl) loadSchedule(ctx context.Context, cycle *appraisal.Cycle) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT period_id, initiate_date, close_date, reminder_dates
		FROM appraisal_cycle_schedules
		WHERE cycle_id = $1
		ORDER BY position
	`, cycle.ID)
	if err != nil {
		return fmt.Errorf("failed to load cycle schedule: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sched appraisal.PeriodSchedule
		var initiate, closeDate time.Time
		var reminders []time.Time
		if err := rows.Scan(&sched.PeriodID, &initiate, &closeDate, &reminders); err != nil {
			return fmt.Errorf("failed to scan cycle schedule: %w", err)
		}
		sched.InitiateDate = dates.FromTime(initiate)
		sched.CloseDate = dates.FromTime(closeDate)
		for _, rem := range reminders {
			sched.ReminderDates = append(sched.ReminderDates, dates.FromTime(rem))
		}
		cycle.Schedule = append(cycle.Schedule, sched)
	}
	return rows.Err()
}

func (r *cycleRepositoryImpl) loadParticipants(ctx context.Context, cycle *appraisal.Cycle) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, exclusion_reason
		FROM appraisal_cycle_participants
		WHERE cycle_id = $1
	`, cycle.ID)
	if err != nil {
		return fmt.Errorf("failed to load cycle participants: %w", err)
	}
	defer rows.Close()

	cycle.ExcludedEmployees = make(map[string]appraisal.ExclusionReason)
	for rows.Next() {
		var employeeID string
		var reason *string
		if err := rows.Scan(&employeeID, &reason); err != nil {
			return fmt.Errorf("failed to scan cycle participant: %w", err)
		}
		if reason == nil {
			cycle.EligibleEmployeeIDs = append(cycle.EligibleEmployeeIDs, employeeID)
		} else {
			cycle.ExcludedEmployees[employeeID] = appraisal.ExclusionReason(*reason)
		}
	}
	return rows.Err()
}
