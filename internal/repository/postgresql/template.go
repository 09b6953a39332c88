package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/template"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// List implements template.TemplateRepository.
func (r *templateRepositoryImpl) List(ctx context.Context) ([]template.QuestionnaireTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM questionnaire_templates
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questionnaire templates: %w", err)
	}
	defer rows.Close()

	var templates []template.QuestionnaireTemplate
	for rows.Next() {
		var t template.QuestionnaireTemplate
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan questionnaire template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetByIDs implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]template.QuestionnaireTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM questionnaire_templates
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get questionnaire templates: %w", err)
	}
	defer rows.Close()

	found := make(map[string]template.QuestionnaireTemplate, len(ids))
	for rows.Next() {
		var t template.QuestionnaireTemplate
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan questionnaire template: %w", err)
		}
		found[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]template.QuestionnaireTemplate, 0, len(ids))
	for _, id := range ids {
		t, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", template.ErrTemplateNotFound, id)
		}
		templates = append(templates, t)
	}
	return templates, nil
}
