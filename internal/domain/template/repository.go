package template

import "context"

type TemplateRepository interface {
	List(ctx context.Context) ([]QuestionnaireTemplate, error)

	// GetByIDs returns the templates for the given ids. Returns
	// ErrTemplateNotFound when any id is unknown.
	GetByIDs(ctx context.Context, ids []string) ([]QuestionnaireTemplate, error)
}
