package http

import (
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/template"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http/response"
)

type TemplateHandler interface {
	ListTemplates(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateRepo template.TemplateRepository
}

func NewTemplateHandler(templateRepo template.TemplateRepository) TemplateHandler {
	return &templateHandlerImpl{templateRepo: templateRepo}
}

type templateResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTemplates implements TemplateHandler.
func (h *templateHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, templateResponse{ID: t.ID, Name: t.Name})
	}
	response.Success(w, result)
}
