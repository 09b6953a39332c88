package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppraisalHandler interface {
	PreviewEligibility(w http.ResponseWriter, r *http.Request)
	PreviewSchedule(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
}

type appraisalHandlerImpl struct {
	appraisalService appraisal.AppraisalService
}

func NewAppraisalHandler(appraisalService appraisal.AppraisalService) AppraisalHandler {
	return &appraisalHandlerImpl{
		appraisalService: appraisalService,
	}
}

// PreviewEligibility implements AppraisalHandler.
func (h *appraisalHandlerImpl) PreviewEligibility(w http.ResponseWriter, r *http.Request) {
	var req appraisal.EligibilityPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.appraisalService.PreviewEligibility(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PreviewSchedule implements AppraisalHandler.
func (h *appraisalHandlerImpl) PreviewSchedule(w http.ResponseWriter, r *http.Request) {
	var req appraisal.SchedulePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.appraisalService.PreviewSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Submit implements AppraisalHandler.
func (h *appraisalHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req appraisal.CreateAppraisalCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.appraisalService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appraisal cycle submitted successfully", result)
}

// GetCycle implements AppraisalHandler.
func (h *appraisalHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "cycleID")

	result, err := h.appraisalService.GetCycle(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
