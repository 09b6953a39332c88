package http

import (
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	ListCalendars(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetPeriods(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	catalog calendar.PeriodCatalog
}

func NewCalendarHandler(catalog calendar.PeriodCatalog) CalendarHandler {
	return &calendarHandlerImpl{catalog: catalog}
}

// ListCalendars implements CalendarHandler.
func (h *calendarHandlerImpl) ListCalendars(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListCalendars(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetCalendar implements CalendarHandler.
func (h *calendarHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarID")

	result, err := h.catalog.GetCalendar(r.Context(), calendarID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetPeriods implements CalendarHandler.
func (h *calendarHandlerImpl) GetPeriods(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarID")

	periods, err := h.catalog.GetPeriods(r.Context(), calendarID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]calendar.CalendarPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, calendar.ToPeriodResponse(p))
	}
	response.Success(w, result)
}
