package http

import (
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/group"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GroupHandler interface {
	ListGroups(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
}

type groupHandlerImpl struct {
	groupRepo group.GroupRepository
}

func NewGroupHandler(groupRepo group.GroupRepository) GroupHandler {
	return &groupHandlerImpl{groupRepo: groupRepo}
}

// ListGroups implements GroupHandler.
func (h *groupHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]group.GroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, group.GroupResponse{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
		})
	}
	response.Success(w, result)
}

// GetGroup implements GroupHandler. The response includes members so the
// configuration UI can drive the manual-exclusion picker.
func (h *groupHandlerImpl) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	g, err := h.groupRepo.GetByID(r.Context(), groupID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	members, err := h.groupRepo.ListMembers(r.Context(), groupID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := group.GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
	for _, m := range members {
		result.Members = append(result.Members, group.ToMemberResponse(m))
	}
	response.Success(w, result)
}
