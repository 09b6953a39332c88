package group

import "github.com/cmlabs-hris/appraisal-engine-go/internal/domain/employee"

type GroupResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Members     []MemberResponse `json:"members,omitempty"`
}

type MemberResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
}

func ToMemberResponse(e employee.Employee) MemberResponse {
	resp := MemberResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
	if e.DateOfJoining != nil {
		doj := e.DateOfJoining.String()
		resp.DateOfJoining = &doj
	}
	return resp
}
