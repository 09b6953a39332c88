package calendar

type CalendarResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CalendarPeriodResponse struct {
	ID          string `json:"id"`
	CalendarID  string `json:"calendar_id"`
	DisplayName string `json:"display_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func ToCalendarResponse(c Calendar) CalendarResponse {
	return CalendarResponse{
		ID:          c.ID,
		Code:        c.Code,
		Description: c.Description,
		StartDate:   c.StartDate.String(),
		EndDate:     c.EndDate.String(),
	}
}

func ToPeriodResponse(p CalendarPeriod) CalendarPeriodResponse {
	return CalendarPeriodResponse{
		ID:          p.ID,
		CalendarID:  p.CalendarID,
		DisplayName: p.DisplayName,
		StartDate:   p.StartDate.String(),
		EndDate:     p.EndDate.String(),
	}
}
