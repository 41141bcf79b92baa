package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// ListAvailabilityRequest запрос доступности за период
type ListAvailabilityRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// DayAvailabilityResponse доступность одной даты
type DayAvailabilityResponse struct {
	Date          string   `json:"date"`
	Weekday       string   `json:"weekday"`
	Times         []string `json:"times"`
	StaffCount    int      `json:"staffCount"`
	MaxStaffCount int      `json:"maxStaffCount"`
	Bookable      bool     `json:"bookable"`
}

// AvailabilityListResponse список дат
type AvailabilityListResponse struct {
	Days  []DayAvailabilityResponse `json:"days"`
	Total int                       `json:"total"`
}

// DayTemplateResponse расписание дня недели
type DayTemplateResponse struct {
	Day        string  `json:"day"`
	IsOpen     bool    `json:"isOpen"`
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	StaffCount int     `json:"staffCount"`
}

// TemplateResponse недельный шаблон года
type TemplateResponse struct {
	Year int                   `json:"year"`
	Days []DayTemplateResponse `json:"days"`
}

// FromDomainDay конвертирует запись доступности в response
func FromDomainDay(d *domain.DayAvailability) DayAvailabilityResponse {
	times := make([]string, 0, len(d.Times))
	for _, t := range d.Times {
		times = append(times, types.MinutesToTimeString(t))
	}
	return DayAvailabilityResponse{
		Date:          d.Date.Format(domain.DateFormat),
		Weekday:       string(domain.WeekdayOf(d.Date)),
		Times:         times,
		StaffCount:    d.StaffCount,
		MaxStaffCount: d.MaxStaffCount,
		Bookable:      d.IsBookable(),
	}
}

// FromDomainDays конвертирует список записей доступности
func FromDomainDays(days []domain.DayAvailability) *AvailabilityListResponse {
	out := make([]DayAvailabilityResponse, 0, len(days))
	for i := range days {
		out = append(out, FromDomainDay(&days[i]))
	}
	return &AvailabilityListResponse{Days: out, Total: len(out)}
}

// FromDomainTemplate конвертирует шаблон в response
func FromDomainTemplate(year int, tmpl domain.WeeklyTemplate) *TemplateResponse {
	days := make([]DayTemplateResponse, 0, len(tmpl))
	for _, d := range tmpl {
		resp := DayTemplateResponse{Day: string(d.Day), IsOpen: d.IsOpen, StaffCount: d.StaffCount}
		if d.IsOpen {
			start, end := types.MinutesToTimeString(d.Start), types.MinutesToTimeString(d.End)
			resp.Start, resp.End = &start, &end
		}
		days = append(days, resp)
	}
	return &TemplateResponse{Year: year, Days: days}
}
