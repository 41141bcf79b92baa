package get_week

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getWeek "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// WeekResponse HTTP response model
type WeekResponse struct {
	WeekStart string `json:"weekStart"`
	WeekEnd   string `json:"weekEnd"`
	GridStart string `json:"gridStart"`
	GridEnd   string `json:"gridEnd"`
	Days      []Day  `json:"days"`
}

// Day колонка недели
type Day struct {
	Date          string        `json:"date"`
	Weekday       string        `json:"weekday"`
	Open          bool          `json:"open"`
	WindowStart   *string       `json:"windowStart,omitempty"`
	WindowEnd     *string       `json:"windowEnd,omitempty"`
	FreeTimes     []string      `json:"freeTimes"`
	StaffCount    int           `json:"staffCount"`
	MaxStaffCount int           `json:"maxStaffCount"`
	Appointments  []Appointment `json:"appointments"`
}

// Appointment запись клиента на сетке недели
type Appointment struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	Service      string `json:"service,omitempty"`
	ClientName   string `json:"clientName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeek.Response) *WeekResponse {
	days := make([]Day, len(resp.Days))
	for i, d := range resp.Days {
		free := make([]string, len(d.FreeTimes))
		for j, t := range d.FreeTimes {
			free[j] = types.MinutesToTimeString(t)
		}

		appts := make([]Appointment, len(d.Appointments))
		for j, a := range d.Appointments {
			appts[j] = Appointment(a)
		}

		day := Day{
			Date:          d.Date.Format(domain.DateFormat),
			Weekday:       d.Weekday,
			Open:          d.Open,
			FreeTimes:     free,
			StaffCount:    d.StaffCount,
			MaxStaffCount: d.MaxStaffCount,
			Appointments:  appts,
		}
		if d.Open {
			start, end := types.MinutesToTimeString(d.WindowStart), types.MinutesToTimeString(d.WindowEnd)
			day.WindowStart, day.WindowEnd = &start, &end
		}
		days[i] = day
	}

	return &WeekResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:   resp.WeekEnd.Format(domain.DateFormat),
		GridStart: types.MinutesToTimeString(resp.GridStart),
		GridEnd:   types.MinutesToTimeString(resp.GridEnd),
		Days:      days,
	}
}
