package save_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	saveAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/save_availability"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// SaveAvailabilityRequest HTTP request model
type SaveAvailabilityRequest struct {
	Days []DayTemplate `json:"days"`
}

// DayTemplate расписание дня недели
type DayTemplate struct {
	Day        string  `json:"day"`             // "Monday"
	IsOpen     bool    `json:"isOpen"`          // закрытые дни не разворачиваются
	Start      *string `json:"start,omitempty"` // "9:00am"
	End        *string `json:"end,omitempty"`   // "5:00pm"
	StaffCount int     `json:"staffCount"`
}

// SaveAvailabilityResponse HTTP response model
type SaveAvailabilityResponse struct {
	Year               int      `json:"year"`
	DaysWritten        int      `json:"daysWritten"`
	BookableDays       int      `json:"bookableDays"`
	KeptAppointments   int      `json:"keptAppointments"`
	OrphanAppointments []string `json:"orphanAppointments"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveAvailabilityRequest) ToUseCaseRequest(year int) (*saveAvailability.Request, error) {
	tmpl := make(domain.WeeklyTemplate, 0, len(r.Days))
	for _, d := range r.Days {
		day, err := domain.ParseWeekday(d.Day)
		if err != nil {
			return nil, err
		}

		entry := domain.DayTemplate{Day: day, IsOpen: d.IsOpen, StaffCount: d.StaffCount}
		if d.IsOpen {
			if d.Start == nil || d.End == nil {
				return nil, fmt.Errorf("%s: start and end are required for an open day", d.Day)
			}
			if entry.Start, err = types.ParseClockTime(*d.Start); err != nil {
				return nil, err
			}
			if entry.End, err = types.ParseClockTime(*d.End); err != nil {
				return nil, err
			}
		}
		tmpl = append(tmpl, entry)
	}

	return &saveAvailability.Request{Year: year, Template: tmpl}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAvailability.Response) *SaveAvailabilityResponse {
	orphans := resp.OrphanAppointments
	if orphans == nil {
		orphans = []string{}
	}
	return &SaveAvailabilityResponse{
		Year:               resp.Year,
		DaysWritten:        resp.DaysWritten,
		BookableDays:       resp.BookableDays,
		KeptAppointments:   resp.KeptAppointments,
		OrphanAppointments: orphans,
	}
}
