package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date        string  `json:"date"` // "2025-10-15"
	Time        string  `json:"time"` // "9:30am"
	Service     string  `json:"service"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	StartAt         string   `json:"startAt"`
	DurationMinutes int      `json:"durationMinutes"`
	Service         string   `json:"service,omitempty"`
	ClientName      string   `json:"clientName"`
	ClientEmail     string   `json:"clientEmail,omitempty"`
	ClientPhone     string   `json:"clientPhone,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	RemainingTimes  []string `json:"remainingTimes"`
	StaffCount      int      `json:"staffCount"`
	CreatedAt       string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Date:        date,
		Time:        r.Time,
		Service:     r.Service,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	remaining := make([]string, len(resp.RemainingTimes))
	for i, t := range resp.RemainingTimes {
		remaining[i] = types.MinutesToTimeString(t)
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Service:         resp.Service,
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		ClientPhone:     resp.ClientPhone,
		Notes:           resp.Notes,
		RemainingTimes:  remaining,
		StaffCount:      resp.StaffCount,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
