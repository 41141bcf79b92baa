package cancel_appointment

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	cancelAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Reclaimed      bool     `json:"reclaimed"`
	AvailableTimes []string `json:"availableTimes"`
	StaffCount     int      `json:"staffCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelAppointmentResponse {
	times := make([]string, len(resp.AvailableTimes))
	for i, t := range resp.AvailableTimes {
		times[i] = types.MinutesToTimeString(t)
	}

	return &CancelAppointmentResponse{
		ID:             resp.ID,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time,
		Reclaimed:      resp.Reclaimed,
		AvailableTimes: times,
		StaffCount:     resp.StaffCount,
	}
}
