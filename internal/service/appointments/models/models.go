package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос списка записей за период
type ListAppointmentsRequest struct {
	From *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To   *time.Time `json:"to,omitempty"`   // Конец периода включительно (опционально)
}

// Response модели

// ClientResponse контактные данные клиента
type ClientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// AppointmentResponse запись клиента
type AppointmentResponse struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	StartAt         time.Time      `json:"startAt"`
	EndAt           time.Time      `json:"endAt"`
	DurationMinutes int            `json:"durationMinutes"`
	Service         string         `json:"service,omitempty"`
	Client          ClientResponse `json:"client"`
	Notes           *string        `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		Date:            a.Date.Format(domain.DateFormat),
		Time:            a.Time,
		StartAt:         a.Start,
		EndAt:           a.Start.Add(time.Duration(a.DurationMinutes) * time.Minute),
		DurationMinutes: a.DurationMinutes,
		Service:         a.Service,
		Client: ClientResponse{
			Name:  a.Client.Name,
			Email: a.Client.Email,
			Phone: a.Client.Phone,
		},
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(list []domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromDomainAppointment(&list[i]))
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
