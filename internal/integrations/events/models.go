package events

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EventType тип события о записи
type EventType string

const (
	AppointmentBooked    EventType = "appointment.booked"
	AppointmentCancelled EventType = "appointment.cancelled"
)

// Event сообщение, публикуемое в Kafka
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"durationMinutes"`
	Service       string    `json:"service"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	ClientPhone   string    `json:"clientPhone"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewAppointmentEvent собирает событие по записи клиента
func NewAppointmentEvent(eventType EventType, appt domain.Appointment, occurredAt time.Time) Event {
	return Event{
		Type:          eventType,
		AppointmentID: appt.ID,
		Date:          appt.Date.Format(domain.DateFormat),
		Time:          appt.Time,
		Duration:      appt.DurationMinutes,
		Service:       appt.Service,
		ClientName:    appt.Client.Name,
		ClientEmail:   appt.Client.Email,
		ClientPhone:   appt.Client.Phone,
		OccurredAt:    occurredAt,
	}
}
