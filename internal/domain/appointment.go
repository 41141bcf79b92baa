package domain

import "time"

// Client is the person the appointment is booked for.
type Client struct {
	Name  string
	Email string
	Phone string
}

// Appointment is a booked service visit occupying consecutive slots of one date.
type Appointment struct {
	ID              string
	Date            time.Time // calendar date, midnight
	Start           time.Time // date combined with the start time
	Time            string    // start time as submitted, "h:mmam|pm"
	DurationMinutes int
	Service         string
	Client          Client
	Notes           *string
	CreatedAt       time.Time
}

// StartMinutes is the start as minutes since midnight.
func (a *Appointment) StartMinutes() int {
	return MinutesOfDay(a.Start)
}

// EndMinutes is the end as minutes since midnight.
func (a *Appointment) EndMinutes() int {
	return a.StartMinutes() + a.DurationMinutes
}

// SlotsNeeded is how many grid slots a duration occupies, rounded up.
func SlotsNeeded(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return (durationMinutes + SlotMinutes - 1) / SlotMinutes
}
