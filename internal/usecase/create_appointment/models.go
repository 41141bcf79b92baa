package create_appointment

import "time"

// Request модель запроса на запись
type Request struct {
	Date        time.Time // дата записи (время суток игнорируется)
	Time        string    // время начала, "h:mmam|pm"
	Service     string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string
}

// Response созданная запись
type Response struct {
	ID              string
	Date            time.Time
	Time            string
	StartAt         time.Time
	DurationMinutes int
	Service         string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Notes           *string
	RemainingTimes  []int // свободные слоты даты после записи
	StaffCount      int
	CreatedAt       time.Time
}
