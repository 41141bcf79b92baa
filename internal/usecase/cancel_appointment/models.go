package cancel_appointment

import "time"

// Request модель запроса на отмену
type Request struct {
	ID string
}

// Response результат отмены
type Response struct {
	ID             string
	Date           time.Time
	Time           string
	Reclaimed      bool  // слоты возвращены в пул (false для прошедших дат)
	AvailableTimes []int // свободные слоты даты после отмены
	StaffCount     int
}
