package get_week

import "time"

// Request модель запроса недели
type Request struct {
	Date time.Time // любая дата недели; нулевое значение означает сегодня
}

// Response неделя с понедельника по воскресенье
type Response struct {
	WeekStart time.Time
	WeekEnd   time.Time
	GridStart int // минуты от полуночи
	GridEnd   int
	Days      []Day
}

// Day данные одной колонки недели
type Day struct {
	Date          time.Time
	Weekday       string
	Open          bool
	WindowStart   int // минуты от полуночи, 0 если закрыто
	WindowEnd     int
	FreeTimes     []int
	StaffCount    int
	MaxStaffCount int
	Appointments  []Appointment
}

// Appointment запись клиента, обрезанная по сетке
type Appointment struct {
	ID           string
	Time         string
	StartMinutes int
	EndMinutes   int
	Service      string
	ClientName   string
}
