package get_available_slots

import "time"

// Request модель запроса окна записи
type Request struct {
	From time.Time // первый день окна; нулевое значение означает сегодня
	Days int       // длина окна в днях; 0 означает значение по умолчанию
}

// Response свободные слоты по дням окна
type Response struct {
	From time.Time
	To   time.Time
	Days []Day
}

// Day свободные слоты одной даты
type Day struct {
	Date       time.Time
	Weekday    string
	Slots      []Slot // пусто, если день закрыт или всё занято
	StaffCount int
}

// Slot модель временного слота
type Slot struct {
	Minutes int    // минуты от полуночи
	Time    string // "h:mmam|pm"
}
