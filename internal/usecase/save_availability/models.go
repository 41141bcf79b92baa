package save_availability

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// Request сохранение недельного шаблона на год
type Request struct {
	Year     int
	Template domain.WeeklyTemplate
}

// Response итог разворота шаблона
type Response struct {
	Year               int
	DaysWritten        int      // сколько дат записано в хранилище
	BookableDays       int      // из них с хотя бы одним свободным слотом
	KeptAppointments   int      // существующие записи, слоты которых сняты с новой доступности
	OrphanAppointments []string // записи, времени которых нет в новом шаблоне
}
