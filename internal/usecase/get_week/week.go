package get_week

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
)

// weekStart понедельник недели, в которую попадает date
func weekStart(date time.Time) time.Time {
	d := domain.DateOnly(date)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// buildDay собирает колонку недели.
// Окно работы считается по свободным слотам и записям дня: занятые слоты из записи
// доступности уже удалены, поэтому одних свободных слотов недостаточно.
func buildDay(date time.Time, record *domain.DayAvailability, appts []domain.Appointment) Day {
	day := Day{
		Date:         date,
		Weekday:      string(domain.WeekdayOf(date)),
		FreeTimes:    []int{},
		Appointments: make([]Appointment, 0, len(appts)),
	}

	start, end := domain.MinutesPerDay, -1
	if record != nil {
		day.StaffCount = record.StaffCount
		day.MaxStaffCount = record.MaxStaffCount
		if len(record.Times) > 0 {
			day.FreeTimes = append(day.FreeTimes, record.Times...)
			start = min(start, record.Times[0])
			end = max(end, record.Times[len(record.Times)-1]+domain.SlotMinutes)
		}
	}

	for _, a := range appts {
		from := clamp(a.StartMinutes(), domain.GridStartMinutes, domain.GridEndMinutes)
		to := clamp(a.EndMinutes(), domain.GridStartMinutes, domain.GridEndMinutes)
		day.Appointments = append(day.Appointments, Appointment{
			ID:           a.ID,
			Time:         a.Time,
			StartMinutes: from,
			EndMinutes:   to,
			Service:      a.Service,
			ClientName:   a.Client.Name,
		})
		start = min(start, a.StartMinutes())
		end = max(end, a.EndMinutes())
	}

	if end < 0 {
		return day
	}

	start = clamp(start, domain.GridStartMinutes, domain.GridEndMinutes)
	end = clamp(end, domain.GridStartMinutes, domain.GridEndMinutes)
	if start < end {
		day.Open = true
		day.WindowStart, day.WindowEnd = start, end
	}

	return day
}

// buildWeek раскладывает записи доступности и записи клиентов по семи дням
func buildWeek(from time.Time, records []domain.DayAvailability, appts []domain.Appointment) []Day {
	byDate := make(map[string][]domain.Appointment, len(appts))
	for _, a := range appts {
		k := a.Date.Format(domain.DateFormat)
		byDate[k] = append(byDate[k], a)
	}

	days := make([]Day, 0, len(domain.WeekOrder))
	for i := range domain.WeekOrder {
		date := from.AddDate(0, 0, i)
		days = append(days, buildDay(date, scheduling.Lookup(records, date), byDate[date.Format(domain.DateFormat)]))
	}
	return days
}
