package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ExpandYear разворачивает недельный шаблон в записи доступности на каждую дату года.
//
// Даты раньше today пропускаются, закрытые дни не попадают в результат.
// Результат упорядочен по дате, даты уникальны, а при фиксированном today
// повторный вызов даёт тот же результат. Даты строятся в часовом поясе today.
func ExpandYear(year int, template domain.WeeklyTemplate, today time.Time) []domain.DayAvailability {
	loc := today.Location()
	from := domain.DateOnly(today)

	date := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)

	days := make([]domain.DayAvailability, 0)
	for ; date.Before(end); date = date.AddDate(0, 0, 1) {
		if date.Before(from) {
			continue
		}

		day, ok := template.Day(domain.WeekdayOf(date))
		if !ok || !day.IsOpen {
			continue
		}

		days = append(days, domain.DayAvailability{
			Date:          date,
			Times:         GenerateSlots(day.Start, day.End, LastSlotExcluded),
			StaffCount:    day.StaffCount,
			MaxStaffCount: day.StaffCount,
		})
	}

	return days
}

// YearRange первая и последняя даты года, которые затрагивает разворот шаблона от today
func YearRange(year int, today time.Time) (from, to time.Time) {
	loc := today.Location()
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	if start := domain.DateOnly(today); start.After(from) {
		from = start
	}
	to = time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	return from, to
}
