package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// buildDays раскладывает записи доступности по дням окна.
// Для дат без записи возвращается пустой список слотов.
// Для сегодняшней даты остаются только слоты, начинающиеся строго позже текущего времени.
func buildDays(from time.Time, days int, records []domain.DayAvailability, now time.Time) []Day {
	out := make([]Day, 0, days)

	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		day := Day{
			Date:    date,
			Weekday: string(domain.WeekdayOf(date)),
			Slots:   []Slot{},
		}

		record := scheduling.Lookup(records, date)
		if record == nil || !record.IsBookable() {
			out = append(out, day)
			continue
		}

		// Отсечка: для будущих дат пропускаем всё, что раньше полуночи
		cutoff := -1
		if domain.SameDate(date, now) {
			cutoff = domain.MinutesOfDay(now)
		}

		for _, t := range scheduling.FreeSlotsAfter(record, cutoff) {
			day.Slots = append(day.Slots, Slot{Minutes: t, Time: types.MinutesToTimeString(t)})
		}
		day.StaffCount = record.StaffCount

		out = append(out, day)
	}

	return out
}
