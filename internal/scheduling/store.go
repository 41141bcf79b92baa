package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// FindDay ищет запись по календарной дате без учёта времени суток.
// Возвращает индекс записи или -1.
func FindDay(days []domain.DayAvailability, date time.Time) int {
	for i := range days {
		if domain.SameDate(days[i].Date, date) {
			return i
		}
	}
	return -1
}

// Lookup запись на дату; nil, если записи нет
func Lookup(days []domain.DayAvailability, date time.Time) *domain.DayAvailability {
	if i := FindDay(days, date); i >= 0 {
		return &days[i]
	}
	return nil
}

// ReplaceDay возвращает копию хранилища, где запись на дату day заменена (или добавлена).
// Исходный слайс не изменяется, порядок по дате сохраняется.
func ReplaceDay(days []domain.DayAvailability, day domain.DayAvailability) []domain.DayAvailability {
	out := make([]domain.DayAvailability, 0, len(days)+1)
	replaced := false
	for _, d := range days {
		if domain.SameDate(d.Date, day.Date) {
			out = append(out, day.Clone())
			replaced = true
			continue
		}
		out = append(out, d.Clone())
	}

	if !replaced {
		out = append(out, day.Clone())
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	}

	return out
}

// FreeSlotsAfter слоты записи, начинающиеся строго позже минуты now
func FreeSlotsAfter(day *domain.DayAvailability, now int) []int {
	slots := make([]int, 0)
	if !day.IsBookable() {
		return slots
	}
	for _, t := range day.Times {
		if t > now {
			slots = append(slots, t)
		}
	}
	return slots
}
