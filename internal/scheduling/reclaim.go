package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Release результат возврата слотов отменённой записи
type Release struct {
	Day  domain.DayAvailability   // обновлённая запись на дату
	Days []domain.DayAvailability // обновлённая копия хранилища
}

// Bounds ограничения шаблона года для возвращаемых слотов.
// Нулевое значение означает, что шаблона нет: слоты возвращаются без отсечения,
// а новая запись на дату получает потолок 1.
type Bounds struct {
	Slots    []int // слоты дня по шаблону; nil - без ограничения
	Capacity int   // потолок staffCount для новой записи
}

// TemplateBounds строит ограничения по шаблону для даты.
// Для закрытого дня Slots пустой, и вернуть ничего нельзя.
func TemplateBounds(tmpl domain.WeeklyTemplate, date time.Time) Bounds {
	d, ok := tmpl.Day(domain.WeekdayOf(date))
	if !ok || !d.IsOpen || d.StaffCount <= 0 {
		return Bounds{Slots: []int{}}
	}
	return Bounds{
		Slots:    GenerateSlots(d.Start, d.End, LastSlotExcluded),
		Capacity: d.StaffCount,
	}
}

func (b Bounds) bounded() bool {
	return b.Slots != nil
}

// Reclaim возвращает слоты отменённой записи в пул её даты.
//
// Слоты объединяются с уже свободными без дублей и сортируются.
// При заданных Bounds возвращаются только слоты, попадающие в окно шаблона;
// если таких нет (день закрыт или часы сдвинулись), возвращается ErrNothingToReclaim.
// StaffCount увеличивается на 1, но не выше MaxStaffCount.
// Если записи на дату нет, она создаётся с потолком из Bounds.
func Reclaim(appt domain.Appointment, days []domain.DayAvailability, bounds Bounds) (*Release, error) {
	start, err := types.TimeStringToMinutes(appt.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	reclaimed := make([]int, 0, domain.SlotsNeeded(appt.DurationMinutes))
	for i := 0; i < domain.SlotsNeeded(appt.DurationMinutes); i++ {
		t := start + i*domain.SlotMinutes
		if bounds.bounded() && !contains(bounds.Slots, t) {
			continue
		}
		reclaimed = append(reclaimed, t)
	}
	if len(reclaimed) == 0 {
		return nil, ErrNothingToReclaim
	}

	var day domain.DayAvailability
	if existing := Lookup(days, appt.Date); existing != nil {
		day = existing.Clone()
	} else {
		capacity := bounds.Capacity
		if !bounds.bounded() {
			capacity = max(capacity, 1)
		}
		day = domain.DayAvailability{
			Date:          domain.DateOnly(appt.Date),
			Times:         []int{},
			StaffCount:    0,
			MaxStaffCount: capacity,
		}
	}

	day.Times = unionSorted(day.Times, reclaimed)
	day.StaffCount = min(day.StaffCount+1, max(day.MaxStaffCount, day.StaffCount))

	return &Release{
		Day:  day,
		Days: ReplaceDay(days, day),
	}, nil
}

// Occupy снимает слоты существующей записи с только что развёрнутой доступности.
// В отличие от BookSlot не проверяет непрерывность: занимаются те слоты записи,
// которые есть в новом расписании. Возвращает false, если ни одного слота не нашлось.
func Occupy(days []domain.DayAvailability, appt domain.Appointment) ([]domain.DayAvailability, bool) {
	idx := FindDay(days, appt.Date)
	if idx < 0 {
		return days, false
	}

	start := appt.StartMinutes()
	if parsed, err := types.TimeStringToMinutes(appt.Time); err == nil {
		start = parsed
	}

	wanted := make([]int, 0, domain.SlotsNeeded(appt.DurationMinutes))
	for i := 0; i < domain.SlotsNeeded(appt.DurationMinutes); i++ {
		t := start + i*domain.SlotMinutes
		if days[idx].HasTime(t) {
			wanted = append(wanted, t)
		}
	}
	if len(wanted) == 0 {
		return days, false
	}

	updated := days[idx].Clone()
	updated.Times = removeTimes(updated.Times, wanted)
	updated.StaffCount = max(updated.StaffCount-1, 0)

	out := make([]domain.DayAvailability, len(days))
	copy(out, days)
	out[idx] = updated
	return out, true
}

func unionSorted(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, list := range [][]int{a, b} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Ints(out)
	return out
}

// contains ищет t в отсортированном списке
func contains(sorted []int, t int) bool {
	i := sort.SearchInts(sorted, t)
	return i < len(sorted) && sorted[i] == t
}
