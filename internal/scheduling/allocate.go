package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BookRequest данные для записи на слот
type BookRequest struct {
	Date            time.Time
	Time            string // "h:mmam|pm"
	DurationMinutes int
	Service         string
	Client          domain.Client
	Notes           *string
	CreatedAt       time.Time
}

// Allocation результат успешной записи
type Allocation struct {
	Appointment domain.Appointment
	Day         domain.DayAvailability   // обновлённая запись на дату
	Days        []domain.DayAvailability // обновлённая копия хранилища
}

// BookSlot проверяет, что на дату есть нужное число подряд идущих свободных слотов,
// и занимает их.
//
// Все проверки выполняются до изменения данных: при любой ошибке входной слайс
// и его записи остаются нетронутыми. При успехе занятые слоты удаляются из записи,
// а StaffCount уменьшается на 1, но не ниже нуля.
func BookSlot(req BookRequest, days []domain.DayAvailability, newID func() string) (*Allocation, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, req.DurationMinutes)
	}

	// 1. Разбираем время начала
	start, err := types.TimeStringToMinutes(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	// 2. Ищем запись на дату
	idx := FindDay(days, req.Date)
	if idx < 0 || !days[idx].IsBookable() {
		return nil, fmt.Errorf("%w: %s", ErrNoAvailability, req.Date.Format(domain.DateFormat))
	}
	day := days[idx]

	// 3-6. Проверяем слоты
	taken, err := takeSlots(day.Times, start, domain.SlotsNeeded(req.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %s", err, req.Date.Format(domain.DateFormat), req.Time)
	}

	// 7. Формируем запись клиента, время хранится в каноническом виде
	date := domain.DateOnly(req.Date)
	appointment := domain.Appointment{
		ID:              newID(),
		Date:            date,
		Start:           time.Date(date.Year(), date.Month(), date.Day(), start/60, start%60, 0, 0, date.Location()),
		Time:            types.MinutesToTimeString(start),
		DurationMinutes: req.DurationMinutes,
		Service:         req.Service,
		Client:          req.Client,
		Notes:           req.Notes,
		CreatedAt:       req.CreatedAt,
	}

	// 8. Применяем изменения к копии
	updated := day.Clone()
	updated.Times = removeTimes(day.Times, taken)
	updated.StaffCount = max(day.StaffCount-1, 0)

	return &Allocation{
		Appointment: appointment,
		Day:         updated,
		Days:        ReplaceDay(days, updated),
	}, nil
}

// takeSlots возвращает slotsNeeded значений, начиная со start, если они идут подряд с шагом 30.
// Срез берётся по позиции в массиве, поэтому разрыв после start даёт ErrSlotsNotContiguous,
// а нехватка элементов ErrInsufficientSlots.
func takeSlots(times []int, start, slotsNeeded int) ([]int, error) {
	pos := -1
	for i, t := range times {
		if t == start {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, ErrSlotNotAvailable
	}

	if pos+slotsNeeded > len(times) {
		return nil, ErrInsufficientSlots
	}

	taken := times[pos : pos+slotsNeeded]
	for i := 0; i+1 < len(taken); i++ {
		if taken[i+1] != taken[i]+domain.SlotMinutes {
			return nil, ErrSlotsNotContiguous
		}
	}

	return taken, nil
}

func removeTimes(times, remove []int) []int {
	drop := make(map[int]struct{}, len(remove))
	for _, t := range remove {
		drop[t] = struct{}{}
	}

	out := make([]int, 0, len(times))
	for _, t := range times {
		if _, ok := drop[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
