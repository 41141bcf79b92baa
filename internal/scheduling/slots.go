package scheduling

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// TrimMode правило обработки последнего слота перед закрытием
type TrimMode int

const (
	// LastSlotExcluded оставляет только слоты, которые целиком помещаются до закрытия (t+30 <= end).
	// Используется для всего, что можно забронировать.
	LastSlotExcluded TrimMode = iota

	// InclusiveThroughClose оставляет и слот, начинающийся ровно в момент закрытия (t <= end)
	InclusiveThroughClose
)

// GenerateSlots возвращает все кратные 30 минуты в [start, end] по возрастанию
// с учётом правила обработки последнего слота. При end < start результат пустой.
func GenerateSlots(start, end int, mode TrimMode) []int {
	slots := make([]int, 0)
	if end < start {
		return slots
	}

	// первый слот сетки не раньше start
	first := start
	if rem := first % domain.SlotMinutes; rem != 0 {
		first += domain.SlotMinutes - rem
	}

	for t := first; t <= end; t += domain.SlotMinutes {
		if mode == LastSlotExcluded && t+domain.SlotMinutes > end {
			break
		}
		slots = append(slots, t)
	}

	return slots
}
