package scheduling

import "errors"

var (
	// ErrInvalidTimeFormat время начала не соответствует формату "h:mmam|pm"
	ErrInvalidTimeFormat = errors.New("scheduling: invalid time format")

	// ErrNoAvailability на дату нет записи доступности или в ней не осталось слотов
	ErrNoAvailability = errors.New("scheduling: no availability for this date")

	// ErrSlotNotAvailable время начала отсутствует среди свободных слотов
	ErrSlotNotAvailable = errors.New("scheduling: slot is not available")

	// ErrInsufficientSlots после времени начала осталось меньше слотов, чем нужно
	ErrInsufficientSlots = errors.New("scheduling: not enough consecutive slots")

	// ErrSlotsNotContiguous следующие слоты есть, но между ними разрыв
	ErrSlotsNotContiguous = errors.New("scheduling: slots are not contiguous")

	// ErrInvalidDuration длительность записи должна быть положительной
	ErrInvalidDuration = errors.New("scheduling: duration must be positive")

	// ErrNothingToReclaim ни один слот записи не попадает в текущее окно шаблона
	ErrNothingToReclaim = errors.New("scheduling: no slots to reclaim within the template window")
)
