package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidTime возвращается, если время начала не в формате "h:mmam|pm"
	ErrInvalidTime = errors.New("create_appointment: invalid time format")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrSlotInPast возвращается, если слот сегодня уже начался
	ErrSlotInPast = errors.New("create_appointment: slot has already started")

	// ErrNoAvailability возвращается, если на дату нет свободных слотов
	ErrNoAvailability = errors.New("create_appointment: no availability on this date")

	// ErrSlotNotAvailable возвращается, если выбранное время занято
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInsufficientSlots возвращается, если после выбранного времени не хватает слотов
	ErrInsufficientSlots = errors.New("create_appointment: not enough slots for the appointment")

	// ErrSlotsNotContiguous возвращается, если следующие слоты идут с разрывом
	ErrSlotsNotContiguous = errors.New("create_appointment: slots are not contiguous")

	// ErrBusy возвращается, если дата заблокирована другим запросом дольше допустимого
	ErrBusy = errors.New("create_appointment: date is busy, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
