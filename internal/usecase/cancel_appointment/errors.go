package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID записи
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, если запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrBusy возвращается, если дата записи заблокирована другим запросом
	ErrBusy = errors.New("cancel_appointment: date is being updated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
