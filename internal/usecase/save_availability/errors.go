package save_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном шаблоне
	ErrInvalidInput = errors.New("save_availability: invalid input data")

	// ErrInvalidYear возвращается, если год в прошлом или слишком далеко в будущем
	ErrInvalidYear = errors.New("save_availability: invalid year")

	// ErrBusy возвращается, если год сейчас пересохраняется другим запросом
	ErrBusy = errors.New("save_availability: availability is being updated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_availability: internal error")
)
