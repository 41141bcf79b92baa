package availability

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон на год не сохранён
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTimeRange возвращается, если from позже to
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
