package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	if req.Days > maxDays {
		return fmt.Errorf("%w: window is limited to %d days", ErrInvalidInput, maxDays)
	}

	return nil
}

// validateDate окно не может начинаться в прошлом
func validateDate(from, now time.Time) error {
	if domain.IsBeforeDate(from, now) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, from.Format(domain.DateFormat))
	}
	return nil
}
