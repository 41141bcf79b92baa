package create_appointment

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает время начала в минутах
func validateRequest(req *Request) (int, error) {
	if req.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return 0, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLen {
		return 0, fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}

	if req.ClientEmail != "" {
		if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
			return 0, fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
		}
	}

	if len(req.Service) > domain.MaxServiceNameLen {
		return 0, fmt.Errorf("%w: service name is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return 0, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	start, err := types.ParseClockTime(req.Time)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	return start, nil
}

// validateNotPast запись возможна на сегодня и позже; сегодня только на ещё не начавшиеся слоты
func validateNotPast(date time.Time, start int, now time.Time) error {
	if domain.IsBeforeDate(date, now) {
		return ErrDateInPast
	}

	if domain.SameDate(date, now) && start <= domain.MinutesOfDay(now) {
		return fmt.Errorf("%w: %s", ErrSlotInPast, types.MinutesToTimeString(start))
	}

	return nil
}
