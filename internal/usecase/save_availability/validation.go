package save_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time, maxYearsAhead int) error {
	if req.Year < now.Year() {
		return fmt.Errorf("%w: %d is in the past", ErrInvalidYear, req.Year)
	}

	if req.Year > now.Year()+maxYearsAhead {
		return fmt.Errorf("%w: %d is more than %d years ahead", ErrInvalidYear, req.Year, maxYearsAhead)
	}

	if err := req.Template.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
