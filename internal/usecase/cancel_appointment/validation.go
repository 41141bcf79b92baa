package cancel_appointment

import (
	"fmt"

	"github.com/google/uuid"
)

func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.ID); err != nil {
		return fmt.Errorf("%w: invalid appointment id %q", ErrInvalidInput, req.ID)
	}
	return nil
}
