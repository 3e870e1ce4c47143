package get_booked_slots

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Scope.IsAny() && req.Scope.StylistID <= 0 {
		return fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}

	return nil
}
