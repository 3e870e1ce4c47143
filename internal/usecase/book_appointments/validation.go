package book_appointments

import (
	"fmt"
	"time"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
		}
	}

	if !req.Scope.IsAny() && req.Scope.StylistID <= 0 {
		return fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}

	// Сравниваем только даты: бронирование на сегодня допустимо
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.Date.Before(today) {
		return ErrDateInPast
	}

	return nil
}
