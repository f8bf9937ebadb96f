package get_booking_calendar

import (
	"fmt"
	"time"
)

const (
	minYear = 2000
	maxYear = 2100
)

// validateRequest валидирует запрос сетки календаря
func validateRequest(req *Request) error {
	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidYear, minYear, maxYear)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidMonth)
	}

	return nil
}
