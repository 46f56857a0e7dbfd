package get_month_availability

import (
	"fmt"
	"time"
)

const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest проверяет год и месяц
func validateRequest(req *Request) error {
	if req == nil {
		return ErrInvalidMonth
	}
	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidMonth, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidMonth, int(req.Month))
	}
	return nil
}
