package create_reservation

import (
	"errors"

	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// validateRequest проверяет имя и наличие даты, возвращает обрезанное имя
func validateRequest(req *Request) (string, error) {
	if req == nil {
		return "", ErrEmptyName
	}

	name, err := availability.ValidateName(req.Name)
	switch {
	case errors.Is(err, availability.ErrEmptyName):
		return "", ErrEmptyName
	case errors.Is(err, availability.ErrNameTooLong):
		return "", ErrNameTooLong
	case err != nil:
		return "", ErrInvalidName
	}

	if req.Date.IsZero() {
		return "", ErrInvalidDate
	}

	return name, nil
}

// validateDate проверяет, что дата не в прошлом и (при ограничении) не выходной
func validateDate(calc *availability.Calculator, date, today types.Date) error {
	switch calc.BlockReasonFor(date, today) {
	case availability.BlockPastDate:
		return ErrPastDate
	case availability.BlockWeekend:
		return ErrWeekendDate
	}
	return nil
}
