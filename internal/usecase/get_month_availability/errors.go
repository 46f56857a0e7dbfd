package get_month_availability

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("get_month_availability: invalid month")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("get_month_availability: store unavailable")
)
