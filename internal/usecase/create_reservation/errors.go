package create_reservation

import "errors"

var (
	// ErrEmptyName возвращается, когда имя пустое после обрезки пробелов
	ErrEmptyName = errors.New("create_reservation: name is empty")

	// ErrNameTooLong возвращается, когда имя длиннее допустимого
	ErrNameTooLong = errors.New("create_reservation: name is too long")

	// ErrInvalidName возвращается, когда имя не является корректным текстом
	ErrInvalidName = errors.New("create_reservation: invalid name")

	// ErrInvalidDate возвращается, когда дата не указана
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrPastDate возвращается, когда дата раньше сегодняшней
	ErrPastDate = errors.New("create_reservation: date is in the past")

	// ErrWeekendDate возвращается при попытке бронирования на выходной день
	ErrWeekendDate = errors.New("create_reservation: date is a weekend day")

	// ErrDuplicateReservation возвращается, когда у имени уже есть бронирование на эту дату
	ErrDuplicateReservation = errors.New("create_reservation: duplicate reservation")

	// ErrCapacityExceeded возвращается, когда на дату не осталось мест
	ErrCapacityExceeded = errors.New("create_reservation: capacity exceeded")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("create_reservation: store unavailable")
)
