package reservations

import "errors"

var (
	// ErrEmptyName возвращается, когда имя пустое после обрезки пробелов
	ErrEmptyName = errors.New("reservations: name is empty")

	// ErrNameTooLong возвращается, когда имя длиннее допустимого
	ErrNameTooLong = errors.New("reservations: name is too long")

	// ErrInvalidName возвращается, когда имя не является корректным текстом
	ErrInvalidName = errors.New("reservations: invalid name")

	// ErrPastDate возвращается при попытке изменить бронирование на прошедшую дату
	ErrPastDate = errors.New("reservations: date is in the past")

	// ErrReservationNotFound возвращается, когда бронирование (name, date) не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrDuplicateReservation возвращается, когда у нового имени уже есть бронирование на эту дату
	ErrDuplicateReservation = errors.New("reservations: duplicate reservation")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("reservations: store unavailable")
)
