package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование (name, date) не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDuplicateReservation возвращается при нарушении уникальности (name, date)
	ErrDuplicateReservation = errors.New("reservation.repository: duplicate reservation")

	// ErrInvalidName возвращается, когда имя нарушило ограничение длины в БД
	ErrInvalidName = errors.New("reservation.repository: invalid name")

	// ErrCapacityExceeded возвращается, когда триггер вместимости отклонил вставку
	ErrCapacityExceeded = errors.New("reservation.repository: capacity exceeded")

	// ErrStoreUnavailable возвращается при любых других ошибках БД или сети
	ErrStoreUnavailable = errors.New("reservation.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")
)
