package availability

import "errors"

var (
	// ErrEmptyName возвращается, когда имя пустое после обрезки пробелов
	ErrEmptyName = errors.New("availability: name is empty")

	// ErrNameTooLong возвращается, когда имя длиннее domain.MaxNameLength символов
	ErrNameTooLong = errors.New("availability: name is too long")

	// ErrInvalidName возвращается для имени с некорректным UTF-8 или нулевым байтом
	ErrInvalidName = errors.New("availability: name is not valid text")

	// ErrSubmissionPending возвращается при повторной отправке, пока предыдущая не завершена
	ErrSubmissionPending = errors.New("availability: submission already pending")

	// ErrNotEligible возвращается при попытке отправки из состояния, не допускающего отправку
	ErrNotEligible = errors.New("availability: session is not eligible for submission")

	// ErrNotSubmitting возвращается при завершении отправки, которая не была начата
	ErrNotSubmitting = errors.New("availability: no submission in progress")
)
